package pdf

import (
	"sort"
	"strings"
)

// Default tolerances for grouping characters into lines and words. The
// schedule PDFs this package targets use small cell fonts, so the defaults
// are tight; they only matter for word segmentation, not for the band
// extraction done downstream.
const (
	defaultXTolerance = 3.0
	defaultYTolerance = 3.0
)

// groupWords organizes positioned characters into words for one page:
// characters are sorted top-to-bottom / left-to-right, grouped into lines by
// Y proximity, then split into words wherever the horizontal gap exceeds the
// tolerance or a noticeable fraction of the character width.
func groupWords(page int, chars []char, xTol, yTol float64) []Word {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]char, len(chars))
	copy(sorted, chars)
	sort.Slice(sorted, func(i, j int) bool {
		if abs(sorted[i].y0-sorted[j].y0) > yTol {
			return sorted[i].y0 < sorted[j].y0
		}
		return sorted[i].x0 < sorted[j].x0
	})

	var words []Word
	for _, line := range groupIntoLines(sorted, yTol) {
		words = append(words, wordsFromLine(page, line, xTol)...)
	}
	return words
}

// groupIntoLines groups characters into lines based on Y position.
func groupIntoLines(chars []char, yTol float64) [][]char {
	var lines [][]char
	var current []char

	currentY := chars[0].y0
	for _, c := range chars {
		if abs(c.y0-currentY) > yTol {
			if len(current) > 0 {
				lines = append(lines, current)
			}
			current = []char{c}
			currentY = c.y0
		} else {
			current = append(current, c)
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// wordsFromLine splits one line of characters into words.
func wordsFromLine(page int, line []char, xTol float64) []Word {
	sort.Slice(line, func(i, j int) bool {
		return line[i].x0 < line[j].x0
	})

	var words []Word
	var current []char

	for i, c := range line {
		if i == 0 {
			current = []char{c}
			continue
		}
		gap := c.x0 - line[i-1].x1
		if gap > xTol || gap > c.width*0.3 {
			if len(current) > 0 {
				words = append(words, buildWord(page, current))
			}
			current = []char{c}
		} else {
			current = append(current, c)
		}
	}
	if len(current) > 0 {
		words = append(words, buildWord(page, current))
	}
	return words
}

// buildWord merges a run of characters into a single Word with the union of
// their bounding boxes.
func buildWord(page int, chars []char) Word {
	var text strings.Builder
	minX, minY := chars[0].x0, chars[0].y0
	maxX, maxY := chars[0].x1, chars[0].y1

	for _, c := range chars {
		text.WriteString(c.text)
		minX = min(minX, c.x0)
		minY = min(minY, c.y0)
		maxX = max(maxX, c.x1)
		maxY = max(maxY, c.y1)
	}

	return Word{
		Page: page,
		Text: text.String(),
		BBox: BoundingBox{X0: minX, Y0: minY, X1: maxX, Y1: maxY},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
