// Package schedule turns the spatial layout of a monthly duty roster into
// calendar-event drafts, one per recognized work mark per person.
package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kintai-tools/shiftcal/pkg/pdf"
)

// ErrHeaderNotFound is returned when the document header carries no
// recognizable year/month. Fatal for the whole document: every draft depends
// on the period.
var ErrHeaderNotFound = errors.New("schedule: year/month header not found")

// periodPattern matches headers like 2025年8月 or 2025 年 8 月.
var periodPattern = regexp.MustCompile(`(\d{4})\s*年\s*(\d{1,2})\s*月`)

// Period is the year and month one roster document covers.
type Period struct {
	Year  int
	Month int
}

func (p Period) String() string {
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}

// ReadPeriod extracts the schedule year and month from the top region of the
// first page. heightRatio is the fraction of the page height scanned from the
// top; the roster family prints its title within the top 15%.
func ReadPeriod(src pdf.WordSource, heightRatio float64) (Period, error) {
	height, err := src.PageHeight(1)
	if err != nil {
		return Period{}, err
	}
	words, err := src.Words(1)
	if err != nil {
		return Period{}, err
	}

	limit := height * heightRatio
	var parts []string
	for _, w := range words {
		if w.Page == 1 && w.BBox.Y0 <= limit {
			parts = append(parts, w.Text)
		}
	}

	m := periodPattern.FindStringSubmatch(strings.Join(parts, " "))
	if m == nil {
		return Period{}, ErrHeaderNotFound
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return Period{Year: year, Month: month}, nil
}
