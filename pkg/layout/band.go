package layout

import (
	"sort"

	"github.com/kintai-tools/shiftcal/pkg/pdf"
)

// Cell is a word reduced to its text and a single ordinal coordinate: x for
// cells pulled from a row band, y for cells pulled from a column band.
type Cell struct {
	Text string
	Pos  float64
}

// Band is the slack applied around an anchor coordinate when computing a
// row or column window. The margins are a per-document-family calibration
// knob; DefaultConfig in package schedule carries the values tuned for the
// duty-roster layout.
type Band struct {
	Sub float64 // widens the window toward smaller coordinates
	Add float64 // widens the window toward larger coordinates
}

// Window returns the [min, max] coordinate range around the anchor.
func (b Band) Window(anchor float64) (float64, float64) {
	return anchor - b.Sub, anchor + b.Add
}

// Column returns the cells of the given page whose bounding box lies fully
// within [xMin, xMax], sorted top to bottom. Cells whose text equals exclude
// are dropped; the anchor keyword positions the band but is not data.
func Column(words []pdf.Word, page int, xMin, xMax float64, exclude string) []Cell {
	var cells []Cell
	for _, w := range words {
		if w.Page != page {
			continue
		}
		if w.BBox.X0 >= xMin && w.BBox.X1 <= xMax && w.Text != exclude {
			cells = append(cells, Cell{Text: w.Text, Pos: w.BBox.Y0})
		}
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Pos < cells[j].Pos
	})
	return cells
}

// Row returns the cells of the given page whose bounding box lies fully
// within [yMin, yMax], sorted left to right, with exclude filtered out.
func Row(words []pdf.Word, page int, yMin, yMax float64, exclude string) []Cell {
	var cells []Cell
	for _, w := range words {
		if w.Page != page {
			continue
		}
		if w.BBox.Y0 >= yMin && w.BBox.Y1 <= yMax && w.Text != exclude {
			cells = append(cells, Cell{Text: w.Text, Pos: w.BBox.X0})
		}
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Pos < cells[j].Pos
	})
	return cells
}
