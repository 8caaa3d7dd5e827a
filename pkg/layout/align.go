package layout

import "math"

// Pair is one date cell together with the mark cell aligned to it, or nil
// when no mark sits within tolerance.
type Pair struct {
	Date Cell
	Mark *Cell
}

// Align pairs each date cell with its spatially nearest mark cell within
// tolerance. The output has exactly one Pair per date cell, in input order.
//
// Matching is greedy per date cell and not mutually exclusive: two date cells
// can claim the same mark cell. The roster layouts align date and mark
// columns by construction, so collisions do not occur in practice; this
// mirrors the documented extraction behavior rather than enforcing a global
// one-to-one matching.
func Align(dates, marks []Cell, tolerance float64) []Pair {
	pairs := make([]Pair, 0, len(dates))
	for _, d := range dates {
		var best *Cell
		bestDist := math.Inf(1)
		for i := range marks {
			dist := math.Abs(marks[i].Pos - d.Pos)
			if dist <= tolerance && dist < bestDist {
				best = &marks[i]
				bestDist = dist
			}
		}
		pairs = append(pairs, Pair{Date: d, Mark: best})
	}
	return pairs
}
