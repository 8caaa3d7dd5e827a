package shiftcal

import (
	"fmt"
	"testing"
)

// fixtureSource drives the facade through the WordSource seam; opening real
// PDF files is covered by the backends and needs no fixture document here.
type fixtureSource struct {
	words []Word
}

func (f *fixtureSource) PageCount() int { return 1 }

func (f *fixtureSource) PageHeight(page int) (float64, error) {
	if page != 1 {
		return 0, fmt.Errorf("page %d out of range", page)
	}
	return 842, nil
}

func (f *fixtureSource) Words(page int) ([]Word, error) {
	return f.words, nil
}

func TestFacadeExtraction(t *testing.T) {
	box := func(text string, x0, y0 float64) Word {
		return Word{Page: 1, Text: text, BBox: BoundingBox{X0: x0, Y0: y0, X1: x0 + 12, Y1: y0 + 13}}
	}
	src := &fixtureSource{words: []Word{
		box("2025年8月", 120, 30),
		box("名前", 30, 150),
		box("1", 100, 140),
		box("2", 140, 140),
		box("田中　太郎", 30, 300),
		box("日夜", 70, 295),
		box("⑯", 101, 295),
	}}

	person, ok := ParseName("田中　太郎")
	if !ok {
		t.Fatal("expected a decomposable name")
	}

	drafts, warnings, err := NewExtractor(src, DefaultConfig()).Extract(person)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Summary != "当直" || drafts[0].Start.Date != "2025-08-01" {
		t.Errorf("unexpected draft: %+v", drafts[0])
	}
}
