// Package layout reconstructs tabular structure from positioned words. The
// schedule PDFs carry no logical table; rows and columns exist only as
// coordinate bands around located anchor keywords.
package layout

import (
	"errors"
	"fmt"

	"github.com/kintai-tools/shiftcal/pkg/name"
	"github.com/kintai-tools/shiftcal/pkg/pdf"
)

// ErrKeywordNotFound is returned when an anchor keyword has no match on the
// page. Extraction cannot proceed for that keyword.
var ErrKeywordNotFound = errors.New("layout: keyword not found")

// DuplicateNames reports an ambiguous name resolution. It is a warning, not
// an error: the locator still returns its best-effort candidates and batch
// extraction continues.
type DuplicateNames struct {
	Keyword    string
	Candidates []pdf.Word
}

func (d *DuplicateNames) String() string {
	return fmt.Sprintf("ambiguous name %q (%d candidates)", d.Keyword, len(d.Candidates))
}

// Locate finds all words matching the keyword among words whose bottom edge
// lies at or above yLimit.
//
// A keyword that decomposes as a person name goes through the disambiguation
// cascade: exact full-name match first, then surname-only, then given-name-
// only when the surname is ambiguous. Ambiguity at the full-name or
// given-name level is reported through the DuplicateNames return value while
// still yielding the candidates. A plain keyword matches by exact text
// equality only.
func Locate(words []pdf.Word, keyword string, yLimit float64) ([]pdf.Word, *DuplicateNames, error) {
	person, isName := name.Parse(keyword)
	if !isName {
		hits := collect(words, keyword, yLimit)
		if len(hits) == 0 {
			return nil, nil, fmt.Errorf("%w: %q", ErrKeywordNotFound, keyword)
		}
		return hits, nil, nil
	}

	full := collect(words, keyword, yLimit)
	last := collect(words, person.Surname, yLimit)
	first := collect(words, person.Given, yLimit)

	switch {
	case len(full) == 1:
		return full, nil, nil
	case len(full) > 1:
		return full, &DuplicateNames{Keyword: keyword, Candidates: full}, nil
	case len(last) == 1:
		return last, nil, nil
	case len(last) > 1:
		if len(first) == 1 {
			return first, nil, nil
		}
		if len(first) > 1 {
			return first, &DuplicateNames{Keyword: keyword, Candidates: first}, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrKeywordNotFound, keyword)
}

// collect gathers exact text matches above the vertical scan limit.
func collect(words []pdf.Word, text string, yLimit float64) []pdf.Word {
	var hits []pdf.Word
	for _, w := range words {
		if w.BBox.Y1 <= yLimit && w.Text == text {
			hits = append(hits, w)
		}
	}
	return hits
}
