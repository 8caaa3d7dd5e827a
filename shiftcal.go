// Package shiftcal extracts monthly duty rosters from fixed-layout PDF
// documents and converts each recognized work mark into a calendar-event
// draft. The documents carry no machine-readable table structure; rows and
// columns are reconstructed from word bounding boxes around located anchor
// keywords.
package shiftcal

import (
	"github.com/kintai-tools/shiftcal/pkg/calendar"
	"github.com/kintai-tools/shiftcal/pkg/layout"
	"github.com/kintai-tools/shiftcal/pkg/name"
	"github.com/kintai-tools/shiftcal/pkg/pdf"
	"github.com/kintai-tools/shiftcal/pkg/schedule"
)

// Re-export the public types from the subpackages.
type (
	Document       = pdf.Document
	Word           = pdf.Word
	BoundingBox    = pdf.BoundingBox
	WordSource     = pdf.WordSource
	PersonName     = name.PersonName
	DuplicateNames = layout.DuplicateNames
	Config         = schedule.Config
	Period         = schedule.Period
	Mark           = schedule.Mark
	Extractor      = schedule.Extractor
	PersonResult   = schedule.PersonResult
	EventTime      = calendar.EventTime
	EventDraft     = calendar.EventDraft
	Event          = calendar.Event
	Service        = calendar.Service
)

// Re-export the error taxonomy.
var (
	ErrKeywordNotFound = layout.ErrKeywordNotFound
	ErrMalformedRow    = schedule.ErrMalformedRow
	ErrHeaderNotFound  = schedule.ErrHeaderNotFound
)

// Re-export the common entry points.
var (
	DefaultConfig     = schedule.DefaultConfig
	NewExtractor      = schedule.NewExtractor
	ParseName         = name.Parse
	ExtractCandidates = name.ExtractCandidates
	ReadPeriod        = schedule.ReadPeriod
	FilterMonth       = calendar.FilterMonth
)

// Open opens and validates a schedule PDF. The caller owns the returned
// handle and must Close it.
func Open(path string) (*Document, error) {
	return pdf.Open(path)
}

// ExtractSchedule is the one-shot convenience path: open the document,
// extract one person's drafts, release the handle. Names that do not
// decompose into surname and given name are located as opaque keywords.
func ExtractSchedule(path, fullName string, cfg Config) ([]EventDraft, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	person, ok := name.Parse(fullName)
	if !ok {
		person = name.Literal(fullName)
	}
	drafts, _, err := schedule.NewExtractor(doc, cfg).Extract(person)
	return drafts, err
}
