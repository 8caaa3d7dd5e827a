package schedule

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/kintai-tools/shiftcal/pkg/calendar"
	"github.com/kintai-tools/shiftcal/pkg/layout"
	"github.com/kintai-tools/shiftcal/pkg/name"
	"github.com/kintai-tools/shiftcal/pkg/pdf"
)

// ErrMalformedRow is returned when a person's row cannot be interpreted:
// either no start-of-marks marker is present, or a header date cell is not a
// day number. Fatal for that person only; batch extraction continues.
var ErrMalformedRow = errors.New("schedule: malformed row")

// defaultMarkerStart matches the duty-type header glyphs that precede the
// per-day mark cells in a person's row.
var defaultMarkerStart = regexp.MustCompile(`(日|夜|日夜|勤務|勤)`)

// Config carries every calibration knob of the extraction pipeline. The
// defaults fit the duty-roster document family; other templates recalibrate
// here without touching algorithm code.
type Config struct {
	// HeaderKeyword anchors the date header row (the label of the name
	// column, printed above the day numbers).
	HeaderKeyword string

	// HeaderSearchHeight and RowSearchHeight bound the vertical keyword scan
	// for the header anchor and the person anchor respectively.
	HeaderSearchHeight float64
	RowSearchHeight    float64

	// HeaderBand and RowBand widen the anchor coordinate into the window the
	// date row and mark row are pulled from.
	HeaderBand layout.Band
	RowBand    layout.Band

	// Tolerance is the maximum coordinate distance at which a mark cell is
	// considered aligned with a date cell.
	Tolerance float64

	// HeaderRegion is the fraction of the first page's height scanned for
	// the year/month title.
	HeaderRegion float64

	// MarkerStart recognizes the cell that opens the per-day marks in a
	// person's row; everything up to and including it is discarded.
	MarkerStart *regexp.Regexp

	// TimeZone and Tag end up in every draft: the organization's local zone
	// and the description tag the calendar service filters by.
	TimeZone string
	Tag      string

	// Logger receives progress and duplicate-name warnings. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// DefaultConfig returns the calibration for the duty-roster layout.
func DefaultConfig() Config {
	return Config{
		HeaderKeyword:      "名前",
		HeaderSearchHeight: 200,
		RowSearchHeight:    800,
		HeaderBand:         layout.Band{Sub: 20, Add: 10},
		RowBand:            layout.Band{Sub: 10, Add: 10},
		Tolerance:          5,
		HeaderRegion:       0.15,
		MarkerStart:        defaultMarkerStart,
		TimeZone:           "Asia/Tokyo",
		Tag:                "勤務表",
	}
}

// PersonResult is the outcome of one person's extraction within a batch.
// Warnings carry ambiguous-name conditions; Err is set when extraction
// failed for this person without affecting the rest of the batch.
type PersonResult struct {
	Person   name.PersonName
	Drafts   []calendar.EventDraft
	Warnings []*layout.DuplicateNames
	Err      error
}

// Extractor runs the schedule extraction pipeline against one document.
// Every call re-derives all data from the word source; no state is carried
// between calls.
type Extractor struct {
	src pdf.WordSource
	cfg Config
	log *slog.Logger
}

// NewExtractor binds a pipeline to a word source. Zero-value Config fields
// are filled from DefaultConfig.
func NewExtractor(src pdf.WordSource, cfg Config) *Extractor {
	def := DefaultConfig()
	if cfg.HeaderKeyword == "" {
		cfg.HeaderKeyword = def.HeaderKeyword
	}
	if cfg.HeaderSearchHeight == 0 {
		cfg.HeaderSearchHeight = def.HeaderSearchHeight
	}
	if cfg.RowSearchHeight == 0 {
		cfg.RowSearchHeight = def.RowSearchHeight
	}
	if cfg.HeaderBand == (layout.Band{}) {
		cfg.HeaderBand = def.HeaderBand
	}
	if cfg.RowBand == (layout.Band{}) {
		cfg.RowBand = def.RowBand
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.HeaderRegion == 0 {
		cfg.HeaderRegion = def.HeaderRegion
	}
	if cfg.MarkerStart == nil {
		cfg.MarkerStart = def.MarkerStart
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = def.TimeZone
	}
	if cfg.Tag == "" {
		cfg.Tag = def.Tag
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{src: src, cfg: cfg, log: log}
}

// Extract produces the ordered calendar-event drafts for one person. A
// person present on the page with no recognized marks yields an empty slice,
// not an error. Ambiguous name resolutions come back as warnings alongside
// the drafts.
func (e *Extractor) Extract(person name.PersonName) ([]calendar.EventDraft, []*layout.DuplicateNames, error) {
	const page = 1

	words, err := e.src.Words(page)
	if err != nil {
		return nil, nil, err
	}

	var warnings []*layout.DuplicateNames

	headerHits, warn, err := layout.Locate(words, e.cfg.HeaderKeyword, e.cfg.HeaderSearchHeight)
	if err != nil {
		return nil, nil, fmt.Errorf("locating header anchor: %w", err)
	}
	if warn != nil {
		warnings = append(warnings, warn)
	}
	yMin, yMax := e.cfg.HeaderBand.Window(headerHits[0].BBox.Y0)
	dateCells := layout.Row(words, page, yMin, yMax, e.cfg.HeaderKeyword)

	rowHits, warn, err := layout.Locate(words, person.Full, e.cfg.RowSearchHeight)
	if err != nil {
		return nil, nil, fmt.Errorf("locating row of %s: %w", person.Full, err)
	}
	if warn != nil {
		e.log.Warn("ambiguous name, using best-effort match",
			"keyword", warn.Keyword, "candidates", len(warn.Candidates))
		warnings = append(warnings, warn)
	}
	yMin, yMax = e.cfg.RowBand.Window(rowHits[0].BBox.Y0)
	markCells := layout.Row(words, page, yMin, yMax, person.Full)

	markCells, err = trimToMarks(markCells, e.cfg.MarkerStart)
	if err != nil {
		return nil, warnings, fmt.Errorf("row of %s: %w", person.Full, err)
	}

	period, err := ReadPeriod(e.src, e.cfg.HeaderRegion)
	if err != nil {
		return nil, warnings, err
	}

	pairs := layout.Align(dateCells, markCells, e.cfg.Tolerance)

	var drafts []calendar.EventDraft
	for _, p := range pairs {
		day, err := strconv.Atoi(strings.TrimSpace(p.Date.Text))
		if err != nil {
			return nil, warnings, fmt.Errorf("%w: date cell %q is not a day number", ErrMalformedRow, p.Date.Text)
		}
		if p.Mark == nil {
			continue
		}
		if draft, ok := ParseMark(p.Mark.Text).Draft(day, period, person.Full, e.cfg.TimeZone, e.cfg.Tag); ok {
			drafts = append(drafts, draft)
		}
	}

	e.log.Debug("extraction complete",
		"person", person.Full, "period", period.String(),
		"days", len(pairs), "events", len(drafts))
	return drafts, warnings, nil
}

// ExtractAll runs Extract for each person, collecting per-person outcomes.
// One person's failure never aborts the batch.
func (e *Extractor) ExtractAll(people []name.PersonName) []PersonResult {
	results := make([]PersonResult, 0, len(people))
	for _, p := range people {
		drafts, warnings, err := e.Extract(p)
		if err != nil {
			e.log.Warn("extraction failed", "person", p.Full, "error", err)
		}
		results = append(results, PersonResult{Person: p, Drafts: drafts, Warnings: warnings, Err: err})
	}
	return results
}

// trimToMarks drops everything up to and including the first cell matching
// the marker-start pattern. Without that marker the row has no known starting
// offset and cannot be interpreted.
func trimToMarks(cells []layout.Cell, marker *regexp.Regexp) ([]layout.Cell, error) {
	for i, c := range cells {
		if marker.MatchString(c.Text) {
			return cells[i+1:], nil
		}
	}
	return nil, fmt.Errorf("%w: no mark start position found", ErrMalformedRow)
}
