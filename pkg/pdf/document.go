package pdf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	dpdf "github.com/dslipak/pdf"
	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ErrPageOutOfRange is returned when a page number is outside the document.
var ErrPageOutOfRange = errors.New("pdf: page number out of range")

// backend extracts positioned characters from one page. The page height is
// passed in so the backend can convert from the PDF coordinate space
// (bottom-left origin) to the top-left-origin space used by BoundingBox.
type backend interface {
	pageChars(page int, pageHeight float64) ([]char, error)
	close() error
}

// Document is a scoped handle to one schedule PDF. It owns the underlying
// file handle; Close must be called when the extraction run is done. A
// Document is safe for sequential reuse but not for concurrent use; open
// independent Documents for concurrent extraction.
type Document struct {
	path    string
	dims    []types.Dim
	backend backend
	xTol    float64
	yTol    float64
}

// Open opens and validates a PDF file. The file is validated and measured
// with pdfcpu, then text is read with the ledongthuc backend, falling back to
// the dslipak backend when the primary reader cannot handle the file.
func Open(path string) (*Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdf: reading %s: %w", path, err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("pdf: invalid PDF %s: %w", path, err)
	}
	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("pdf: page dimensions of %s: %w", path, err)
	}

	b, err := openLedongthuc(path)
	if err != nil {
		b, err = openDslipak(path)
		if err != nil {
			return nil, fmt.Errorf("pdf: no backend could open %s: %w", path, err)
		}
	}

	return &Document{
		path:    path,
		dims:    dims,
		backend: b,
		xTol:    defaultXTolerance,
		yTol:    defaultYTolerance,
	}, nil
}

// SetTolerances overrides the character-grouping tolerances used by Words.
func (d *Document) SetTolerances(xTol, yTol float64) {
	d.xTol = xTol
	d.yTol = yTol
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.dims)
}

// PageHeight returns the height in points of the given 1-based page.
func (d *Document) PageHeight(page int) (float64, error) {
	if page < 1 || page > len(d.dims) {
		return 0, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, page, len(d.dims))
	}
	return d.dims[page-1].Height, nil
}

// Words extracts the positioned words of the given 1-based page, sorted
// top-to-bottom then left-to-right. The result is recomputed on every call;
// callers own the returned slice.
func (d *Document) Words(page int) ([]Word, error) {
	h, err := d.PageHeight(page)
	if err != nil {
		return nil, err
	}
	chars, err := d.backend.pageChars(page, h)
	if err != nil {
		return nil, fmt.Errorf("pdf: extracting page %d of %s: %w", page, d.path, err)
	}
	return groupWords(page, chars, d.xTol, d.yTol), nil
}

// TextInRegion returns the text of all words whose bounding box intersects
// the given region, joined in reading order.
func (d *Document) TextInRegion(page int, region BoundingBox) (string, error) {
	words, err := d.Words(page)
	if err != nil {
		return "", err
	}
	var parts []string
	for _, w := range words {
		if w.BBox.Intersects(region) {
			parts = append(parts, w.Text)
		}
	}
	return strings.Join(parts, " "), nil
}

// Close releases the underlying file handle. Safe to call once per Document.
func (d *Document) Close() error {
	return d.backend.close()
}

// ledongthucBackend reads text through github.com/ledongthuc/pdf, which keeps
// per-span coordinates and handles CID-keyed Japanese fonts well.
type ledongthucBackend struct {
	file   io.Closer
	reader *lpdf.Reader
}

func openLedongthuc(path string) (backend, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ledongthuc: %w", err)
	}
	return &ledongthucBackend{file: f, reader: r}, nil
}

func (b *ledongthucBackend) pageChars(page int, pageHeight float64) ([]char, error) {
	if page < 1 || page > b.reader.NumPage() {
		return nil, fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
	}
	content := b.reader.Page(page).Content()
	return spansToChars(content.Text, pageHeight), nil
}

func (b *ledongthucBackend) close() error {
	if b.file != nil {
		return b.file.Close()
	}
	return nil
}

// dslipakBackend is the fallback reader. Same underlying rsc.io/pdf fork as
// ledongthuc, but tolerates some malformed cross-reference tables the
// primary backend rejects.
type dslipakBackend struct {
	reader *dpdf.Reader
}

func openDslipak(path string) (backend, error) {
	r, err := dpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dslipak: %w", err)
	}
	return &dslipakBackend{reader: r}, nil
}

func (b *dslipakBackend) pageChars(page int, pageHeight float64) ([]char, error) {
	if page < 1 || page > b.reader.NumPage() {
		return nil, fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
	}
	content := b.reader.Page(page).Content()
	spans := make([]textSpan, len(content.Text))
	for i, t := range content.Text {
		spans[i] = textSpan{S: t.S, X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize}
	}
	return spansToCharsGeneric(spans, pageHeight), nil
}

func (b *dslipakBackend) close() error {
	b.reader = nil
	return nil
}

// textSpan is the common shape of a text run in both rsc.io/pdf forks.
type textSpan struct {
	S        string
	X, Y, W  float64
	FontSize float64
}

func spansToChars(spans []lpdf.Text, pageHeight float64) []char {
	generic := make([]textSpan, len(spans))
	for i, t := range spans {
		generic[i] = textSpan{S: t.S, X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize}
	}
	return spansToCharsGeneric(generic, pageHeight)
}

// spansToCharsGeneric splits text spans into per-character boxes and converts
// to the top-left-origin coordinate space. The span Y is the baseline in PDF
// space; the top of the glyph box sits roughly 80% of the font height above
// it, matching how pdfplumber positions characters.
func spansToCharsGeneric(spans []textSpan, pageHeight float64) []char {
	var chars []char
	for _, t := range spans {
		runes := []rune(t.S)
		if len(runes) == 0 {
			continue
		}
		fontHeight := t.FontSize
		yTop := pageHeight - (t.Y + fontHeight*0.8)

		charWidth := t.W / float64(len(runes))
		x := t.X
		for _, r := range runes {
			if r != ' ' {
				chars = append(chars, char{
					text:  string(r),
					x0:    x,
					y0:    yTop,
					x1:    x + charWidth,
					y1:    yTop + fontHeight,
					width: charWidth,
				})
			}
			x += charWidth
		}
	}
	return chars
}
