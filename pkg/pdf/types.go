package pdf

// BoundingBox is a rectangle in page coordinates. The origin is the top-left
// corner of the page with Y increasing downward, so Y1 is the bottom edge of
// the box. Backends convert from the PDF coordinate space (bottom-left origin)
// at extraction time.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box.
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box.
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Contains checks if a point is within the bounding box.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Intersects checks if two bounding boxes intersect.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.X1 < other.X0 || b.X0 > other.X1 || b.Y1 < other.Y0 || b.Y0 > other.Y1)
}

// Word is a run of characters extracted from a page together with its
// position. Words are value objects: produced fresh per extraction call and
// never mutated afterwards.
type Word struct {
	Page int // 1-based page number
	BBox BoundingBox
	Text string
}

// WordSource yields positioned words per page. *Document implements it; the
// schedule pipeline depends on this interface so it can run against synthetic
// layouts in tests.
type WordSource interface {
	PageCount() int
	PageHeight(page int) (float64, error)
	Words(page int) ([]Word, error)
}

// char is a single positioned character before word grouping.
type char struct {
	text           string
	x0, y0, x1, y1 float64
	width          float64
}
