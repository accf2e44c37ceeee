package layout

// RegionKind identifies a block in the fixed vertical page order.
type RegionKind string

// Region kinds, in the order they appear on the page.
const (
	RegionTitle       RegionKind = "title"
	RegionMeta        RegionKind = "meta"
	RegionParties     RegionKind = "parties"
	RegionTableHeader RegionKind = "table_header"
	RegionTableRow    RegionKind = "table_row"
	RegionTotals      RegionKind = "totals"
	RegionNotes       RegionKind = "notes"
)

// TextOp draws one line of text. X and Y locate the baseline origin;
// alignment has already been resolved into X by the engine.
type TextOp struct {
	Text  string
	X, Y  float64
	Font  FontSpec
	Color RGB
}

// RectOp draws a filled rectangle.
type RectOp struct {
	BBox BBox
	Fill RGB
}

// LineOp draws a stroked line segment.
type LineOp struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Color  RGB
}

// Region is a laid-out block with its drawing primitives in absolute page
// coordinates. A region never crosses a page boundary. Within a region,
// rects draw first, then lines, then text, so fills sit behind content.
type Region struct {
	Kind  RegionKind
	BBox  BBox
	Rects []RectOp
	Lines []LineOp
	Texts []TextOp
}

// Page holds the regions placed on one page, top to bottom.
type Page struct {
	Regions []Region
}

// Document is the laid-out result: pages in order plus any overflow
// records produced by clipping.
type Document struct {
	Pages     []Page
	Overflows []Overflow
}

// Overflow records an element that could not fit even a fresh page and was
// clipped with a visible marker. Layout continues after recording one;
// overflows are reported, never fatal.
type Overflow struct {
	Page   int // zero-based page index
	Kind   RegionKind
	Detail string
}
