package layout

// BBox is an axis-aligned box in page coordinates.
type BBox struct {
	X float64 // left edge
	Y float64 // top edge
	W float64
	H float64
}

// Right returns the X coordinate of the right edge.
func (b BBox) Right() float64 {
	return b.X + b.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (b BBox) Bottom() float64 {
	return b.Y + b.H
}

// RGB is a 24-bit color with components in [0, 255].
type RGB struct {
	R, G, B int
}

// FontSpec identifies a font face and size for measurement and drawing.
// Style follows the renderer convention: "" regular, "B" bold, "I" italic.
type FontSpec struct {
	Family string
	Style  string
	Size   float64 // points
}

// Measurer reports the rendered width of a string in points.
//
// Production code injects a measurer backed by the PDF renderer's font
// metrics so wrapping decisions match what actually gets drawn. Tests
// inject fixed-advance fakes for exact line counts.
type Measurer interface {
	TextWidth(s string, font FontSpec) float64
}
