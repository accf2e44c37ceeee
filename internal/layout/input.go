package layout

// Input is the immutable snapshot the engine lays out. Money fields arrive
// pre-formatted; the engine positions strings and does no arithmetic.
type Input struct {
	Number  string
	Date    string
	DueDate string

	Issuer PartyBlock
	BillTo PartyBlock

	Items []ItemRow

	Subtotal string
	TaxLabel string // e.g. "Tax (8%)"
	Tax      string
	Total    string

	Notes string

	Style Style
	Page  PageSpec
}

// PartyBlock is one party's contact lines. Empty fields are skipped;
// Address may contain embedded newlines.
type PartyBlock struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
}

// ItemRow is one pre-formatted line item.
type ItemRow struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

// Style carries the resolved visual theme in renderer-ready form.
type Style struct {
	Primary   RGB
	Secondary RGB
	Accent    RGB

	HeadingFont string
	BodyFont    string
}

// PageSpec is the page geometry in points.
type PageSpec struct {
	Width  float64
	Height float64
	Margin float64 // applied to all four sides
}

// ContentWidth returns the usable horizontal span between margins.
func (p PageSpec) ContentWidth() float64 {
	return p.Width - 2*p.Margin
}

// ContentHeight returns the usable vertical span between margins.
func (p PageSpec) ContentHeight() float64 {
	return p.Height - 2*p.Margin
}
