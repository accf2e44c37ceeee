package layout

import (
	"fmt"
	"strings"
)

// Type sizes and spacing, in points.
const (
	titleSize = 26.0
	labelSize = 9.0
	bodySize  = 10.0
	totalSize = 12.0

	lineSpacing = 1.4

	cellPadX = 6.0
	cellPadY = 5.0
	blockGap = 18.0
	labelGap = 4.0

	accentBarWidth  = 72.0
	accentBarHeight = 3.0
	accentBarGap    = 6.0

	dividerPad = 4.0
	ruleWidth  = 0.8

	totalsFraction = 0.4
)

// Minimum usable area inside the margins. Smaller pages cannot hold the
// title block plus a single table row.
const (
	minContentWidth  = 144.0
	minContentHeight = 160.0
)

// layoutEpsilon absorbs float accumulation noise in fit checks.
const layoutEpsilon = 0.01

// Fixed chrome colors. Theme colors cover brand elements (title, header
// fill, totals, accents); borders and muted labels stay neutral.
var (
	white     = RGB{R: 255, G: 255, B: 255}
	mutedText = RGB{R: 107, G: 114, B: 128}
	zebraFill = RGB{R: 249, G: 250, B: 251}
	ruleGray  = RGB{R: 229, G: 231, B: 235}
)

// Item table geometry: description, quantity, rate, amount. Fractions of
// the content width; quantity, rate and amount are right-aligned.
var (
	columnHeaders   = [4]string{"Description", "Quantity", "Rate", "Amount"}
	columnFractions = [4]float64{0.46, 0.14, 0.20, 0.20}
)

// Engine lays out an invoice snapshot into pages of positioned regions.
// Layout is a pure function of its input: the same Input always produces
// the same Document. An Engine is safe for concurrent use.
type Engine struct {
	m Measurer
}

// NewEngine returns an engine that wraps and aligns text with m.
func NewEngine(m Measurer) *Engine {
	return &Engine{m: m}
}

// Layout places every block of the invoice in fixed vertical order: title,
// metadata, parties, item table, totals, notes. Blocks that do not fit the
// remaining page space move whole to a new page; the table header is
// re-emitted on every page the table spans. An atomic element taller than a
// fresh page is clipped with a visible marker and recorded as an Overflow
// rather than failing the layout.
func (e *Engine) Layout(in Input) (*Document, error) {
	if e.m == nil {
		return nil, ErrNoMeasurer
	}
	if in.Page.ContentWidth() < minContentWidth || in.Page.ContentHeight() < minContentHeight {
		return nil, fmt.Errorf("%w: %.0fx%.0fpt inside margins",
			ErrPageTooSmall, in.Page.ContentWidth(), in.Page.ContentHeight())
	}

	cur := newCursor(in.Page)

	e.placeTitle(cur, in)
	cur.skip(blockGap)
	e.placeMeta(cur, in)
	e.placeParties(cur, in)
	e.placeTable(cur, in)
	cur.skip(blockGap)
	e.placeTotals(cur, in)
	if strings.TrimSpace(in.Notes) != "" {
		cur.skip(blockGap)
		e.placeNotes(cur, in)
	}

	return cur.doc, nil
}

// cursor tracks the running vertical position on the current page.
type cursor struct {
	doc  *Document
	page PageSpec
	y    float64
}

func newCursor(page PageSpec) *cursor {
	c := &cursor{doc: &Document{}, page: page}
	c.newPage()
	return c
}

func (c *cursor) current() *Page {
	return &c.doc.Pages[len(c.doc.Pages)-1]
}

func (c *cursor) pageIndex() int {
	return len(c.doc.Pages) - 1
}

func (c *cursor) bottom() float64 {
	return c.page.Height - c.page.Margin
}

func (c *cursor) fits(h float64) bool {
	return c.y+h <= c.bottom()+layoutEpsilon
}

func (c *cursor) newPage() {
	c.doc.Pages = append(c.doc.Pages, Page{})
	c.y = c.page.Margin
}

// ensure opens a new page when h does not fit the remaining space. A block
// taller than a whole page stays on the fresh page; callers clip such
// blocks before asking.
func (c *cursor) ensure(h float64) {
	if c.fits(h) {
		return
	}
	if len(c.current().Regions) == 0 && c.y <= c.page.Margin+layoutEpsilon {
		return
	}
	c.newPage()
}

func (c *cursor) place(r Region) {
	p := c.current()
	p.Regions = append(p.Regions, r)
	c.y = r.BBox.Bottom()
}

// skip advances the cursor without emitting anything. Trailing gaps at a
// page bottom disappear naturally: the next ensure opens a fresh page.
func (c *cursor) skip(h float64) {
	c.y += h
}

func (c *cursor) overflow(kind RegionKind, detail string) {
	c.doc.Overflows = append(c.doc.Overflows, Overflow{
		Page:   c.pageIndex(),
		Kind:   kind,
		Detail: detail,
	})
}

func lineHeight(size float64) float64 {
	return size * lineSpacing
}

// rightAlign returns the X origin that ends s exactly at right.
func (e *Engine) rightAlign(s string, right float64, f FontSpec) float64 {
	return right - e.m.TextWidth(s, f)
}

// markClipped makes a clip visible on the last kept line.
func (e *Engine) markClipped(s string, maxWidth float64, f FontSpec) string {
	if e.m.TextWidth(s+ellipsis, f) <= maxWidth {
		return s + ellipsis
	}
	return TruncateToWidth(s, maxWidth, f, e.m)
}

// ---------------------------------------------------------------------------
// Title and metadata
// ---------------------------------------------------------------------------

func (e *Engine) placeTitle(cur *cursor, in Input) {
	font := FontSpec{Family: in.Style.HeadingFont, Style: "B", Size: titleSize}
	h := lineHeight(titleSize) + accentBarGap + accentBarHeight
	cur.ensure(h)

	x := cur.page.Margin
	top := cur.y
	r := Region{
		Kind: RegionTitle,
		BBox: BBox{X: x, Y: top, W: cur.page.ContentWidth(), H: h},
	}
	r.Texts = append(r.Texts, TextOp{
		Text:  "INVOICE",
		X:     x,
		Y:     top + titleSize,
		Font:  font,
		Color: in.Style.Primary,
	})
	r.Rects = append(r.Rects, RectOp{
		BBox: BBox{X: x, Y: top + lineHeight(titleSize) + accentBarGap, W: accentBarWidth, H: accentBarHeight},
		Fill: in.Style.Accent,
	})
	cur.place(r)
}

func (e *Engine) placeMeta(cur *cursor, in Input) {
	type pair struct{ label, value string }
	pairs := make([]pair, 0, 3)
	if in.Number != "" {
		pairs = append(pairs, pair{"Invoice #", in.Number})
	}
	if in.Date != "" {
		pairs = append(pairs, pair{"Date", in.Date})
	}
	if in.DueDate != "" {
		pairs = append(pairs, pair{"Due Date", in.DueDate})
	}
	if len(pairs) == 0 {
		return
	}

	labelFont := FontSpec{Family: in.Style.BodyFont, Style: "B", Size: bodySize}
	valueFont := FontSpec{Family: in.Style.BodyFont, Size: bodySize}

	var labelColW float64
	for _, p := range pairs {
		labelColW = max(labelColW, e.m.TextWidth(p.label, labelFont))
	}
	labelColW += 18

	lh := lineHeight(bodySize)
	h := float64(len(pairs)) * lh
	cur.ensure(h)

	x := cur.page.Margin
	top := cur.y
	r := Region{
		Kind: RegionMeta,
		BBox: BBox{X: x, Y: top, W: cur.page.ContentWidth(), H: h},
	}
	y := top
	for _, p := range pairs {
		r.Texts = append(r.Texts,
			TextOp{Text: p.label, X: x, Y: y + bodySize, Font: labelFont, Color: mutedText},
			TextOp{Text: p.value, X: x + labelColW, Y: y + bodySize, Font: valueFont, Color: in.Style.Secondary},
		)
		y += lh
	}
	cur.place(r)
	cur.skip(blockGap)
}

// ---------------------------------------------------------------------------
// Parties
// ---------------------------------------------------------------------------

// partyLine is one rendered contact line; the party name renders bold.
type partyLine struct {
	text string
	bold bool
}

func (e *Engine) partyLines(p PartyBlock, style Style, colW float64) []partyLine {
	var out []partyLine
	add := func(s string, bold bool) {
		if strings.TrimSpace(s) == "" {
			return
		}
		f := FontSpec{Family: style.BodyFont, Size: bodySize}
		if bold {
			f.Style = "B"
		}
		for _, ln := range Wrap(s, colW, f, e.m) {
			out = append(out, partyLine{text: ln, bold: bold})
		}
	}
	add(p.Name, true)
	add(p.Company, false)
	add(p.Email, false)
	add(p.Phone, false)
	add(p.Address, false)
	return out
}

func (e *Engine) placeParties(cur *cursor, in Input) {
	const columnGap = 24.0
	contentW := cur.page.ContentWidth()
	colW := (contentW - columnGap) / 2

	left := e.partyLines(in.Issuer, in.Style, colW)
	right := e.partyLines(in.BillTo, in.Style, colW)
	if len(left) == 0 && len(right) == 0 {
		return
	}

	lh := lineHeight(bodySize)
	headH := lineHeight(labelSize) + labelGap

	// Clip columns that cannot fit even a fresh page.
	maxLines := int((cur.page.ContentHeight() - headH) / lh)
	clip := func(lines []partyLine, label string) []partyLine {
		if len(lines) <= maxLines {
			return lines
		}
		f := FontSpec{Family: in.Style.BodyFont, Size: bodySize}
		clipped := append([]partyLine(nil), lines[:maxLines]...)
		last := &clipped[len(clipped)-1]
		last.text = e.markClipped(last.text, colW, f)
		cur.overflow(RegionParties, fmt.Sprintf("%s block clipped to %d lines", label, maxLines))
		return clipped
	}
	left = clip(left, "issuer")
	right = clip(right, "bill-to")

	h := headH + float64(max(len(left), len(right)))*lh
	cur.ensure(h)

	x := cur.page.Margin
	top := cur.y
	r := Region{
		Kind: RegionParties,
		BBox: BBox{X: x, Y: top, W: contentW, H: h},
	}

	labelFont := FontSpec{Family: in.Style.BodyFont, Style: "B", Size: labelSize}
	column := func(x0 float64, label string, lines []partyLine) {
		if len(lines) == 0 {
			return
		}
		r.Texts = append(r.Texts, TextOp{
			Text: label, X: x0, Y: top + labelSize, Font: labelFont, Color: mutedText,
		})
		y := top + headH
		for _, ln := range lines {
			f := FontSpec{Family: in.Style.BodyFont, Size: bodySize}
			if ln.bold {
				f.Style = "B"
			}
			r.Texts = append(r.Texts, TextOp{
				Text: ln.text, X: x0, Y: y + bodySize, Font: f, Color: in.Style.Secondary,
			})
			y += lh
		}
	}
	column(x, "FROM", left)
	column(x+colW+columnGap, "BILL TO", right)

	cur.place(r)
	cur.skip(blockGap)
}

// ---------------------------------------------------------------------------
// Item table
// ---------------------------------------------------------------------------

// tableGeometry precomputes column origins and widths for the content span.
type tableGeometry struct {
	x [4]float64
	w [4]float64
}

func newTableGeometry(page PageSpec) tableGeometry {
	var g tableGeometry
	x := page.Margin
	for i, frac := range columnFractions {
		g.x[i] = x
		g.w[i] = frac * page.ContentWidth()
		x += g.w[i]
	}
	return g
}

func (g tableGeometry) right(i int) float64 {
	return g.x[i] + g.w[i]
}

func headerHeight() float64 {
	return lineHeight(bodySize) + 2*cellPadY
}

// placeTableHeader emits the header row at the cursor. The caller has
// already verified the fit.
func (e *Engine) placeTableHeader(cur *cursor, in Input, g tableGeometry) {
	font := FontSpec{Family: in.Style.BodyFont, Style: "B", Size: bodySize}
	h := headerHeight()
	top := cur.y

	r := Region{
		Kind: RegionTableHeader,
		BBox: BBox{X: cur.page.Margin, Y: top, W: cur.page.ContentWidth(), H: h},
	}
	r.Rects = append(r.Rects, RectOp{BBox: r.BBox, Fill: in.Style.Primary})

	baseline := top + cellPadY + bodySize
	for i, label := range columnHeaders {
		x := g.x[i] + cellPadX
		if i > 0 {
			x = e.rightAlign(label, g.right(i)-cellPadX, font)
		}
		r.Texts = append(r.Texts, TextOp{Text: label, X: x, Y: baseline, Font: font, Color: white})
	}
	cur.place(r)
}

// tableRow is one item with its description pre-wrapped to the column.
// detail is non-empty when the description was clipped.
type tableRow struct {
	item   ItemRow
	lines  []string
	h      float64
	detail string
}

// buildRows wraps every description up front so pagination decisions see
// final row heights. A description taller than a fresh page below a header
// is clipped here and flagged; the overflow record is written at placement
// time when the page index is known.
func (e *Engine) buildRows(in Input, g tableGeometry, freshH float64) []tableRow {
	bodyFont := FontSpec{Family: in.Style.BodyFont, Size: bodySize}
	descW := g.w[0] - 2*cellPadX
	lh := lineHeight(bodySize)

	maxLines := int((freshH - headerHeight() - 2*cellPadY) / lh)
	if maxLines < 1 {
		maxLines = 1
	}

	rows := make([]tableRow, 0, len(in.Items))
	for i, item := range in.Items {
		lines := Wrap(item.Description, descW, bodyFont, e.m)
		detail := ""
		if len(lines) > maxLines {
			lines = append([]string(nil), lines[:maxLines]...)
			lines[len(lines)-1] = e.markClipped(lines[len(lines)-1], descW, bodyFont)
			detail = fmt.Sprintf("item %d description clipped to %d lines", i+1, maxLines)
		}
		rows = append(rows, tableRow{
			item:   item,
			lines:  lines,
			h:      float64(len(lines))*lh + 2*cellPadY,
			detail: detail,
		})
	}
	return rows
}

func (e *Engine) placeTable(cur *cursor, in Input) {
	g := newTableGeometry(cur.page)
	lh := lineHeight(bodySize)
	headH := headerHeight()
	rows := e.buildRows(in, g, cur.page.ContentHeight())

	// Keep the header and the first row together so a header never
	// strands at a page bottom.
	lead := headH
	if len(rows) > 0 {
		lead += rows[0].h
	}
	cur.ensure(lead)
	e.placeTableHeader(cur, in, g)

	bodyFont := FontSpec{Family: in.Style.BodyFont, Size: bodySize}

	for i, row := range rows {
		if !cur.fits(row.h) {
			cur.newPage()
			e.placeTableHeader(cur, in, g)
		}

		top := cur.y
		r := Region{
			Kind: RegionTableRow,
			BBox: BBox{X: cur.page.Margin, Y: top, W: cur.page.ContentWidth(), H: row.h},
		}
		if i%2 == 1 {
			r.Rects = append(r.Rects, RectOp{BBox: r.BBox, Fill: zebraFill})
		}

		y := top + cellPadY
		for _, ln := range row.lines {
			r.Texts = append(r.Texts, TextOp{
				Text: ln, X: g.x[0] + cellPadX, Y: y + bodySize, Font: bodyFont, Color: in.Style.Secondary,
			})
			y += lh
		}

		baseline := top + cellPadY + bodySize
		for col, val := range [3]string{row.item.Quantity, row.item.Rate, row.item.Amount} {
			r.Texts = append(r.Texts, TextOp{
				Text:  val,
				X:     e.rightAlign(val, g.right(col+1)-cellPadX, bodyFont),
				Y:     baseline,
				Font:  bodyFont,
				Color: in.Style.Secondary,
			})
		}

		r.Lines = append(r.Lines, LineOp{
			X1: r.BBox.X, Y1: r.BBox.Bottom(),
			X2: r.BBox.Right(), Y2: r.BBox.Bottom(),
			Width: ruleWidth, Color: ruleGray,
		})

		cur.place(r)
		if row.detail != "" {
			cur.overflow(RegionTableRow, row.detail)
		}
	}
}

// ---------------------------------------------------------------------------
// Totals and notes
// ---------------------------------------------------------------------------

func (e *Engine) placeTotals(cur *cursor, in Input) {
	lh := lineHeight(bodySize)
	totalLH := lineHeight(totalSize)
	h := 2*lh + 2*dividerPad + ruleWidth + totalLH
	cur.ensure(h)

	contentW := cur.page.ContentWidth()
	blockW := totalsFraction * contentW
	x := cur.page.Margin + contentW - blockW
	right := x + blockW
	top := cur.y

	r := Region{
		Kind: RegionTotals,
		BBox: BBox{X: x, Y: top, W: blockW, H: h},
	}

	labelFont := FontSpec{Family: in.Style.BodyFont, Size: bodySize}
	valueFont := labelFont
	y := top
	for _, row := range [2][2]string{{"Subtotal", in.Subtotal}, {in.TaxLabel, in.Tax}} {
		r.Texts = append(r.Texts,
			TextOp{Text: row[0], X: x, Y: y + bodySize, Font: labelFont, Color: mutedText},
			TextOp{Text: row[1], X: e.rightAlign(row[1], right, valueFont), Y: y + bodySize, Font: valueFont, Color: in.Style.Secondary},
		)
		y += lh
	}

	y += dividerPad
	r.Lines = append(r.Lines, LineOp{
		X1: x, Y1: y, X2: right, Y2: y, Width: ruleWidth, Color: in.Style.Accent,
	})
	y += ruleWidth + dividerPad

	totalFont := FontSpec{Family: in.Style.HeadingFont, Style: "B", Size: totalSize}
	r.Texts = append(r.Texts,
		TextOp{Text: "Total", X: x, Y: y + totalSize, Font: totalFont, Color: in.Style.Primary},
		TextOp{Text: in.Total, X: e.rightAlign(in.Total, right, totalFont), Y: y + totalSize, Font: totalFont, Color: in.Style.Primary},
	)

	cur.place(r)
}

func (e *Engine) placeNotes(cur *cursor, in Input) {
	contentW := cur.page.ContentWidth()
	bodyFont := FontSpec{Family: in.Style.BodyFont, Size: bodySize}
	labelFont := FontSpec{Family: in.Style.BodyFont, Style: "B", Size: labelSize}

	lines := Wrap(in.Notes, contentW, bodyFont, e.m)
	lh := lineHeight(bodySize)
	headH := lineHeight(labelSize) + labelGap

	// Keep the label attached to the first line; the rest flows line by
	// line across pages.
	cur.ensure(headH + lh)

	x := cur.page.Margin
	first := true
	for len(lines) > 0 {
		top := cur.y
		y := top
		r := Region{Kind: RegionNotes}

		if first {
			r.Texts = append(r.Texts, TextOp{
				Text: "NOTES", X: x, Y: y + labelSize, Font: labelFont, Color: mutedText,
			})
			y += headH
		}

		for len(lines) > 0 && y+lh <= cur.bottom()+layoutEpsilon {
			r.Texts = append(r.Texts, TextOp{
				Text: lines[0], X: x, Y: y + bodySize, Font: bodyFont, Color: in.Style.Secondary,
			})
			lines = lines[1:]
			y += lh
		}

		r.BBox = BBox{X: x, Y: top, W: contentW, H: y - top}
		cur.place(r)
		first = false

		if len(lines) > 0 {
			cur.newPage()
		}
	}
}
