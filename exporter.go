package invoicepdf

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Israrkhan09/invoice-website/internal/layout"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ layout.Measurer = (*fpdfMeasurer)(nil)
	_ pdfRenderer     = (*fpdfRenderer)(nil)
	_ Deliverer       = (*StandardDeliverer)(nil)
)

// Exporter renders invoices to PDF artifacts.
// Create with NewExporter; an Exporter is immutable after construction and
// safe for concurrent use. Each export owns its layout tree and renderer
// document, so concurrent exports never share mutable state.
type Exporter struct {
	cfg       exporterConfig
	log       *zap.Logger
	now       func() time.Time
	measurer  layout.Measurer
	renderer  pdfRenderer
	deliverer Deliverer
	engine    *layout.Engine
}

// ExportResult is the rendered artifact and its metadata.
type ExportResult struct {
	PDF      []byte
	FileName string // suggested name, "invoice-<number>.pdf"
	Pages    int
	Totals   Totals

	// Warnings lists content that was clipped to keep the document
	// renderable, one message per clip. An export with warnings still
	// succeeded.
	Warnings []string
}

// NewExporter creates an Exporter with default configuration: A4 portrait
// pages, half-inch margins, an 8% tax rate, local-save delivery and no
// logging. Use options to customize behavior (e.g. WithTaxRate,
// WithPageSettings, WithMailSender). Returns an error if the configured
// page settings are invalid.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg: exporterConfig{
			taxRate: DefaultTaxRate,
			page:    DefaultPageSettings(),
		},
		log: zap.NewNop(),
		now: time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.cfg.page.Validate(); err != nil {
		return nil, err
	}
	e.cfg.page = e.cfg.page.withDefaults()

	// Stage implementations are created here unless injected by tests.
	if e.measurer == nil {
		e.measurer = newFpdfMeasurer()
	}
	if e.renderer == nil {
		e.renderer = &fpdfRenderer{}
	}
	if e.deliverer == nil {
		e.deliverer = NewStandardDeliverer(nil)
	}
	e.engine = layout.NewEngine(e.measurer)

	return e, nil
}

// Export runs the full pipeline: totals, theme resolution, layout, and PDF
// rendering. The context is used for cancellation between stages. Exports
// are deterministic: identical invoices produce byte-identical artifacts
// when the exporter uses a fixed clock.
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (e *Exporter) Export(ctx context.Context, inv *Invoice) (result *ExportResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := inv.Validate(); err != nil {
		return nil, err
	}

	start := e.now()
	exportID := uuid.NewString()

	totals := ComputeTotals(inv.Items, e.cfg.taxRate)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	theme := ResolveTheme(inv.Theme)

	doc, err := e.engine.Layout(e.toLayoutInput(inv, totals, theme))
	if err != nil {
		return nil, fmt.Errorf("laying out document: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	warnings := make([]string, 0, len(doc.Overflows))
	for _, ov := range doc.Overflows {
		warnings = append(warnings, fmt.Sprintf("page %d: %s", ov.Page+1, ov.Detail))
		e.log.Warn("content clipped",
			zap.String("export_id", exportID),
			zap.String("invoice_number", inv.Number),
			zap.Int("page", ov.Page+1),
			zap.String("region", string(ov.Kind)),
			zap.String("detail", ov.Detail),
		)
	}

	pdfBytes, err := e.renderer.Render(doc, renderMeta{
		Title:   documentTitle(inv.Number),
		Created: start,
		Page:    toPageSpec(e.cfg.page),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &ExportResult{
		PDF:      pdfBytes,
		FileName: exportFileName(inv.Number, start),
		Pages:    len(doc.Pages),
		Totals:   totals,
		Warnings: warnings,
	}

	e.log.Info("invoice exported",
		zap.String("export_id", exportID),
		zap.String("invoice_number", inv.Number),
		zap.Int("pages", res.Pages),
		zap.Int("bytes", len(res.PDF)),
		zap.String("total", totals.Total.StringFixed(2)),
		zap.Duration("duration", e.now().Sub(start)),
	)
	return res, nil
}

// ExportTo exports the invoice and hands the artifact to the deliverer.
// When delivery fails, the result is returned alongside the error so the
// caller can retry delivery without recomputing the document; check the
// error with errors.Is(err, ErrDelivery).
func (e *Exporter) ExportTo(ctx context.Context, inv *Invoice, dest Destination) (*ExportResult, error) {
	res, err := e.Export(ctx, inv)
	if err != nil {
		return nil, err
	}

	if err := e.deliverer.Deliver(ctx, res.PDF, res.FileName, dest); err != nil {
		e.log.Error("delivery failed",
			zap.String("invoice_number", inv.Number),
			zap.String("file_name", res.FileName),
			zap.Error(err),
		)
		return res, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	e.log.Info("invoice delivered",
		zap.String("invoice_number", inv.Number),
		zap.String("file_name", res.FileName),
	)
	return res, nil
}

// toLayoutInput converts the public invoice to the engine's input model.
// All money is formatted here; the layout engine only positions strings.
func (e *Exporter) toLayoutInput(inv *Invoice, totals Totals, theme ResolvedTheme) layout.Input {
	items := make([]layout.ItemRow, len(inv.Items))
	for i, li := range inv.Items {
		items[i] = layout.ItemRow{
			Description: li.Description,
			Quantity:    li.Quantity.String(),
			Rate:        formatMoney(li.Rate),
			Amount:      formatMoney(li.Amount()),
		}
	}
	return layout.Input{
		Number:   inv.Number,
		Date:     inv.Date,
		DueDate:  inv.DueDate,
		Issuer:   toPartyBlock(inv.Issuer),
		BillTo:   toPartyBlock(inv.BillTo),
		Items:    items,
		Subtotal: formatMoney(totals.Subtotal),
		TaxLabel: taxLabel(totals.TaxRate),
		Tax:      formatMoney(totals.Tax),
		Total:    formatMoney(totals.Total),
		Notes:    inv.Notes,
		Style: layout.Style{
			Primary:     layout.RGB(theme.Primary),
			Secondary:   layout.RGB(theme.Secondary),
			Accent:      layout.RGB(theme.Accent),
			HeadingFont: theme.HeadingFont,
			BodyFont:    theme.BodyFont,
		},
		Page: toPageSpec(e.cfg.page),
	}
}

// toPartyBlock converts the public Party type to layout.PartyBlock.
func toPartyBlock(p Party) layout.PartyBlock {
	return layout.PartyBlock{
		Name:    p.Name,
		Company: p.Company,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}

// Page dimensions in points.
var pageSizes = map[string]struct{ w, h float64 }{
	PageSizeA4:     {w: 595.28, h: 841.89},
	PageSizeLetter: {w: 612, h: 792},
	PageSizeLegal:  {w: 612, h: 1008},
}

const pointsPerInch = 72.0

// toPageSpec converts validated page settings to engine geometry.
func toPageSpec(p *PageSettings) layout.PageSpec {
	if p == nil {
		p = DefaultPageSettings()
	}
	size, ok := pageSizes[strings.ToLower(p.Size)]
	if !ok {
		size = pageSizes[PageSizeA4]
	}
	w, h := size.w, size.h
	if strings.ToLower(p.Orientation) == OrientationLandscape {
		w, h = h, w
	}
	return layout.PageSpec{
		Width:  w,
		Height: h,
		Margin: p.Margin * pointsPerInch,
	}
}

// formatMoney renders a decimal as dollars with two fixed places. Negative
// values keep the sign inside the currency marker: "$-5.00".
func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// taxLabel names the applied rate: 0.08 becomes "Tax (8%)".
func taxLabel(rate decimal.Decimal) string {
	percent := rate.Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("Tax (%s%%)", percent.String())
}

// documentTitle is embedded in the artifact metadata.
func documentTitle(number string) string {
	if number == "" {
		return "Invoice"
	}
	return "Invoice " + number
}

// exportFileName derives the artifact name from the invoice number,
// sanitized for filesystems. An empty or fully unsafe number falls back to
// a timestamp so the name is never empty or malformed.
func exportFileName(number string, now time.Time) string {
	s := sanitizeFileName(number)
	if s == "" {
		s = now.Format("20060102-150405")
	}
	return "invoice-" + s + ".pdf"
}

// sanitizeFileName keeps letters, digits, dots, dashes and underscores.
// Path separators become dashes and spaces become underscores; anything
// else is dropped.
func sanitizeFileName(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == '/' || r == '\\':
			b.WriteRune('-')
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), ".")
}
