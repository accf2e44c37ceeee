package invoicepdf

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// DefaultTaxRate applies when no rate is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.08)

// PageSettings configures document page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults); empty fields and a zero
// margin also mean "use the default" and are valid.
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// withDefaults returns a fully populated copy with defaults filled in for
// empty fields. Safe on a nil receiver.
func (p *PageSettings) withDefaults() *PageSettings {
	out := DefaultPageSettings()
	if p == nil {
		return out
	}
	if p.Size != "" {
		out.Size = strings.ToLower(p.Size)
	}
	if p.Orientation != "" {
		out.Orientation = strings.ToLower(p.Orientation)
	}
	if p.Margin != 0 {
		out.Margin = p.Margin
	}
	return out
}

// isValidPageSize checks if size is a known page size (case-insensitive).
// Empty means "use default" and is valid.
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case "", PageSizeA4, PageSizeLetter, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
// Empty means "use default" and is valid.
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case "", OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// LineItem is one billable row. Amount is always derived from quantity and
// rate, never stored, so edited items can never carry a stale amount.
type LineItem struct {
	ID          string // optional caller-assigned identifier
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// Amount returns Quantity times Rate, exact and unrounded.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.Rate)
}

// Validate checks that the item can be billed.
func (li LineItem) Validate() error {
	if li.Quantity.Sign() <= 0 {
		return fmt.Errorf("%w: %s", ErrNonPositiveQuantity, li.Quantity)
	}
	if li.Rate.Sign() <= 0 {
		return fmt.Errorf("%w: %s", ErrNonPositiveRate, li.Rate)
	}
	return nil
}

// Party identifies one side of the invoice. Address may contain embedded
// newlines; every line renders.
type Party struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
}

// Validate checks the optional contact fields. Name presence is checked by
// Invoice.Validate, which knows which party it is.
func (p Party) Validate() error {
	if p.Email == "" {
		return nil
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, p.Email)
	}
	return nil
}

// ThemeColors are CSS-style hex colors ("#2563eb"). Empty or unparseable
// fields fall back to the matching default at theme resolution.
type ThemeColors struct {
	Primary   string
	Secondary string
	Accent    string
}

// ThemeFonts name preferred font families. Families resolve to the nearest
// built-in face at theme resolution; empty fields keep the default.
type ThemeFonts struct {
	Heading string
	Body    string
}

// Theme is an optional visual override. A nil theme means all defaults;
// a partial theme keeps defaults for every unset field.
type Theme struct {
	Colors ThemeColors
	Fonts  ThemeFonts
}

// Invoice is the complete input snapshot for one export. Treat it as
// immutable once handed to an Exporter: edits should build a new value.
type Invoice struct {
	Number  string
	Date    string // display string, already formatted
	DueDate string

	Issuer Party
	BillTo Party

	Items []LineItem
	Notes string

	Theme *Theme
}

// Validate checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build invoices in
// code. CLI users have their documents validated earlier at load time.
// Both paths converge here, ensuring all inputs are validated before
// rendering.
func (inv *Invoice) Validate() error {
	if inv == nil {
		return ErrNilInvoice
	}
	if strings.TrimSpace(inv.Issuer.Name) == "" {
		return ErrMissingIssuerName
	}
	if strings.TrimSpace(inv.BillTo.Name) == "" {
		return ErrMissingClientName
	}
	if err := inv.Issuer.Validate(); err != nil {
		return fmt.Errorf("issuer: %w", err)
	}
	if err := inv.BillTo.Validate(); err != nil {
		return fmt.Errorf("bill to: %w", err)
	}
	for i, item := range inv.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return nil
}

// Totals are the computed money fields of an invoice.
type Totals struct {
	Subtotal decimal.Decimal
	TaxRate  decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	taxRate decimal.Decimal
	page    *PageSettings
}

// WithTaxRate sets the tax rate applied to the subtotal, e.g. 0.08 for 8%.
// Panics if rate is negative (programmer error, similar to time.NewTicker).
func WithTaxRate(rate decimal.Decimal) Option {
	if rate.Sign() < 0 {
		panic("invoicepdf: WithTaxRate rate must not be negative")
	}
	return func(e *Exporter) {
		e.cfg.taxRate = rate
	}
}

// WithPageSettings sets the page size, orientation and margins.
// Settings are validated by NewExporter.
func WithPageSettings(p *PageSettings) Option {
	return func(e *Exporter) {
		e.cfg.page = p
	}
}

// WithLogger sets the logger for export and delivery events.
// Panics if l is nil; use zap.NewNop() to silence logging explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("invoicepdf: WithLogger logger must not be nil")
	}
	return func(e *Exporter) {
		e.log = l
	}
}

// WithClock sets the time source used for creation timestamps and fallback
// file names. Exports with a fixed clock are byte-identical for identical
// invoices. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("invoicepdf: WithClock time source must not be nil")
	}
	return func(e *Exporter) {
		e.now = now
	}
}

// WithDeliverer replaces the deliverer used by ExportTo.
// Panics if d is nil.
func WithDeliverer(d Deliverer) Option {
	if d == nil {
		panic("invoicepdf: WithDeliverer deliverer must not be nil")
	}
	return func(e *Exporter) {
		e.deliverer = d
	}
}

// WithMailSender enables email destinations through s.
// Panics if s is nil.
func WithMailSender(s MailSender) Option {
	if s == nil {
		panic("invoicepdf: WithMailSender sender must not be nil")
	}
	return func(e *Exporter) {
		e.deliverer = NewStandardDeliverer(s)
	}
}
