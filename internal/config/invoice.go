package config

import (
	"fmt"
	"os"
)

// InvoiceDoc is the YAML shape of a single invoice document. Dates may be
// literal text or "auto" expressions resolved by the CLI; amounts are exact
// decimals. Optional tax, theme and page sections override tool config for
// this document only.
type InvoiceDoc struct {
	Invoice InvoiceMeta  `yaml:"invoice"`
	Issuer  PartyConfig  `yaml:"issuer"`
	BillTo  PartyConfig  `yaml:"billTo"`
	Items   []ItemDoc    `yaml:"items"`
	Notes   string       `yaml:"notes"`
	Tax     *TaxConfig   `yaml:"tax"`
	Theme   *ThemeConfig `yaml:"theme"`
	Page    *PageConfig  `yaml:"page"`
}

// InvoiceMeta identifies the document.
type InvoiceMeta struct {
	Number  string `yaml:"number"`
	Date    string `yaml:"date"`    // literal, "auto", or "auto:FORMAT"
	DueDate string `yaml:"dueDate"` // literal, "auto+Nd", or "auto+Nd:FORMAT"
}

// ItemDoc is one line item.
type ItemDoc struct {
	ID          string  `yaml:"id"`
	Description string  `yaml:"description"`
	Quantity    Decimal `yaml:"quantity"`
	Rate        Decimal `yaml:"rate"`
}

// Validate checks field lengths and item count. Business rules (positive
// quantities, email syntax) are enforced downstream by the library.
func (d *InvoiceDoc) Validate() error {
	if err := validateFieldLength("invoice.number", d.Invoice.Number, MaxNumberLength); err != nil {
		return err
	}
	if err := validateFieldLength("invoice.date", d.Invoice.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("invoice.dueDate", d.Invoice.DueDate, MaxDateLength); err != nil {
		return err
	}
	if err := validatePartyLengths("issuer", d.Issuer); err != nil {
		return err
	}
	if err := validatePartyLengths("billTo", d.BillTo); err != nil {
		return err
	}
	if len(d.Items) > MaxInvoiceItems {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyItems, len(d.Items), MaxInvoiceItems)
	}
	for i, item := range d.Items {
		if err := validateFieldLength(fmt.Sprintf("items[%d].id", i), item.ID, MaxItemIDLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("items[%d].description", i), item.Description, MaxDescriptionLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("notes", d.Notes, MaxNotesLength); err != nil {
		return err
	}
	if d.Tax != nil && d.Tax.Rate.Sign() < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeTaxRate, d.Tax.Rate)
	}
	if d.Theme != nil {
		if err := validateThemeLengths(*d.Theme); err != nil {
			return err
		}
	}
	if d.Page != nil {
		if err := validateFieldLength("page.size", d.Page.Size, MaxPageSizeLength); err != nil {
			return err
		}
		if err := validateFieldLength("page.orientation", d.Page.Orientation, MaxOrientationLength); err != nil {
			return err
		}
	}
	return nil
}

// LoadInvoice reads and parses one invoice document from path.
func LoadInvoice(path string) (*InvoiceDoc, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- invoice path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading invoice file: %w", err)
	}

	var doc InvoiceDoc
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentParse, path, err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &doc, nil
}
