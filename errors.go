package invoicepdf

import "errors"

// Sentinel errors for library operations.
var (
	// Invoice validation errors. Validate is the trust boundary for
	// callers that build invoices in code; the CLI validates documents
	// at load time and both paths converge before export.
	ErrNilInvoice          = errors.New("invoice cannot be nil")
	ErrMissingClientName   = errors.New("client name is required")
	ErrMissingIssuerName   = errors.New("issuer name is required")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrNonPositiveRate     = errors.New("rate must be positive")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Rendering errors.
	ErrPDFRender = errors.New("PDF rendering failed")

	// Delivery errors. ErrDelivery wraps transport failures; the export
	// result is still returned so delivery can be retried without
	// recomputing the document.
	ErrDelivery               = errors.New("delivery failed")
	ErrUnsupportedDestination = errors.New("unsupported delivery destination")
	ErrNoMailSender           = errors.New("no mail sender configured")
)
