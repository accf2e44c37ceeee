package main

import (
	"errors"
	"os"

	invoicepdf "github.com/Israrkhan09/invoice-website"
	"github.com/Israrkhan09/invoice-website/internal/config"
	"github.com/Israrkhan09/invoice-website/internal/dateutil"
	"github.com/Israrkhan09/invoice-website/internal/fileutil"
	"github.com/Israrkhan09/invoice-website/internal/suggest"
	"github.com/Israrkhan09/invoice-website/internal/themekit"
)

// Exit codes for the invoicepdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failures
	ExitRender  = 4 // PDF rendering errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, invoicepdf.ErrPDFRender) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, invoicepdf.ErrDelivery) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, themekit.ErrKitRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidTaxRate) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrDocumentParse) ||
		errors.Is(err, config.ErrEmptyDocument) ||
		errors.Is(err, config.ErrDocumentTooLarge) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrTooManyItems) ||
		errors.Is(err, config.ErrNegativeTaxRate) ||
		errors.Is(err, fileutil.ErrInvalidExtension) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, dateutil.ErrInvalidDateOffset) ||
		errors.Is(err, themekit.ErrKitNotFound) ||
		errors.Is(err, themekit.ErrInvalidKitName) ||
		errors.Is(err, themekit.ErrInvalidKitDir) ||
		errors.Is(err, themekit.ErrKitParse) ||
		errors.Is(err, themekit.ErrPathTraversal) ||
		errors.Is(err, suggest.ErrMissingReference) ||
		errors.Is(err, suggest.ErrUnknownClient) ||
		errors.Is(err, invoicepdf.ErrNilInvoice) ||
		errors.Is(err, invoicepdf.ErrMissingClientName) ||
		errors.Is(err, invoicepdf.ErrMissingIssuerName) ||
		errors.Is(err, invoicepdf.ErrInvalidEmail) ||
		errors.Is(err, invoicepdf.ErrNonPositiveQuantity) ||
		errors.Is(err, invoicepdf.ErrNonPositiveRate) ||
		errors.Is(err, invoicepdf.ErrInvalidPageSize) ||
		errors.Is(err, invoicepdf.ErrInvalidOrientation) ||
		errors.Is(err, invoicepdf.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
