package main

// Notes:
// - exitCodeFor: we test all sentinel errors from the library and internal
//   packages, plus wrapped errors to verify the errors.Is() chain works.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	invoicepdf "github.com/Israrkhan09/invoice-website"
	"github.com/Israrkhan09/invoice-website/internal/config"
	"github.com/Israrkhan09/invoice-website/internal/dateutil"
	"github.com/Israrkhan09/invoice-website/internal/fileutil"
	"github.com/Israrkhan09/invoice-website/internal/suggest"
	"github.com/Israrkhan09/invoice-website/internal/themekit"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Rendering errors (exit 4)
		{"pdf render", invoicepdf.ErrPDFRender, ExitRender},
		{"wrapped pdf render", fmt.Errorf("exporting: %w", invoicepdf.ErrPDFRender), ExitRender},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"delivery failed", invoicepdf.ErrDelivery, ExitIO},
		{"write pdf", ErrWritePDF, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"kit read", themekit.ErrKitRead, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"invalid tax rate", ErrInvalidTaxRate, ExitUsage},
		{"invalid amount", ErrInvalidAmount, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"document parse", config.ErrDocumentParse, ExitUsage},
		{"empty document", config.ErrEmptyDocument, ExitUsage},
		{"document too large", config.ErrDocumentTooLarge, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"too many items", config.ErrTooManyItems, ExitUsage},
		{"negative tax rate config", config.ErrNegativeTaxRate, ExitUsage},
		{"invalid extension", fileutil.ErrInvalidExtension, ExitUsage},
		{"invalid date format", dateutil.ErrInvalidDateFormat, ExitUsage},
		{"invalid date offset", dateutil.ErrInvalidDateOffset, ExitUsage},
		{"kit not found", themekit.ErrKitNotFound, ExitUsage},
		{"invalid kit name", themekit.ErrInvalidKitName, ExitUsage},
		{"invalid kit dir", themekit.ErrInvalidKitDir, ExitUsage},
		{"kit parse", themekit.ErrKitParse, ExitUsage},
		{"path traversal", themekit.ErrPathTraversal, ExitUsage},
		{"missing reference", suggest.ErrMissingReference, ExitUsage},
		{"unknown client", suggest.ErrUnknownClient, ExitUsage},
		{"nil invoice", invoicepdf.ErrNilInvoice, ExitUsage},
		{"missing client name", invoicepdf.ErrMissingClientName, ExitUsage},
		{"missing issuer name", invoicepdf.ErrMissingIssuerName, ExitUsage},
		{"invalid email", invoicepdf.ErrInvalidEmail, ExitUsage},
		{"non-positive quantity", invoicepdf.ErrNonPositiveQuantity, ExitUsage},
		{"non-positive rate", invoicepdf.ErrNonPositiveRate, ExitUsage},
		{"invalid page size", invoicepdf.ErrInvalidPageSize, ExitUsage},
		{"invalid orientation", invoicepdf.ErrInvalidOrientation, ExitUsage},
		{"invalid margin", invoicepdf.ErrInvalidMargin, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()
	// Verify exit codes follow Unix conventions
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	// Verify custom codes are below 126 (Unix convention)
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, should be < 126", ExitIO)
	}
	if ExitRender >= 126 {
		t.Errorf("ExitRender = %d, should be < 126", ExitRender)
	}
}
