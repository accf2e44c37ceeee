package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"
)

// MaxDocumentSize limits YAML input to prevent memory exhaustion.
// Set to 1MB which is generous for invoice documents.
var MaxDocumentSize = 1 * 1024 * 1024

// Sentinel errors for YAML decoding.
var (
	ErrEmptyDocument    = errors.New("document is empty")
	ErrDocumentTooLarge = errors.New("document exceeds maximum size")
)

// decodeStrict parses YAML with unknown fields rejected, so typos in keys
// surface as errors instead of silently dropped settings.
func decodeStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyDocument
	}
	if len(data) > MaxDocumentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// Decimal is a YAML scalar parsed with exact decimal arithmetic. It accepts
// quoted and bare numbers, so `rate: 0.08` and `rate: "0.08"` read the same.
type Decimal struct {
	decimal.Decimal
}

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (d *Decimal) UnmarshalYAML(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"'`)
	if s == "" || s == "null" {
		d.Decimal = decimal.Decimal{}
		return nil
	}
	parsed, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	d.Decimal = parsed
	return nil
}

// MarshalYAML implements yaml.BytesMarshaler so round-trips keep the
// canonical decimal form.
func (d Decimal) MarshalYAML() ([]byte, error) {
	return []byte(d.String()), nil
}
