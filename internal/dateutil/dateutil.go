// Package dateutil resolves invoice date expressions. Document dates may be
// literal text or "auto" expressions evaluated against a clock, with an
// optional day offset for due dates and an optional display format.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrInvalidDateOffset indicates an invalid day offset in an auto expression.
var ErrInvalidDateOffset = errors.New("invalid date offset")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// MaxDayOffset bounds "auto+Nd" offsets. Ten years covers any sane due date.
const MaxDayOffset = 3650

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Due] preserves "Due" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false

		// Try to match tokens (longest first due to slice order)
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Preserve literal character
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveDate evaluates "auto" expressions for invoice date fields.
//   - "auto"              current date in YYYY-MM-DD
//   - "auto+30d"          current date plus 30 days (due dates)
//   - "auto:FORMAT"       current date in a custom format, e.g. "auto:DD/MM/YYYY"
//   - "auto:preset"       current date using a named preset (iso, european, us, long)
//   - "auto+30d:long"     offset and format combined
//   - any other value     returned unchanged (passthrough)
//
// The time parameter allows injecting a fixed clock for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	if !strings.HasPrefix(strings.ToLower(value), "auto") {
		return value, nil
	}

	rest := value[len("auto"):]

	formatPart := DefaultDateFormat
	if idx := strings.Index(rest, ":"); idx != -1 {
		formatPart = rest[idx+1:]
		rest = rest[:idx]
		if formatPart == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \":\"", ErrInvalidDateFormat)
		}
	}

	if rest != "" {
		days, err := parseDayOffset(rest)
		if err != nil {
			return "", err
		}
		t = t.AddDate(0, 0, days)
	}

	// Check for preset (case-insensitive)
	if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
		formatPart = preset
	}

	goFmt, err := ParseDateFormat(formatPart)
	if err != nil {
		return "", err
	}

	return t.Format(goFmt), nil
}

// parseDayOffset parses the "+Nd" part of an auto expression. A leading "-"
// backdates, which is occasionally useful for reissued invoices.
func parseDayOffset(s string) (int, error) {
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') || !strings.EqualFold(s[len(s)-1:], "d") {
		return 0, fmt.Errorf("%w: %q, use \"auto\", \"auto+Nd\", or \"auto:FORMAT\"", ErrInvalidDateOffset, "auto"+s)
	}

	days, err := strconv.Atoi(s[1 : len(s)-1])
	if err != nil || days < 0 {
		return 0, fmt.Errorf("%w: %q is not a whole number of days", ErrInvalidDateOffset, s)
	}
	if days > MaxDayOffset {
		return 0, fmt.Errorf("%w: %d days exceeds maximum of %d", ErrInvalidDateOffset, days, MaxDayOffset)
	}
	if s[0] == '-' {
		days = -days
	}
	return days, nil
}
