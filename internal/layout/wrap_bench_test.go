//go:build bench

package layout

import (
	"strings"
	"testing"
)

// BenchmarkWrap benchmarks greedy wrapping across text shapes.
func BenchmarkWrap(b *testing.B) {
	m := fixedMeasurer{advance: 1}
	font := FontSpec{Family: "Helvetica", Size: 10}

	texts := []struct {
		name string
		text string
	}{
		{"short", "Consulting services"},
		{"long_block", strings.Repeat("abcd ", 100)},
		{"multiline", strings.Repeat("Payment due within 30 days.\n", 20)},
		{"oversized_words", strings.Repeat(strings.Repeat("x", 60)+" ", 10)},
	}

	for _, tt := range texts {
		b.Run(tt.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				lines := Wrap(tt.text, 40, font, m)
				_ = lines
			}
		})
	}
}

// BenchmarkTruncateToWidth benchmarks clipping with the ellipsis marker.
func BenchmarkTruncateToWidth(b *testing.B) {
	m := fixedMeasurer{advance: 1}
	font := FontSpec{Family: "Helvetica", Size: 10}

	inputs := []struct {
		name string
		text string
	}{
		{"fits", "Logo design"},
		{"clipped", strings.Repeat("overflowing description ", 10)},
	}

	for _, tt := range inputs {
		b.Run(tt.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result := TruncateToWidth(tt.text, 40, font, m)
				_ = result
			}
		})
	}
}
