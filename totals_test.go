package invoicepdf

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	type item struct {
		qty  string
		rate string
	}

	tests := []struct {
		name         string
		items        []item
		taxRate      string
		wantSubtotal string
		wantTax      string
		wantTotal    string
	}{
		{
			name:         "two units at fifty dollars",
			items:        []item{{qty: "2", rate: "50.00"}},
			taxRate:      "0.08",
			wantSubtotal: "100.00",
			wantTax:      "8.00",
			wantTotal:    "108.00",
		},
		{
			name:         "subtotal of 250 at the default rate",
			items:        []item{{qty: "1", rate: "100.00"}, {qty: "3", rate: "50.00"}},
			taxRate:      "0.08",
			wantSubtotal: "250.00",
			wantTax:      "20.00",
			wantTotal:    "270.00",
		},
		{
			name:         "empty item list",
			items:        nil,
			taxRate:      "0.08",
			wantSubtotal: "0",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name:         "zero tax rate",
			items:        []item{{qty: "2", rate: "19.99"}},
			taxRate:      "0",
			wantSubtotal: "39.98",
			wantTax:      "0",
			wantTotal:    "39.98",
		},
		{
			name:         "fractional quantity",
			items:        []item{{qty: "1.5", rate: "80.00"}},
			taxRate:      "0.08",
			wantSubtotal: "120.00",
			wantTax:      "9.60",
			wantTotal:    "129.60",
		},
		{
			name:         "subtotal stays exact and unrounded",
			items:        []item{{qty: "0.5", rate: "99.99"}},
			taxRate:      "0.08",
			wantSubtotal: "49.995",
			wantTax:      "4.00",
			wantTotal:    "53.995",
		},
		{
			name:         "tax rounds half away from zero",
			items:        []item{{qty: "1", rate: "10.10"}},
			taxRate:      "0.05",
			wantSubtotal: "10.10",
			wantTax:      "0.51",
			wantTotal:    "10.61",
		},
		{
			name:         "negative amounts flow through arithmetically",
			items:        []item{{qty: "2", rate: "50.00"}, {qty: "-1", rate: "25.00"}},
			taxRate:      "0.08",
			wantSubtotal: "75.00",
			wantTax:      "6.00",
			wantTotal:    "81.00",
		},
		{
			name:         "custom tax rate",
			items:        []item{{qty: "1", rate: "200.00"}},
			taxRate:      "0.0825",
			wantSubtotal: "200.00",
			wantTax:      "16.50",
			wantTotal:    "216.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := make([]LineItem, len(tt.items))
			for i, it := range tt.items {
				items[i] = LineItem{
					Description: "work",
					Quantity:    dec(it.qty),
					Rate:        dec(it.rate),
				}
			}

			got := ComputeTotals(items, dec(tt.taxRate))

			if !got.Subtotal.Equal(dec(tt.wantSubtotal)) {
				t.Errorf("Subtotal = %s, want %s", got.Subtotal, tt.wantSubtotal)
			}
			if !got.Tax.Equal(dec(tt.wantTax)) {
				t.Errorf("Tax = %s, want %s", got.Tax, tt.wantTax)
			}
			if !got.Total.Equal(dec(tt.wantTotal)) {
				t.Errorf("Total = %s, want %s", got.Total, tt.wantTotal)
			}
			if !got.TaxRate.Equal(dec(tt.taxRate)) {
				t.Errorf("TaxRate = %s, want %s", got.TaxRate, tt.taxRate)
			}
		})
	}
}

// Line amounts use exact decimal arithmetic, not floats: 0.1 * 0.2 is
// exactly 0.02.
func TestLineItemAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		qty  string
		rate string
		want string
	}{
		{name: "integer quantities", qty: "2", rate: "50.00", want: "100.00"},
		{name: "fractions multiply exactly", qty: "0.1", rate: "0.2", want: "0.02"},
		{name: "many decimal places preserved", qty: "3.333", rate: "29.99", want: "99.95667"},
		{name: "zero rate", qty: "4", rate: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			li := LineItem{Quantity: dec(tt.qty), Rate: dec(tt.rate)}
			if got := li.Amount(); !got.Equal(dec(tt.want)) {
				t.Errorf("Amount() = %s, want %s", got, tt.want)
			}
		})
	}
}

// Recomputing totals after an item edit reflects the new list with no
// stale state: the calculator has no memory between calls.
func TestComputeTotalsRecomputesFromScratch(t *testing.T) {
	t.Parallel()

	rate := dec("0.08")
	items := []LineItem{{Description: "design", Quantity: dec("2"), Rate: dec("50")}}

	before := ComputeTotals(items, rate)
	if !before.Total.Equal(dec("108")) {
		t.Fatalf("Total = %s, want 108", before.Total)
	}

	edited := append([]LineItem(nil), items...)
	edited[0].Quantity = dec("3")

	after := ComputeTotals(edited, rate)
	if !after.Subtotal.Equal(dec("150")) {
		t.Errorf("Subtotal after edit = %s, want 150", after.Subtotal)
	}

	again := ComputeTotals(items, rate)
	if !again.Total.Equal(before.Total) {
		t.Errorf("original items recompute to %s, want %s", again.Total, before.Total)
	}
}
