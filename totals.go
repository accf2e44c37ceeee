package invoicepdf

import "github.com/shopspring/decimal"

// ComputeTotals sums item amounts and applies the tax rate. The subtotal is
// the exact sum of quantity times rate per item; tax is the subtotal times
// the rate, rounded half away from zero to two decimals; the total is their
// sum. Rounding happens only at the tax step, never on item amounts.
//
// Totals are recomputed from scratch on every call: there is no caching to
// invalidate, so an edited item list can never produce stale money fields.
// Negative quantities or rates flow through arithmetically; rejecting them
// is Invoice.Validate's job.
func ComputeTotals(items []LineItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount())
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		TaxRate:  taxRate,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
