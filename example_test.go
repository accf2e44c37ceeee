package invoicepdf_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	invoicepdf "github.com/Israrkhan09/invoice-website"
)

// Example demonstrates rendering a minimal invoice to PDF bytes.
func Example() {
	exp, err := invoicepdf.NewExporter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := exp.Export(context.Background(), &invoicepdf.Invoice{
		Number: "INV-001",
		Date:   "2024-03-15",
		Issuer: invoicepdf.Party{Name: "Acme Studio"},
		BillTo: invoicepdf.Party{Name: "Globex LLC"},
		Items: []invoicepdf.LineItem{
			{Description: "Design work", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(50)},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.FileName)
	fmt.Println("total:", res.Totals.Total.StringFixed(2))
	fmt.Println("pages:", res.Pages)
	// Output:
	// invoice-INV-001.pdf
	// total: 108.00
	// pages: 1
}

// Example_withTaxRate demonstrates configuring a custom tax rate.
func Example_withTaxRate() {
	exp, err := invoicepdf.NewExporter(
		invoicepdf.WithTaxRate(decimal.NewFromFloat(0.2)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := exp.Export(context.Background(), &invoicepdf.Invoice{
		Number: "INV-002",
		Issuer: invoicepdf.Party{Name: "Acme Studio"},
		BillTo: invoicepdf.Party{Name: "Globex LLC"},
		Items: []invoicepdf.LineItem{
			{Description: "Consulting", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(50)},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("subtotal:", res.Totals.Subtotal.StringFixed(2))
	fmt.Println("tax:", res.Totals.Tax.StringFixed(2))
	fmt.Println("total:", res.Totals.Total.StringFixed(2))
	// Output:
	// subtotal: 100.00
	// tax: 20.00
	// total: 120.00
}

// Example_withTheme demonstrates applying a built-in theme preset.
func Example_withTheme() {
	theme, ok := invoicepdf.PresetTheme("forest")
	if !ok {
		fmt.Println("unknown preset")
		return
	}

	exp, err := invoicepdf.NewExporter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := exp.Export(context.Background(), &invoicepdf.Invoice{
		Number: "INV-003",
		Issuer: invoicepdf.Party{Name: "Acme Studio"},
		BillTo: invoicepdf.Party{Name: "Globex LLC"},
		Theme:  &theme,
		Items: []invoicepdf.LineItem{
			{Description: "Branding", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(500)},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if len(res.PDF) > 0 {
		fmt.Println("themed invoice rendered")
	}
	// Output: themed invoice rendered
}

// Example_withPageSettings demonstrates configuring page geometry.
func Example_withPageSettings() {
	exp, err := invoicepdf.NewExporter(
		invoicepdf.WithPageSettings(&invoicepdf.PageSettings{
			Size:        invoicepdf.PageSizeLetter,
			Orientation: invoicepdf.OrientationLandscape,
			Margin:      1.0, // inches
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := exp.Export(context.Background(), &invoicepdf.Invoice{
		Number: "INV-004",
		Issuer: invoicepdf.Party{Name: "Acme Studio"},
		BillTo: invoicepdf.Party{Name: "Globex LLC"},
		Items: []invoicepdf.LineItem{
			{Description: "Wide table work", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(75)},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if len(res.PDF) > 0 {
		fmt.Println("letter landscape rendered")
	}
	// Output: letter landscape rendered
}

// ExampleExporter_ExportTo demonstrates exporting straight to a directory.
func ExampleExporter_ExportTo() {
	dir, err := os.MkdirTemp("", "invoices")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	exp, err := invoicepdf.NewExporter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := exp.ExportTo(context.Background(), &invoicepdf.Invoice{
		Number: "INV-005",
		Issuer: invoicepdf.Party{Name: "Acme Studio"},
		BillTo: invoicepdf.Party{Name: "Globex LLC"},
		Items: []invoicepdf.LineItem{
			{Description: "Delivery test", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(10)},
		},
	}, invoicepdf.SaveTarget{Dir: dir})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := os.Stat(filepath.Join(dir, res.FileName)); err == nil {
		fmt.Println("saved", res.FileName)
	}
	// Output: saved invoice-INV-005.pdf
}
