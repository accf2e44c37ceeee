// Package invoicepdf renders structured invoices into paginated PDF
// documents with a fixed layout.
//
// # Quick Start
//
// Create an exporter, export an invoice, and save the artifact:
//
//	exp, err := invoicepdf.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := exp.Export(ctx, &invoicepdf.Invoice{
//	    Number: "INV-001",
//	    Issuer: invoicepdf.Party{Name: "Acme Studio"},
//	    BillTo: invoicepdf.Party{Name: "Globex LLC"},
//	    Items: []invoicepdf.LineItem{
//	        {Description: "Design work", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(50)},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.FileName, result.PDF, 0644)
//
// The result carries the PDF bytes, a filesystem-safe file name derived
// from the invoice number, the page count, and the computed totals.
//
// # Rendering Pipeline
//
// Each export runs these stages:
//
//  1. Totals computation (exact decimal arithmetic, tax rounded to cents)
//  2. Theme resolution (field-wise fallback to the default palette)
//  3. Page layout (word wrapping, fixed region order, pagination with
//     repeated table headers)
//  4. PDF emission via gofpdf
//
// Layout is deterministic: identical invoices produce identical documents,
// and byte-identical artifacts when the exporter uses a fixed clock
// (WithClock).
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp, err := invoicepdf.NewExporter(
//	    invoicepdf.WithTaxRate(decimal.NewFromFloat(0.0825)),
//	    invoicepdf.WithPageSettings(&invoicepdf.PageSettings{Size: "letter", Orientation: "portrait", Margin: 0.75}),
//	    invoicepdf.WithLogger(logger),
//	)
//
// # Delivery
//
// ExportTo hands the artifact to a destination after rendering:
//
//	result, err := exp.ExportTo(ctx, inv, invoicepdf.SaveTarget{Dir: "out"})
//
// Email destinations need an outbound sender:
//
//	exp, err := invoicepdf.NewExporter(invoicepdf.WithMailSender(smtpSender))
//	result, err = exp.ExportTo(ctx, inv, invoicepdf.EmailTarget{Recipient: "ap@globex.test"})
//
// When delivery fails the result is still returned alongside an error
// matching ErrDelivery, so callers can retry delivery without paying for a
// re-render.
//
// # Overflow Handling
//
// Content that cannot fit even a fresh page (a single item description
// hundreds of lines long, say) is clipped with a visible marker instead of
// failing the export. Clips are reported in ExportResult.Warnings and
// logged at warn level.
package invoicepdf
