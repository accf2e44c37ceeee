package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"

	invoicepdf "github.com/Israrkhan09/invoice-website"
	"github.com/Israrkhan09/invoice-website/internal/dateutil"
	"github.com/Israrkhan09/invoice-website/internal/hints"
	"github.com/Israrkhan09/invoice-website/internal/suggest"
	"github.com/Israrkhan09/invoice-website/internal/themekit"
)

// sampleIssuer stamps drafts so they are obviously not real invoices.
var sampleIssuer = invoicepdf.Party{
	Name:    "Sample Studio",
	Company: "Sample Studio LLC",
	Email:   "hello@samplestudio.test",
	Address: "1 Demo Way\nTestville, CA 90000",
}

// runSample generates a draft invoice from a client email and a work note,
// then renders it. The enrichment directory and expense catalog are canned,
// so the command works offline and demos the full pipeline.
func runSample(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseSampleFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	client, err := suggest.EnrichClient(ctx, flags.client)
	if err != nil {
		return fmt.Errorf("enriching client: %w", err)
	}

	expenses, err := suggest.MatchExpenses(ctx, flags.note)
	if err != nil {
		return fmt.Errorf("matching expenses: %w", err)
	}
	if len(expenses) == 0 {
		return fmt.Errorf("no expenses matched note %q", flags.note)
	}

	kit, err := pickBrandKit(ctx, flags.theme)
	if err != nil {
		return err
	}

	now := env.Now()
	date, err := dateutil.ResolveDate("auto", now)
	if err != nil {
		return err
	}
	due, err := dateutil.ResolveDate("auto+30d", now)
	if err != nil {
		return err
	}

	items := make([]invoicepdf.LineItem, len(expenses))
	for i, e := range expenses {
		items[i] = invoicepdf.LineItem{
			ID:          e.ID,
			Description: e.Description,
			Quantity:    decimal.NewFromInt(1),
			Rate:        e.Amount,
		}
	}

	inv := &invoicepdf.Invoice{
		Number:  "DRAFT-" + now.Format("20060102"),
		Date:    date,
		DueDate: due,
		Issuer:  sampleIssuer,
		BillTo: invoicepdf.Party{
			Name:    client.Name,
			Company: client.Company,
			Email:   client.Email,
			Phone:   client.Phone,
			Address: client.Address,
		},
		Items: items,
		Notes: "Draft generated from note: " + flags.note,
		Theme: &kit.Theme,
	}

	logger := buildLogger(flags.common.verbose, flags.common.quiet, env.Stderr)
	exporter, err := invoicepdf.NewExporter(
		invoicepdf.WithLogger(logger),
		invoicepdf.WithClock(env.Now),
	)
	if err != nil {
		return err
	}

	res, err := exporter.ExportTo(ctx, inv, invoicepdf.SaveTarget{Dir: flags.output})
	if err != nil {
		if errors.Is(err, invoicepdf.ErrDelivery) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	if !flags.common.quiet {
		outPath := filepath.Join(flags.output, res.FileName)
		fmt.Fprintf(env.Stdout, "Created %s (%d pages, $%s, theme %s)\n",
			outPath, res.Pages, res.Totals.Total.StringFixed(2), kit.Name)
	}
	return nil
}

// pickBrandKit finds the named brand kit, matching case-insensitively.
func pickBrandKit(ctx context.Context, name string) (*suggest.BrandKit, error) {
	kits, err := suggest.BrandKits(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(kits))
	for i := range kits {
		if strings.EqualFold(kits[i].Name, name) {
			return &kits[i], nil
		}
		names = append(names, kits[i].Name)
	}
	return nil, fmt.Errorf("%w: %q%s", themekit.ErrKitNotFound, name, hints.ForThemeNotFound(names))
}
