package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	invoicepdf "github.com/Israrkhan09/invoice-website"
	"github.com/Israrkhan09/invoice-website/internal/config"
	"github.com/Israrkhan09/invoice-website/internal/dateutil"
	"github.com/Israrkhan09/invoice-website/internal/fileutil"
	"github.com/Israrkhan09/invoice-website/internal/hints"
	"github.com/Israrkhan09/invoice-website/internal/themekit"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrInvalidTaxRate = errors.New("invalid tax rate")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrWritePDF       = errors.New("failed to write PDF file")
)

// exportParams groups state shared across one batch: the exporter built
// from tool config, the theme resolver, and the delivery collaborator.
type exportParams struct {
	cfg       *config.Config
	exporter  *invoicepdf.Exporter
	deliverer invoicepdf.Deliverer
	kits      *themekit.Resolver
	baseTheme *invoicepdf.Theme
	now       func() time.Time

	// baseOpts carries the options every per-document exporter starts
	// from, so overrides inherit the batch logger and clock.
	baseOpts []invoicepdf.Option
}

// runExport orchestrates the export process.
func runExport(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseExportFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	cfg, err := loadToolConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Precedence: CLI flags > env vars > config file > defaults.
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}

	params, err := newExportParams(cfg, flags, env)
	if err != nil {
		return err
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := fileutil.DiscoverInvoices(inputPath, outputDir)
	if err != nil {
		if errors.Is(err, fileutil.ErrInvalidExtension) {
			return fmt.Errorf("%w%s", err, hints.ForInputExtension())
		}
		return fmt.Errorf("discovering invoices: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no invoice documents found in %s", inputPath)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	workers = resolveWorkerCount(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	outcomes := exportBatch(ctx, workers, files, params.exportFile)

	failedCount := printResults(outcomes, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d export(s) failed", failedCount)
	}

	return nil
}

// loadToolConfig loads the tool config named by flag or environment.
// Without either, defaults apply and no file is required.
func loadToolConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searchedConfigPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// searchedConfigPaths reconstructs where a config name was looked for, so
// the not-found hint can suggest creating one.
func searchedConfigPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	paths := []string{name + ".yaml"}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userConfigDir, "invoicepdf", name+".yaml"))
	}
	return paths
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *exportFlags, cfg *config.Config) error {
	if flags.issuer.name != "" {
		cfg.Issuer.Name = flags.issuer.name
	}
	if flags.issuer.company != "" {
		cfg.Issuer.Company = flags.issuer.company
	}
	if flags.issuer.email != "" {
		cfg.Issuer.Email = flags.issuer.email
	}
	if flags.issuer.phone != "" {
		cfg.Issuer.Phone = flags.issuer.phone
	}
	if flags.issuer.address != "" {
		cfg.Issuer.Address = flags.issuer.address
	}

	if flags.tax.rate != "" {
		rate, err := decimal.NewFromString(flags.tax.rate)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTaxRate, flags.tax.rate)
		}
		if rate.Sign() < 0 {
			return fmt.Errorf("%w: %s", config.ErrNegativeTaxRate, rate)
		}
		cfg.Tax.Rate = config.Decimal{Decimal: rate}
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	if flags.theme.name != "" {
		cfg.Theme.Preset = flags.theme.name
	}
	if flags.theme.dir != "" {
		cfg.Theme.Dir = flags.theme.dir
	}

	return nil
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// newExportParams builds the batch-wide exporter and theme resolver from
// merged configuration.
func newExportParams(cfg *config.Config, flags *exportFlags, env *Environment) (*exportParams, error) {
	logger := buildLogger(flags.common.verbose, flags.common.quiet, env.Stderr)

	kits, err := themekit.NewResolver(cfg.Theme.Dir)
	if err != nil {
		return nil, err
	}

	baseTheme, err := themeFromConfig(cfg.Theme, kits)
	if err != nil {
		return nil, err
	}

	baseOpts := []invoicepdf.Option{
		invoicepdf.WithLogger(logger),
		invoicepdf.WithClock(env.Now),
	}

	opts := append([]invoicepdf.Option{}, baseOpts...)
	if !cfg.Tax.Rate.IsZero() {
		opts = append(opts, invoicepdf.WithTaxRate(cfg.Tax.Rate.Decimal))
	}
	if page := pageFromConfig(cfg.Page); page != nil {
		opts = append(opts, invoicepdf.WithPageSettings(page))
	}

	exporter, err := invoicepdf.NewExporter(opts...)
	if err != nil {
		return nil, err
	}

	return &exportParams{
		cfg:       cfg,
		exporter:  exporter,
		deliverer: invoicepdf.NewStandardDeliverer(nil),
		kits:      kits,
		baseTheme: baseTheme,
		now:       env.Now,
		baseOpts:  baseOpts,
	}, nil
}

// buildLogger returns a console logger for the chosen verbosity: debug when
// verbose, errors only when quiet, warnings otherwise.
func buildLogger(verbose, quiet bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	switch {
	case quiet:
		level = zapcore.ErrorLevel
	case verbose:
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// themeFromConfig resolves the tool-level theme: the named kit, if any,
// with explicit colors and fonts layered over it. Returns nil when the
// config carries no theme at all.
func themeFromConfig(tc config.ThemeConfig, kits *themekit.Resolver) (*invoicepdf.Theme, error) {
	var base invoicepdf.Theme
	hasTheme := false

	if tc.Preset != "" {
		kit, err := loadKit(kits, tc.Preset)
		if err != nil {
			return nil, err
		}
		base = kit
		hasTheme = true
	}

	base, overlaid := overlayTheme(base, tc)
	if !hasTheme && !overlaid {
		return nil, nil
	}
	return &base, nil
}

// overlayTheme lays explicit colors and fonts over base, field by field.
// Reports whether any field was set.
func overlayTheme(base invoicepdf.Theme, tc config.ThemeConfig) (invoicepdf.Theme, bool) {
	changed := false
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
			changed = true
		}
	}
	set(&base.Colors.Primary, tc.Colors.Primary)
	set(&base.Colors.Secondary, tc.Colors.Secondary)
	set(&base.Colors.Accent, tc.Colors.Accent)
	set(&base.Fonts.Heading, tc.Fonts.Heading)
	set(&base.Fonts.Body, tc.Fonts.Body)
	return base, changed
}

// loadKit loads a named kit, decorating not-found errors with the
// available names.
func loadKit(kits *themekit.Resolver, name string) (invoicepdf.Theme, error) {
	kit, err := kits.Load(name)
	if err != nil {
		if errors.Is(err, themekit.ErrKitNotFound) {
			return invoicepdf.Theme{}, fmt.Errorf("%w%s", err, hints.ForThemeNotFound(kits.Names()))
		}
		return invoicepdf.Theme{}, err
	}
	return kit, nil
}

// pageFromConfig converts page config to library settings. Returns nil
// when nothing is set, leaving the library defaults in effect.
func pageFromConfig(pc config.PageConfig) *invoicepdf.PageSettings {
	if pc.Size == "" && pc.Orientation == "" && pc.Margin == 0 {
		return nil
	}
	return &invoicepdf.PageSettings{
		Size:        pc.Size,
		Orientation: pc.Orientation,
		Margin:      pc.Margin,
	}
}

// exportFile loads, renders, and delivers a single invoice document.
func (p *exportParams) exportFile(ctx context.Context, f fileutil.InvoiceFile) ExportOutcome {
	start := time.Now()
	out := ExportOutcome{InputPath: f.InputPath}

	fail := func(err error) ExportOutcome {
		out.Err = err
		out.Duration = time.Since(start)
		return out
	}

	doc, err := config.LoadInvoice(f.InputPath)
	if err != nil {
		if errors.Is(err, config.ErrDocumentParse) {
			err = fmt.Errorf("%w%s", err, hints.ForInvoiceParse())
		}
		return fail(err)
	}

	inv, err := p.buildInvoice(doc)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", f.InputPath, err))
	}

	exporter, err := p.exporterFor(doc)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", f.InputPath, err))
	}

	res, err := exporter.Export(ctx, inv)
	if err != nil {
		return fail(err)
	}

	// The output name follows the input file, not the invoice number, so
	// batch runs never collide on duplicate numbers.
	if err := p.deliverer.Deliver(ctx, res.PDF, filepath.Base(f.OutputPath), invoicepdf.SaveTarget{Dir: filepath.Dir(f.OutputPath)}); err != nil {
		return fail(fmt.Errorf("%w: %v%s", ErrWritePDF, err, hints.ForOutputDirectory()))
	}

	out.OutputPath = f.OutputPath
	out.Pages = res.Pages
	out.Total = res.Totals.Total
	out.Warnings = res.Warnings
	out.Duration = time.Since(start)
	return out
}

// buildInvoice converts a document to the library invoice: dates resolved,
// issuer gaps filled from tool config, and the document theme layered over
// the batch theme.
func (p *exportParams) buildInvoice(doc *config.InvoiceDoc) (*invoicepdf.Invoice, error) {
	date := doc.Invoice.Date
	if date == "" {
		date = "auto" // undated invoices carry the export date
	}
	resolvedDate, err := dateutil.ResolveDate(date, p.now())
	if err != nil {
		return nil, fmt.Errorf("invoice.date: %w", err)
	}
	resolvedDue, err := dateutil.ResolveDate(doc.Invoice.DueDate, p.now())
	if err != nil {
		return nil, fmt.Errorf("invoice.dueDate: %w", err)
	}

	items := make([]invoicepdf.LineItem, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = invoicepdf.LineItem{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity.Decimal,
			Rate:        item.Rate.Decimal,
		}
	}

	theme, err := p.themeFor(doc)
	if err != nil {
		return nil, err
	}

	return &invoicepdf.Invoice{
		Number:  doc.Invoice.Number,
		Date:    resolvedDate,
		DueDate: resolvedDue,
		Issuer:  mergeParty(doc.Issuer, p.cfg.Issuer),
		BillTo:  toParty(doc.BillTo),
		Items:   items,
		Notes:   doc.Notes,
		Theme:   theme,
	}, nil
}

// themeFor resolves one document's theme: its own section layered over its
// preset, falling back to the batch theme when the document has none.
func (p *exportParams) themeFor(doc *config.InvoiceDoc) (*invoicepdf.Theme, error) {
	if doc.Theme == nil {
		return p.baseTheme, nil
	}

	kits := p.kits
	if doc.Theme.Dir != "" {
		perDoc, err := themekit.NewResolver(doc.Theme.Dir)
		if err != nil {
			return nil, err
		}
		kits = perDoc
	}

	var base invoicepdf.Theme
	if p.baseTheme != nil {
		base = *p.baseTheme
	}
	if doc.Theme.Preset != "" {
		kit, err := loadKit(kits, doc.Theme.Preset)
		if err != nil {
			return nil, err
		}
		base = kit
	}

	merged, _ := overlayTheme(base, *doc.Theme)
	return &merged, nil
}

// exporterFor returns the batch exporter, or a one-off when the document
// overrides exporter-level settings (tax rate, page).
func (p *exportParams) exporterFor(doc *config.InvoiceDoc) (*invoicepdf.Exporter, error) {
	if doc.Tax == nil && doc.Page == nil {
		return p.exporter, nil
	}

	opts := append([]invoicepdf.Option{}, p.baseOpts...)

	switch {
	case doc.Tax != nil:
		opts = append(opts, invoicepdf.WithTaxRate(doc.Tax.Rate.Decimal))
	case !p.cfg.Tax.Rate.IsZero():
		opts = append(opts, invoicepdf.WithTaxRate(p.cfg.Tax.Rate.Decimal))
	}

	pageCfg := p.cfg.Page
	if doc.Page != nil {
		if doc.Page.Size != "" {
			pageCfg.Size = doc.Page.Size
		}
		if doc.Page.Orientation != "" {
			pageCfg.Orientation = doc.Page.Orientation
		}
		if doc.Page.Margin > 0 {
			pageCfg.Margin = doc.Page.Margin
		}
	}
	if page := pageFromConfig(pageCfg); page != nil {
		opts = append(opts, invoicepdf.WithPageSettings(page))
	}

	return invoicepdf.NewExporter(opts...)
}

// toParty converts party config to the library type.
func toParty(pc config.PartyConfig) invoicepdf.Party {
	return invoicepdf.Party{
		Name:    pc.Name,
		Company: pc.Company,
		Email:   pc.Email,
		Phone:   pc.Phone,
		Address: pc.Address,
	}
}

// mergeParty fills document issuer gaps from the tool-level default issuer.
func mergeParty(doc, def config.PartyConfig) invoicepdf.Party {
	pick := func(docVal, defVal string) string {
		if docVal != "" {
			return docVal
		}
		return defVal
	}
	return invoicepdf.Party{
		Name:    pick(doc.Name, def.Name),
		Company: pick(doc.Company, def.Company),
		Email:   pick(doc.Email, def.Email),
		Phone:   pick(doc.Phone, def.Phone),
		Address: pick(doc.Address, def.Address),
	}
}
