package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// issuerFlags holds issuer identity flags. These fill document gaps, so a
// freelancer can keep identity out of every invoice file.
type issuerFlags struct {
	name    string
	company string
	email   string
	phone   string
	address string
}

// taxFlags holds tax flags. The rate stays a string until merge so unset
// and zero are distinguishable.
type taxFlags struct {
	rate string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// themeFlags holds theme selection flags.
type themeFlags struct {
	name string
	dir  string
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common  commonFlags
	output  string
	workers int
	issuer  issuerFlags
	tax     taxFlags
	page    pageFlags
	theme   themeFlags
}

// sampleFlags holds all flags for the sample command.
type sampleFlags struct {
	common commonFlags
	output string
	client string
	note   string
	theme  string
}

// themesFlags holds all flags for the themes command.
type themesFlags struct {
	dir string
}

// remindFlags holds all flags for the remind command.
type remindFlags struct {
	number string
	client string
	amount string
	days   int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and log output")
}

// addIssuerFlags adds issuer identity flags to a FlagSet.
func addIssuerFlags(fs *flag.FlagSet, f *issuerFlags) {
	fs.StringVar(&f.name, "issuer-name", "", "issuer name")
	fs.StringVar(&f.company, "issuer-company", "", "issuer company name")
	fs.StringVar(&f.email, "issuer-email", "", "issuer email")
	fs.StringVar(&f.phone, "issuer-phone", "", "issuer phone number")
	fs.StringVar(&f.address, "issuer-address", "", "issuer postal address")
}

// addTaxFlags adds tax flags to a FlagSet.
func addTaxFlags(fs *flag.FlagSet, f *taxFlags) {
	fs.StringVar(&f.rate, "tax-rate", "", "tax rate as a decimal, e.g. 0.08 for 8%")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addThemeFlags adds theme selection flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVar(&f.name, "theme", "", "theme kit name (built-in preset or custom kit)")
	fs.StringVar(&f.dir, "theme-dir", "", "directory of custom theme kits")
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string, env *Environment) (*exportFlags, []string, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addIssuerFlags(fs, &f.issuer)
	addTaxFlags(fs, &f.tax)
	addPageFlags(fs, &f.page)
	addThemeFlags(fs, &f.theme)

	fs.Usage = func() { printExportUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseSampleFlags parses sample command flags.
func parseSampleFlags(args []string, env *Environment) (*sampleFlags, error) {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &sampleFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.client, "client", "ap@globex.test", "billing contact email to enrich")
	fs.StringVar(&f.note, "note", "logo design and website hosting", "work note to match expenses against")
	fs.StringVar(&f.theme, "theme", "classic", "brand kit to render with")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printSampleUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// parseThemesFlags parses themes command flags.
func parseThemesFlags(args []string, env *Environment) (*themesFlags, error) {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &themesFlags{}

	fs.StringVar(&f.dir, "theme-dir", "", "directory of custom theme kits")

	fs.Usage = func() { printThemesUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// parseRemindFlags parses remind command flags.
func parseRemindFlags(args []string, env *Environment) (*remindFlags, error) {
	fs := flag.NewFlagSet("remind", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &remindFlags{}

	fs.StringVarP(&f.number, "number", "n", "", "invoice number the reminder references")
	fs.StringVar(&f.client, "client", "", "client name for the greeting")
	fs.StringVar(&f.amount, "amount", "0", "amount due, e.g. 1250.00")
	fs.IntVar(&f.days, "days", 0, "days overdue (negative or 0 = not yet due)")

	fs.Usage = func() { printRemindUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
