package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: invoicepdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export      Render invoice documents to PDF")
	fmt.Fprintln(w, "  sample      Generate a draft invoice from a client email and work note")
	fmt.Fprintln(w, "  themes      List available theme kits")
	fmt.Fprintln(w, "  remind      Draft a payment reminder message")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'invoicepdf help <command>' for details on a specific command.")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: invoicepdf export <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render invoice documents to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Invoice YAML file or directory of invoices")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output directory")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Issuer:")
	fmt.Fprintln(w, "      --issuer-name <s>      Issuer name")
	fmt.Fprintln(w, "      --issuer-company <s>   Issuer company name")
	fmt.Fprintln(w, "      --issuer-email <s>     Issuer email")
	fmt.Fprintln(w, "      --issuer-phone <s>     Issuer phone number")
	fmt.Fprintln(w, "      --issuer-address <s>   Issuer postal address")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tax:")
	fmt.Fprintln(w, "      --tax-rate <d>         Tax rate as a decimal, e.g. 0.08 for 8%")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>        Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>      Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>           Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "      --theme <name>         Theme kit: built-in preset or custom kit")
	fmt.Fprintln(w, "      --theme-dir <path>     Directory of custom theme kits")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show pages, totals, and timing per file")
}

// printSampleUsage prints usage for the sample command.
func printSampleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: invoicepdf sample [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a draft invoice PDF from a client email and a work note.")
	fmt.Fprintln(w, "The client address book and expense catalog are built in.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output directory")
	fmt.Fprintln(w, "      --client <email>   Billing contact email to enrich")
	fmt.Fprintln(w, "      --note <s>         Work note to match expenses against")
	fmt.Fprintln(w, "      --theme <name>     Brand kit to render with")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show detailed log output")
}

// printThemesUsage prints usage for the themes command.
func printThemesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: invoicepdf themes [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List available theme kits with their colors and fonts.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --theme-dir <path>   Directory of custom theme kits")
}

// printRemindUsage prints usage for the remind command.
func printRemindUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: invoicepdf remind [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Draft a payment reminder message for an outstanding invoice.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --number <s>     Invoice number the reminder references")
	fmt.Fprintln(w, "      --client <s>     Client name for the greeting")
	fmt.Fprintln(w, "      --amount <d>     Amount due, e.g. 1250.00")
	fmt.Fprintln(w, "      --days <n>       Days overdue (negative or 0 = not yet due)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "export":
		printExportUsage(env.Stdout)
	case "sample":
		printSampleUsage(env.Stdout)
	case "themes":
		printThemesUsage(env.Stdout)
	case "remind":
		printRemindUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: invoicepdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: invoicepdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
