package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.yaml")
	ArgWords    []string // fixed positional argument values (e.g., shells)
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"page-size":   {Values: []string{"a4", "letter", "legal"}},
	"orientation": {Values: []string{"portrait", "landscape"}},
	"theme":       {Values: []string{"classic", "crimson", "forest", "slate"}},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},

	// Directory flags
	"output":    {IsDir: true},
	"theme-dir": {IsDir: true},
}

// buildExportFlagSet creates a FlagSet with all export command flags.
// This reuses the same flag registration as parseExportFlags.
func buildExportFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addIssuerFlags(fs, &f.issuer)
	addTaxFlags(fs, &f.tax)
	addPageFlags(fs, &f.page)
	addThemeFlags(fs, &f.theme)

	return fs
}

// buildSampleFlagSet mirrors parseSampleFlags registration.
func buildSampleFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	f := &sampleFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.client, "client", "ap@globex.test", "billing contact email to enrich")
	fs.StringVar(&f.note, "note", "logo design and website hosting", "work note to match expenses against")
	fs.StringVar(&f.theme, "theme", "classic", "brand kit to render with")
	addCommonFlags(fs, &f.common)

	return fs
}

// buildThemesFlagSet mirrors parseThemesFlags registration.
func buildThemesFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("themes", flag.ContinueOnError)
	f := &themesFlags{}

	fs.StringVar(&f.dir, "theme-dir", "", "directory of custom theme kits")

	return fs
}

// buildRemindFlagSet mirrors parseRemindFlags registration.
func buildRemindFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("remind", flag.ContinueOnError)
	f := &remindFlags{}

	fs.StringVarP(&f.number, "number", "n", "", "invoice number the reminder references")
	fs.StringVar(&f.client, "client", "", "client name for the greeting")
	fs.StringVar(&f.amount, "amount", "0", "amount due, e.g. 1250.00")
	fs.IntVar(&f.days, "days", 0, "days overdue (negative or 0 = not yet due)")

	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		case "float32", "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "export",
			Desc:        "Render invoice documents to PDF",
			Flags:       extractFlagsFromFlagSet(buildExportFlagSet()),
			TakesFiles:  true,
			FilePattern: "*.yaml,*.yml",
		},
		{
			Name:  "sample",
			Desc:  "Generate a draft invoice from a client email and work note",
			Flags: extractFlagsFromFlagSet(buildSampleFlagSet()),
		},
		{
			Name:  "themes",
			Desc:  "List available theme kits",
			Flags: extractFlagsFromFlagSet(buildThemesFlagSet()),
		},
		{
			Name:  "remind",
			Desc:  "Draft a payment reminder message",
			Flags: extractFlagsFromFlagSet(buildRemindFlagSet()),
		},
		{
			Name:     "completion",
			Desc:     "Generate shell completion script",
			ArgWords: []string{"bash", "zsh", "fish"},
		},
		{
			Name:     "version",
			Desc:     "Show version information",
			ArgWords: nil,
		},
		{
			Name:     "help",
			Desc:     "Show help for a command",
			ArgWords: []string{"export", "sample", "themes", "remind", "completion", "version", "help"},
		},
	}
}

// GenerateCompletion writes a shell completion script to w.
// Returns an error if the shell is unsupported or the write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: invoicepdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash   Bash completion script")
	fmt.Fprintln(w, "  zsh    Zsh completion script")
	fmt.Fprintln(w, "  fish   Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(invoicepdf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(invoicepdf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    invoicepdf completion fish > ~/.config/fish/completions/invoicepdf.fish")
}

// extsFromGlob splits "*.yaml,*.yml" into ["yaml", "yml"].
func extsFromGlob(glob string) []string {
	parts := strings.Split(glob, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimPrefix(strings.TrimSpace(p), "*.")
		if p != "" {
			exts = append(exts, p)
		}
	}
	return exts
}

// bashExtPattern converts a comma glob to a bash extglob: "@(yaml|yml)".
func bashExtPattern(glob string) string {
	return "@(" + strings.Join(extsFromGlob(glob), "|") + ")"
}

// zshExtPattern converts a comma glob to a zsh _files glob: "*.(yaml|yml)".
func zshExtPattern(glob string) string {
	return "*.(" + strings.Join(extsFromGlob(glob), "|") + ")"
}

// flagWords lists every completion word for a command's flags.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// flagPattern builds a bash case pattern matching a flag's spellings.
func flagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

// generateBash writes the bash completion script.
func generateBash(w io.Writer) error {
	cmds := getCommands()

	var b strings.Builder
	b.WriteString("# bash completion for invoicepdf\n")
	b.WriteString("_invoicepdf() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	fmt.Fprintf(&b, "    local commands=\"%s\"\n\n", strings.Join(names, " "))

	b.WriteString("    if [ \"$COMP_CWORD\" -eq 1 ]; then\n")
	b.WriteString("        COMPREPLY=($(compgen -W \"$commands\" -- \"$cur\"))\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		writeBashCommand(&b, c)
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _invoicepdf invoicepdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeBashCommand emits the completion body for one command.
func writeBashCommand(b *strings.Builder, c commandDef) {
	// Complete values for the flag in prev. Valueless string flags still
	// get an arm so bash does not offer filenames for, say, --issuer-name.
	var plain []string
	hasValueCases := false
	for _, f := range c.Flags {
		switch f.Type {
		case flagEnum, flagFile, flagDir:
			hasValueCases = true
		case flagBool:
			// no argument
		default:
			plain = append(plain, flagPattern(f))
		}
	}

	if hasValueCases || len(plain) > 0 {
		b.WriteString("        case \"$prev\" in\n")
		for _, f := range c.Flags {
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(b, "        %s)\n", flagPattern(f))
				fmt.Fprintf(b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			case flagFile:
				fmt.Fprintf(b, "        %s)\n", flagPattern(f))
				fmt.Fprintf(b, "            COMPREPLY=($(compgen -f -X '!*.%s' -- \"$cur\") $(compgen -d -- \"$cur\"))\n", bashExtPattern(f.FileGlob))
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			case flagDir:
				fmt.Fprintf(b, "        %s)\n", flagPattern(f))
				b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			}
		}
		if len(plain) > 0 {
			fmt.Fprintf(b, "        %s)\n", strings.Join(plain, "|"))
			b.WriteString("            return\n")
			b.WriteString("            ;;\n")
		}
		b.WriteString("        esac\n")
	}

	if len(c.Flags) > 0 {
		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(flagWords(c.Flags), " "))
		b.WriteString("            return\n")
		b.WriteString("        fi\n")
	}

	switch {
	case c.TakesFiles:
		fmt.Fprintf(b, "        COMPREPLY=($(compgen -f -X '!*.%s' -- \"$cur\") $(compgen -d -- \"$cur\"))\n", bashExtPattern(c.FilePattern))
	case len(c.ArgWords) > 0:
		b.WriteString("        if [ \"$COMP_CWORD\" -eq 2 ]; then\n")
		fmt.Fprintf(b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.ArgWords, " "))
		b.WriteString("        fi\n")
	}
}

// generateZsh writes the zsh completion script.
func generateZsh(w io.Writer) error {
	cmds := getCommands()

	var b strings.Builder
	b.WriteString("#compdef invoicepdf\n")
	b.WriteString("# zsh completion for invoicepdf\n\n")
	b.WriteString("_invoicepdf() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && !c.TakesFiles && len(c.ArgWords) == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.ArgWords) > 0 && len(c.Flags) == 0 {
			fmt.Fprintf(&b, "        (( CURRENT == 3 )) && _values 'argument' %s\n", strings.Join(c.ArgWords, " "))
			b.WriteString("        ;;\n")
			continue
		}
		b.WriteString("        shift words\n")
		b.WriteString("        (( CURRENT-- ))\n")
		b.WriteString("        _arguments \\\n")
		specs := zshSpecs(c)
		for i, spec := range specs {
			sep := " \\"
			if i == len(specs)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "            %s%s\n", spec, sep)
		}
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _invoicepdf invoicepdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshSpecs builds _arguments specs for a command.
func zshSpecs(c commandDef) []string {
	specs := make([]string, 0, len(c.Flags)+1)
	for _, f := range c.Flags {
		var action string
		switch f.Type {
		case flagBool:
			action = "" // no argument
		case flagEnum:
			action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
		case flagFile:
			action = fmt.Sprintf(":file:_files -g \"%s\"", zshExtPattern(f.FileGlob))
		case flagDir:
			action = ":directory:_files -/"
		default:
			action = ":value:"
		}

		var spec string
		if f.Short != "" {
			spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Desc, action)
		} else {
			spec = fmt.Sprintf("'--%s[%s]%s'", f.Long, f.Desc, action)
		}
		specs = append(specs, spec)
	}
	if c.TakesFiles {
		specs = append(specs, fmt.Sprintf("'*:invoice file:_files -g \"%s\"'", zshExtPattern(c.FilePattern)))
	}
	return specs
}

// generateFish writes the fish completion script.
func generateFish(w io.Writer) error {
	cmds := getCommands()

	var b strings.Builder
	b.WriteString("# fish completion for invoicepdf\n")
	b.WriteString("complete -c invoicepdf -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c invoicepdf -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, c.Desc)
	}
	b.WriteString("\n")

	for _, c := range cmds {
		cond := "__fish_seen_subcommand_from " + c.Name
		for _, f := range c.Flags {
			base := fmt.Sprintf("complete -c invoicepdf -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				base += " -s " + f.Short
			}
			switch f.Type {
			case flagBool:
				fmt.Fprintf(&b, "%s -d '%s'\n", base, f.Desc)
			case flagEnum:
				fmt.Fprintf(&b, "%s -xa '%s' -d '%s'\n", base, strings.Join(f.Values, " "), f.Desc)
			case flagFile:
				for _, ext := range extsFromGlob(f.FileGlob) {
					fmt.Fprintf(&b, "%s -xa '(__fish_complete_suffix .%s)' -d '%s'\n", base, ext, f.Desc)
				}
			case flagDir:
				fmt.Fprintf(&b, "%s -xa '(__fish_complete_directories)' -d '%s'\n", base, f.Desc)
			default:
				fmt.Fprintf(&b, "%s -x -d '%s'\n", base, f.Desc)
			}
		}
		if c.TakesFiles {
			for _, ext := range extsFromGlob(c.FilePattern) {
				fmt.Fprintf(&b, "complete -c invoicepdf -n '%s' -a '(__fish_complete_suffix .%s)'\n", cond, ext)
			}
		}
		if len(c.ArgWords) > 0 {
			fmt.Fprintf(&b, "complete -c invoicepdf -n '%s' -xa '%s'\n", cond, strings.Join(c.ArgWords, " "))
		}
		if len(c.Flags) > 0 || c.TakesFiles || len(c.ArgWords) > 0 {
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
