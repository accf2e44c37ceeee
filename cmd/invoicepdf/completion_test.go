package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands/extractFlagsFromFlagSet: we test the completion registry is
//   complete and typed correctly.
// These are acceptable gaps: we test observable behavior, not runtime shell behavior.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash generates valid script",
			shell: ShellBash,
			wantContains: []string{
				"_invoicepdf",
				"complete -F _invoicepdf invoicepdf",
				"compgen",
				"export",
				"--output",
				"--page-size",
				"a4 letter legal",
				"@(yaml|yml)",
			},
		},
		{
			name:  "zsh generates valid script",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef invoicepdf",
				"_invoicepdf",
				"_arguments",
				"_describe",
				"export",
				"--output",
				"(classic crimson forest slate)",
				"_files -/",
			},
		},
		{
			name:  "fish generates valid script",
			shell: ShellFish,
			wantContains: []string{
				"complete -c invoicepdf",
				"__fish_use_subcommand",
				"__fish_seen_subcommand_from export",
				"-l output",
				"-l page-size",
				"portrait landscape",
				"__fish_complete_directories",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s): %v", tt.shell, err)
			}

			output := buf.String()
			if output == "" {
				t.Fatal("generated script is empty")
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_Unsupported - Unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"powershell", "tcsh", ""} {
		var buf bytes.Buffer
		err := GenerateCompletion(&buf, shell)
		if !errors.Is(err, ErrUnsupportedShell) {
			t.Errorf("GenerateCompletion(%q) = %v, want ErrUnsupportedShell", shell, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - Command wiring
// ---------------------------------------------------------------------------

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()

		if err := runCompletion(nil, env); err != nil {
			t.Fatalf("runCompletion: %v", err)
		}
		if !strings.Contains(stdout.String(), "Usage: invoicepdf completion") {
			t.Errorf("stdout = %q, want completion usage", stdout.String())
		}
	})

	t.Run("writes script to stdout", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()

		if err := runCompletion([]string{"fish"}, env); err != nil {
			t.Fatalf("runCompletion: %v", err)
		}
		if !strings.Contains(stdout.String(), "complete -c invoicepdf") {
			t.Errorf("stdout = %q, want fish script", stdout.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestGetCommands - Completion registry
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()

	byName := make(map[string]commandDef, len(cmds))
	for _, c := range cmds {
		byName[c.Name] = c
	}

	for _, name := range []string{"export", "sample", "themes", "remind", "completion", "version", "help"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("getCommands missing %q", name)
		}
	}

	export, ok := byName["export"]
	if !ok {
		t.Fatal("export command missing")
	}
	if !export.TakesFiles {
		t.Error("export should take file arguments")
	}
	if export.FilePattern != "*.yaml,*.yml" {
		t.Errorf("export FilePattern = %q, want *.yaml,*.yml", export.FilePattern)
	}

	completion := byName["completion"]
	if len(completion.ArgWords) != 3 {
		t.Errorf("completion ArgWords = %v, want three shells", completion.ArgWords)
	}
}

// ---------------------------------------------------------------------------
// TestExtractFlagsFromFlagSet - Flag typing and metadata
// ---------------------------------------------------------------------------

func TestExtractFlagsFromFlagSet(t *testing.T) {
	t.Parallel()

	flags := extractFlagsFromFlagSet(buildExportFlagSet())

	byLong := make(map[string]flagDef, len(flags))
	for _, f := range flags {
		byLong[f.Long] = f
	}

	tests := []struct {
		long      string
		wantShort string
		wantType  flagType
	}{
		{"output", "o", flagDir},
		{"workers", "w", flagInt},
		{"config", "c", flagFile},
		{"quiet", "q", flagBool},
		{"verbose", "v", flagBool},
		{"page-size", "p", flagEnum},
		{"orientation", "", flagEnum},
		{"margin", "", flagFloat},
		{"theme", "", flagEnum},
		{"theme-dir", "", flagDir},
		{"tax-rate", "", flagString},
		{"issuer-name", "", flagString},
	}

	for _, tt := range tests {
		f, ok := byLong[tt.long]
		if !ok {
			t.Errorf("flag --%s missing from export flag set", tt.long)
			continue
		}
		if f.Short != tt.wantShort {
			t.Errorf("--%s short = %q, want %q", tt.long, f.Short, tt.wantShort)
		}
		if f.Type != tt.wantType {
			t.Errorf("--%s type = %d, want %d", tt.long, f.Type, tt.wantType)
		}
	}

	if got := byLong["page-size"].Values; len(got) != 3 || got[0] != "a4" {
		t.Errorf("page-size values = %v, want [a4 letter legal]", got)
	}
	if got := byLong["config"].FileGlob; got != "*.yaml,*.yml" {
		t.Errorf("config FileGlob = %q, want *.yaml,*.yml", got)
	}
}

// ---------------------------------------------------------------------------
// TestExtPatternHelpers - Glob conversion
// ---------------------------------------------------------------------------

func TestExtPatternHelpers(t *testing.T) {
	t.Parallel()

	if got := bashExtPattern("*.yaml,*.yml"); got != "@(yaml|yml)" {
		t.Errorf("bashExtPattern = %q, want @(yaml|yml)", got)
	}
	if got := zshExtPattern("*.yaml,*.yml"); got != "*.(yaml|yml)" {
		t.Errorf("zshExtPattern = %q, want *.(yaml|yml)", got)
	}
	if got := extsFromGlob("*.yaml, *.yml"); len(got) != 2 || got[0] != "yaml" || got[1] != "yml" {
		t.Errorf("extsFromGlob = %v, want [yaml yml]", got)
	}
}
