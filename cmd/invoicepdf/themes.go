package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	invoicepdf "github.com/Israrkhan09/invoice-website"
	"github.com/Israrkhan09/invoice-website/internal/themekit"
)

// runThemes lists every available theme kit with its resolved palette, one
// line per kit so the output stays grep-friendly.
func runThemes(args []string, env *Environment) error {
	flags, err := parseThemesFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	dir := flags.dir
	if dir == "" {
		dir = loadEnvConfig().ThemeDir
	}

	kits, err := themekit.NewResolver(dir)
	if err != nil {
		return err
	}

	for _, name := range kits.Names() {
		theme, err := kits.Load(name)
		if err != nil {
			// A broken custom kit should not hide the rest.
			fmt.Fprintf(env.Stderr, "WARNING %s: %v\n", name, err)
			continue
		}
		resolved := invoicepdf.ResolveTheme(&theme)
		fmt.Fprintf(env.Stdout, "%-12s %s %s %s  %s / %s\n",
			name,
			hexRGB(resolved.Primary), hexRGB(resolved.Secondary), hexRGB(resolved.Accent),
			resolved.HeadingFont, resolved.BodyFont)
	}
	return nil
}

func hexRGB(c invoicepdf.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
