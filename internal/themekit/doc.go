// Package themekit loads named theme kits: the colors and fonts an invoice
// is rendered with.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── BuiltinLoader - built-in presets compiled into the library
//	    ├── DirLoader     - custom kits from a directory on disk
//	    └── Resolver      - combines both with custom-first fallback
//
// BuiltinLoader exposes the library presets (classic, forest, crimson,
// slate). DirLoader reads user-defined kits from YAML files, with path
// traversal protection and symlink resolution. Resolver is the loader the
// CLI uses: it tries the custom directory first and falls back to the
// built-ins when a kit is not found there, so users can override individual
// kits while keeping the rest.
//
// # Kit Files
//
// A kit is a single YAML file named after the kit:
//
//	{dir}/
//	├── acme.yaml
//	└── retro.yml
//
// with optional colors and fonts sections:
//
//	colors:
//	  primary: "#15803d"
//	  secondary: "#1c1917"
//	  accent: "#ca8a04"
//	fonts:
//	  heading: "Georgia, serif"
//	  body: "Helvetica"
//
// Omitted fields fall back to the library defaults at render time.
//
// # Security
//
// Kit names are validated to prevent path traversal attacks. DirLoader
// resolves symlinks and verifies paths stay within the kit directory.
package themekit
