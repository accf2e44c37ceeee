// Package fileutil provides path utilities and invoice document discovery.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidExtension indicates an input file that is not a YAML document.
var ErrInvalidExtension = errors.New("file must have .yaml or .yml extension")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "classic" -> false (name)
//   - "./billing.yaml" -> true (relative path)
//   - "/absolute/invoice.yaml" -> true (absolute)
//   - "clients\acme.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsYAMLPath returns true if the path has a YAML extension, case-insensitive.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// InvoiceFile pairs an invoice document with its resolved PDF output path.
type InvoiceFile struct {
	InputPath  string
	OutputPath string
}

// DiscoverInvoices finds all invoice documents to export. A file input yields
// one entry; a directory is walked recursively for YAML files. Output paths
// land in outputDir, or alongside their inputs when outputDir is empty.
// When outputDir itself ends in .pdf it names the exact output file, which
// only makes sense for single-file input.
func DiscoverInvoices(inputPath, outputDir string) ([]InvoiceFile, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !IsYAMLPath(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []InvoiceFile{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []InvoiceFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !IsYAMLPath(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, InvoiceFile{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the PDF output path for an invoice document.
// Directory walks preserve the input's relative structure under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".pdf")
	}

	if strings.HasSuffix(outputDir, ".pdf") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".pdf")
		}
	}

	return filepath.Join(outputDir, base+".pdf")
}
