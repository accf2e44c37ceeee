package themekit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	invoicepdf "github.com/Israrkhan09/invoice-website"
)

// kitExtensions are the file extensions a kit may use, in lookup order.
var kitExtensions = []string{".yaml", ".yml"}

// DirLoader loads theme kits from a directory on the filesystem.
// Implements Loader.
type DirLoader struct {
	dir string
}

// NewDirLoader creates a DirLoader for the given directory.
// Returns ErrInvalidKitDir if the path is not a valid, readable directory.
func NewDirLoader(dir string) (*DirLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidKitDir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKitDir, err)
	}

	// Resolve symlinks in the base directory so containment checks compare
	// real paths when the directory itself is a symlink.
	realDir, err := filepath.EvalSymlinks(absDir)
	if err == nil {
		absDir = realDir
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidKitDir, absDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidKitDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidKitDir, absDir)
	}

	if _, err := os.ReadDir(absDir); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidKitDir, err)
	}

	return &DirLoader{dir: absDir}, nil
}

// Load reads and parses {dir}/{name}.yaml, trying .yml when the .yaml file
// does not exist.
func (d *DirLoader) Load(name string) (invoicepdf.Theme, error) {
	if err := ValidateKitName(name); err != nil {
		return invoicepdf.Theme{}, err
	}

	for i, ext := range kitExtensions {
		kitPath := filepath.Join(d.dir, name+ext)

		if err := d.verifyPathContainment(kitPath); err != nil {
			return invoicepdf.Theme{}, err
		}

		data, err := os.ReadFile(kitPath) // #nosec G304 -- path validated above
		if err != nil {
			if os.IsNotExist(err) {
				if i == len(kitExtensions)-1 {
					return invoicepdf.Theme{}, fmt.Errorf("%w: %q", ErrKitNotFound, name)
				}
				continue
			}
			return invoicepdf.Theme{}, fmt.Errorf("%w: %v", ErrKitRead, err)
		}

		return decodeKit(name, data)
	}

	return invoicepdf.Theme{}, fmt.Errorf("%w: %q", ErrKitNotFound, name)
}

// Names lists the kits present in the directory, sorted and deduplicated
// across extensions. Files whose base name would fail validation are
// skipped rather than reported.
func (d *DirLoader) Names() []string {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if ValidateKitName(name) != nil {
			continue
		}
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// verifyPathContainment ensures the resolved kit path is within the kit
// directory. Prevents path traversal even if name validation is bypassed,
// and resolves symlinks so a link pointing outside the directory cannot
// escape it.
func (d *DirLoader) verifyPathContainment(kitPath string) error {
	absPath, err := filepath.Abs(kitPath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// EvalSymlinks fails for files that don't exist; keep the lexical path
	// then, the read will fail and the prefix check still runs.
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	// Separator suffix blocks sibling-prefix escapes (/kits vs /kits-evil).
	if !strings.HasPrefix(absPath, d.dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes kit directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ Loader = (*DirLoader)(nil)
