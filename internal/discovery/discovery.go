// Where: internal/discovery/discovery.go
// What: Odoo project and addons directory discovery helpers.
// Why: Centralize manifest lookups for commands and interactive flows.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hoangtrann/otk/internal/meta"
)

const manifestFile = "__manifest__.py"

// FindProjectRoot locates the nearest ancestor directory containing a .git
// directory or an odoo.conf file. Returns false when no root is found.
func FindProjectRoot(start string) (string, bool) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	dir := filepath.Clean(abs)
	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir, true
		}
		if info, err := os.Stat(filepath.Join(dir, "odoo.conf")); err == nil && !info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// FindAddonsPaths walks the project root collecting every directory that
// contains at least one Odoo module (a child directory with __manifest__.py).
func FindAddonsPaths(projectRoot string) []string {
	seen := map[string]bool{}
	var paths []string
	_ = filepath.WalkDir(projectRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), ".") && path != projectRoot {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == manifestFile {
			addons := filepath.Dir(filepath.Dir(path))
			if !seen[addons] {
				seen[addons] = true
				paths = append(paths, addons)
			}
		}
		return nil
	})
	sort.Strings(paths)
	return paths
}

// ListModules returns the module names found directly under the given addons
// directories. Hidden directories and the tool's own directory are skipped.
func ListModules(addonsPaths []string) []string {
	seen := map[string]bool{}
	var modules []string
	for _, addons := range addonsPaths {
		entries, err := os.ReadDir(addons)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			if strings.HasPrefix(name, ".") || name == meta.AppName {
				continue
			}
			if !IsModuleDir(filepath.Join(addons, name)) {
				continue
			}
			if !seen[name] {
				seen[name] = true
				modules = append(modules, name)
			}
		}
	}
	sort.Strings(modules)
	return modules
}

// IsModuleDir reports whether dir holds an Odoo module manifest.
func IsModuleDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, manifestFile))
	return err == nil && !info.IsDir()
}

// FindModuleDir locates a module directory by name across addons paths.
func FindModuleDir(addonsPaths []string, module string) (string, bool) {
	for _, addons := range addonsPaths {
		candidate := filepath.Join(addons, module)
		if IsModuleDir(candidate) {
			return candidate, true
		}
	}
	return "", false
}
