// Where: internal/app/command_context.go
// What: Shared workspace resolution for command handlers.
// Why: Every component command needs the same addons path, module list, and
//      merged manifest defaults before it can act.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/hoangtrann/otk/internal/config"
	"github.com/hoangtrann/otk/internal/discovery"
	"github.com/hoangtrann/otk/internal/scaffold"
)

// workspace is the resolved project surroundings of one invocation.
type workspace struct {
	// AddonsPath is the absolute directory new modules are created in.
	AddonsPath string
	// AllPaths lists every addons directory reachable from the project root.
	AllPaths []string
	// Modules lists module names across AllPaths.
	Modules []string
	// Project holds the optional otk.yml settings of the addons root.
	Project config.ProjectConfig
}

// resolveWorkspace expands the --addons-path flag into the full workspace.
// A project root (git checkout or odoo.conf) widens the search to every
// addons directory under it; otherwise the flag's directory stands alone.
func resolveWorkspace(cli CLI, deps Dependencies) (workspace, error) {
	base := cli.AddonsPath
	if base == "" {
		base = "."
	}
	if !filepath.IsAbs(base) {
		base = filepath.Join(deps.WorkDir, base)
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return workspace{}, err
	}

	ws := workspace{AddonsPath: abs}

	root, found := discovery.FindProjectRoot(abs)
	if !found || root == abs {
		ws.AllPaths = []string{abs}
	} else {
		ws.AllPaths = discovery.FindAddonsPaths(root)
		if len(ws.AllPaths) == 0 {
			ws.AllPaths = []string{abs}
		}
	}
	ws.Modules = discovery.ListModules(ws.AllPaths)

	project, err := config.LoadProjectConfig(abs)
	if err != nil {
		return workspace{}, err
	}
	ws.Project = project
	if project.AddonsPath != "" {
		override := project.AddonsPath
		if !filepath.IsAbs(override) {
			override = filepath.Join(abs, override)
		}
		ws.AddonsPath = filepath.Clean(override)
	}

	return ws, nil
}

// moduleDir locates a module by name across the workspace addons paths.
func (ws workspace) moduleDir(module string) (string, error) {
	if dir, ok := discovery.FindModuleDir(ws.AllPaths, module); ok {
		return dir, nil
	}
	// The creation target directory may hold modules the walk missed.
	candidate := filepath.Join(ws.AddonsPath, module)
	if discovery.IsModuleDir(candidate) {
		return candidate, nil
	}
	return "", fmt.Errorf("module %q not found in any addons path", module)
}

// manifestDefaults merges global config defaults with project overrides.
func (ws workspace) manifestDefaults() scaffold.ManifestDefaults {
	global := config.LoadGlobalConfigOrDefault().Defaults.WithEnvOverrides()
	merged := scaffold.ManifestDefaults{
		Author:   global.Author,
		Website:  global.Website,
		Category: global.Category,
		License:  global.License,
	}
	project := ws.Project.Defaults
	if project.Author != "" {
		merged.Author = project.Author
	}
	if project.Website != "" {
		merged.Website = project.Website
	}
	if project.Category != "" {
		merged.Category = project.Category
	}
	if project.License != "" {
		merged.License = project.License
	}
	return merged
}

// resolveModule returns the module flag value, prompting with the workspace
// module list when the flag is empty.
func resolveModule(value, title string, ws workspace, deps Dependencies) (string, error) {
	if value != "" {
		return value, nil
	}
	if deps.Prompter == nil {
		return "", fmt.Errorf("no module specified (use --module)")
	}
	if len(ws.Modules) == 0 {
		return "", fmt.Errorf("no modules found under %s", ws.AddonsPath)
	}
	return deps.Prompter.Select(title, ws.Modules)
}

// resolveText returns the given value, prompting for it when empty.
func resolveText(value, title string, suggestions []string, deps Dependencies) (string, error) {
	if value != "" {
		return value, nil
	}
	if deps.Prompter == nil {
		return "", fmt.Errorf("missing required value: %s", title)
	}
	return deps.Prompter.Input(title, suggestions)
}
