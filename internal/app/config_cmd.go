// Where: internal/app/config_cmd.go
// What: Handlers for the config show/set commands.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/hoangtrann/otk/internal/config"
	"github.com/hoangtrann/otk/internal/ui"
)

type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Show the global configuration"`
	Set  ConfigSetCmd  `cmd:"" help:"Set a global configuration value"`
}

type ConfigShowCmd struct{}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"Setting key (defaults.author, defaults.website, defaults.category, defaults.license)"`
	Value string `arg:"" help:"New value"`
}

// runConfigShow prints the global config path and current values.
func runConfigShow(_ CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg := config.LoadGlobalConfigOrDefault()

	console.Header("⚙️", "Global configuration")
	console.Item("Path", path)
	console.Item("defaults.author", cfg.Defaults.Author)
	console.Item("defaults.website", cfg.Defaults.Website)
	console.Item("defaults.category", cfg.Defaults.Category)
	console.Item("defaults.license", cfg.Defaults.License)
	if len(cfg.RecentModules) > 0 {
		console.Item("recent_modules", strings.Join(cfg.RecentModules, ", "))
	}
	return 0
}

// runConfigSet updates one manifest default in the global config.
func runConfigSet(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg := config.LoadGlobalConfigOrDefault()

	key := cli.Config.Set.Key
	value := cli.Config.Set.Value
	switch key {
	case "defaults.author":
		cfg.Defaults.Author = value
	case "defaults.website":
		cfg.Defaults.Website = value
	case "defaults.category":
		cfg.Defaults.Category = value
	case "defaults.license":
		cfg.Defaults.License = value
	default:
		return exitWithMessage(out, fmt.Sprintf("unknown setting %q", key))
	}

	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}
	console.Success(fmt.Sprintf("Set %s = %s", key, value))
	return 0
}
