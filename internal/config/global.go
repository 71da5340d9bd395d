// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.otk/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hoangtrann/otk/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.otk/config.yaml global configuration.
// It carries manifest authoring defaults and recent-module history used for
// prompt suggestions.
type GlobalConfig struct {
	Version       int              `yaml:"version"`
	Defaults      ManifestDefaults `yaml:"defaults,omitempty"`
	RecentModules []string         `yaml:"recent_modules,omitempty"`
}

// ManifestDefaults holds author metadata rendered into new module manifests.
type ManifestDefaults struct {
	Author   string `yaml:"author,omitempty"`
	Website  string `yaml:"website,omitempty"`
	Category string `yaml:"category,omitempty"`
	License  string `yaml:"license,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version: 1,
		Defaults: ManifestDefaults{
			Author:   "Your Company",
			Website:  "https://www.yourcompany.com",
			Category: "Uncategorized",
			License:  "LGPL-3",
		},
	}
}

// WithEnvOverrides layers OTK_AUTHOR, OTK_WEBSITE, OTK_CATEGORY, and
// OTK_LICENSE environment variables (typically supplied via .env) over the
// stored defaults.
func (d ManifestDefaults) WithEnvOverrides() ManifestDefaults {
	overrides := []struct {
		suffix string
		target *string
	}{
		{"_AUTHOR", &d.Author},
		{"_WEBSITE", &d.Website},
		{"_CATEGORY", &d.Category},
		{"_LICENSE", &d.License},
	}
	for _, entry := range overrides {
		if value := strings.TrimSpace(os.Getenv(meta.EnvPrefix + entry.suffix)); value != "" {
			*entry.target = value
		}
	}
	return d
}

// GlobalConfigPath returns the path to the global config file.
// Respects OTK_CONFIG_PATH and OTK_CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CONFIG_PATH")); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CONFIG_HOME")); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault loads the global config, falling back to defaults
// when the file is missing or unreadable.
func LoadGlobalConfigOrDefault() GlobalConfig {
	path, err := GlobalConfigPath()
	if err != nil {
		return DefaultGlobalConfig()
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		return DefaultGlobalConfig()
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	return cfg
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// RememberModule records a module at the head of the recent-module history,
// keeping at most five entries.
func RememberModule(cfg *GlobalConfig, module string) {
	module = strings.TrimSpace(module)
	if module == "" {
		return
	}
	updated := []string{module}
	for _, entry := range cfg.RecentModules {
		if entry != module {
			updated = append(updated, entry)
		}
	}
	if len(updated) > 5 {
		updated = updated[:5]
	}
	cfg.RecentModules = updated
}
