// Where: internal/config/project.go
// What: Project-level otk.yml load and schema validation.
// Why: Let a repository pin addons path and manifest defaults for all users.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// ProjectConfigFile is the per-repository configuration file name.
const ProjectConfigFile = "otk.yml"

//go:embed schema/otk.schema.json
var projectSchemaJSON []byte

var (
	projectSchemaOnce sync.Once
	projectSchemaErr  error
	projectSchema     *jsonschema.Schema
)

// ProjectConfig represents the optional otk.yml found in an addons root.
type ProjectConfig struct {
	AddonsPath string           `yaml:"addons_path,omitempty"`
	Defaults   ManifestDefaults `yaml:"defaults,omitempty"`
	Lint       LintSettings     `yaml:"lint,omitempty"`
}

// LintSettings tunes the lint command for a project.
type LintSettings struct {
	SkipRNG bool `yaml:"skip_rng,omitempty"`
}

// LoadProjectConfig reads and validates otk.yml in the given directory.
// A missing file is not an error; the zero config is returned.
func LoadProjectConfig(dir string) (ProjectConfig, error) {
	path := filepath.Join(dir, ProjectConfigFile)
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ProjectConfig{}, nil
		}
		return ProjectConfig{}, err
	}

	if err := validateProjectConfig(payload); err != nil {
		return ProjectConfig{}, fmt.Errorf("%s: %w", path, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// validateProjectConfig checks the raw YAML payload against the embedded
// JSON Schema before decoding into the typed struct.
func validateProjectConfig(payload []byte) error {
	sch, err := loadProjectSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return sch.Validate(document)
}

func loadProjectSchema() (*jsonschema.Schema, error) {
	projectSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("otk.schema.json", bytes.NewReader(projectSchemaJSON)); err != nil {
			projectSchemaErr = err
			return
		}
		projectSchema, projectSchemaErr = compiler.Compile("otk.schema.json")
	})
	return projectSchema, projectSchemaErr
}
