// Where: internal/scaffold/resolver.go
// What: Template resolution with generic fallback.
// Why: Let specialized templates override the per-category default without
//      hardcoding availability in command handlers.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hoangtrann/otk/assets"
)

// ErrTemplateNotFound is returned when neither the requested variant nor the
// category fallback template exists.
var ErrTemplateNotFound = errors.New("template not found")

// templateRoot is the prefix of all template paths inside the embedded FS.
const templateRoot = "templates"

// Resolve returns the embedded template path for (category, variant), falling
// back to the category's generic template when no specialized one exists.
// Returned paths are relative to the templates root, e.g. "model/model.py.tmpl".
func Resolve(category, variant, fallback string) (string, error) {
	if variant != "" {
		candidate := category + "/" + variant + ".tmpl"
		if templateExists(candidate) {
			return candidate, nil
		}
	}
	if fallback != "" {
		candidate := category + "/" + fallback + ".tmpl"
		if templateExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, category, variant)
}

func templateExists(name string) bool {
	info, err := fs.Stat(assets.TemplatesFS, templateRoot+"/"+name)
	return err == nil && !info.IsDir()
}
