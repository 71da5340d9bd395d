// Where: internal/scaffold/renderer.go
// What: Render embedded component templates.
// Why: One rendering path with a shared func map and cache for all commands.
package scaffold

import (
	"bytes"
	"fmt"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/hoangtrann/otk/assets"
)

var templateCache sync.Map

// Render executes the named embedded template with the given context.
// Template names are relative to the templates root ("model/model.py.tmpl").
// A context key referenced by the template but absent from the map is a
// render error, not silently empty output.
func Render(name string, context map[string]any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(path.Base(name)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(assets.TemplatesFS, templateRoot+"/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
