// Where: internal/scaffold/scaffold.go
// What: Component scaffolding operations (module, model, views, wizard).
// Why: Keep file orchestration out of command handlers; handlers print, this writes.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrModuleExists is returned when the target module directory already exists.
	ErrModuleExists = errors.New("module directory already exists")
	// ErrModelExists is returned when the model file already exists.
	ErrModelExists = errors.New("model file already exists")
)

// moduleDirs is the directory skeleton of a new Odoo module.
var moduleDirs = []string{
	"models",
	"views",
	"security",
	"data",
	"demo",
	"wizard",
	filepath.Join("static", "description"),
	filepath.Join("static", "src", "js"),
	filepath.Join("static", "src", "css"),
}

// CreateModule scaffolds a new module skeleton under addonsPath and returns
// the files it created.
func CreateModule(addonsPath, name string, defaults ManifestDefaults) ([]string, error) {
	moduleDir := filepath.Join(addonsPath, name)
	if _, err := os.Stat(moduleDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrModuleExists, moduleDir)
	}

	for _, dir := range moduleDirs {
		if err := os.MkdirAll(filepath.Join(moduleDir, dir), 0o755); err != nil {
			return nil, err
		}
	}

	var created []string

	manifestPath := filepath.Join(moduleDir, "__manifest__.py")
	if err := renderToFile("module/manifest.py.tmpl", ModuleContext(name, defaults), manifestPath); err != nil {
		return nil, err
	}
	created = append(created, manifestPath)

	initPath := filepath.Join(moduleDir, "__init__.py")
	if err := renderToFile("module/init.py.tmpl", map[string]any{}, initPath); err != nil {
		return nil, err
	}
	created = append(created, initPath)

	modelsInit := filepath.Join(moduleDir, "models", "__init__.py")
	if err := os.WriteFile(modelsInit, nil, 0o644); err != nil {
		return nil, err
	}
	created = append(created, modelsInit)

	return created, nil
}

// CreateModel renders a model stub into moduleDir/models, registers the import
// and maintains the access rights file. AbstractModel gets no access rows.
func CreateModel(moduleDir, name, modelType, inherit string, fields []FieldDescriptor) ([]string, error) {
	snake := TechnicalName(name)
	modelPath := filepath.Join(moduleDir, "models", snake+".py")
	if _, err := os.Stat(modelPath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrModelExists, modelPath)
	}

	variant := ""
	switch modelType {
	case "TransientModel":
		variant = "transient_model.py"
	case "AbstractModel":
		variant = "abstract_model.py"
	}
	templateName, err := Resolve("model", variant, "model.py")
	if err != nil {
		return nil, err
	}

	context := ModelContext(name, modelType, inherit, fields)
	if err := renderToFile(templateName, context, modelPath); err != nil {
		return nil, err
	}
	touched := []string{modelPath}

	initPath := filepath.Join(moduleDir, "models", "__init__.py")
	if err := appendLine(initPath, fmt.Sprintf("from . import %s", snake)); err != nil {
		return nil, err
	}
	touched = append(touched, initPath)

	if modelType != "AbstractModel" {
		accessPath, err := writeAccessRule(moduleDir, name)
		if err != nil {
			return nil, err
		}
		touched = append(touched, accessPath)
	}

	return touched, nil
}

// CreateViews renders the requested view types for a model and combines the
// records into a single views/<model>_views.xml document.
func CreateViews(moduleDir, modelName string, viewTypes []string, layout string) (string, error) {
	context := ViewContext(modelName, layout, false)

	var records []string
	for _, viewType := range viewTypes {
		viewType = strings.TrimSpace(viewType)
		if viewType == "tree" {
			viewType = "list"
		}
		templateName, err := Resolve("view", viewType+"_view.xml", "views.xml")
		if err != nil {
			return "", err
		}
		content, err := Render(templateName, context)
		if err != nil {
			return "", err
		}
		records = append(records, extractRecords(content))
	}

	viewsDir := filepath.Join(moduleDir, "views")
	if err := os.MkdirAll(viewsDir, 0o755); err != nil {
		return "", err
	}
	outputPath := filepath.Join(viewsDir, TechnicalName(modelName)+"_views.xml")
	document := "<odoo>\n" + strings.Join(records, "\n\n") + "\n</odoo>\n"
	if err := os.WriteFile(outputPath, []byte(document), 0o644); err != nil {
		return "", err
	}
	return outputPath, nil
}

// WizardResult lists the files a wizard scaffold produced.
type WizardResult struct {
	ModelPath  string
	ViewPath   string
	ActionPath string
}

// CreateWizard scaffolds a TransientModel, its dialog form view, and the
// window action opening it, all under moduleDir/wizard.
func CreateWizard(moduleDir, name string) (WizardResult, error) {
	snake := TechnicalName(name)
	wizardDir := filepath.Join(moduleDir, "wizard")
	if err := os.MkdirAll(wizardDir, 0o755); err != nil {
		return WizardResult{}, err
	}

	fields := []FieldDescriptor{{Name: "name", Type: "Char", Label: "Name", Required: true}}
	context := ModelContext(name, "TransientModel", "", fields)
	context["description"] = fmt.Sprintf("%s Wizard", ClassName(name))

	templateName, err := Resolve("model", "transient_model.py", "model.py")
	if err != nil {
		return WizardResult{}, err
	}
	modelPath := filepath.Join(wizardDir, snake+".py")
	if err := renderToFile(templateName, context, modelPath); err != nil {
		return WizardResult{}, err
	}

	initPath := filepath.Join(wizardDir, "__init__.py")
	if err := appendLine(initPath, fmt.Sprintf("from . import %s", snake)); err != nil {
		return WizardResult{}, err
	}
	if err := ensureWizardImport(moduleDir); err != nil {
		return WizardResult{}, err
	}

	viewPath := filepath.Join(wizardDir, snake+"_views.xml")
	viewContent, err := Render("view/form_view.xml.tmpl", ViewContext(name, "simple", true))
	if err != nil {
		return WizardResult{}, err
	}
	document := "<odoo>\n" + extractRecords(viewContent) + "\n</odoo>\n"
	if err := os.WriteFile(viewPath, []byte(document), 0o644); err != nil {
		return WizardResult{}, err
	}

	actionPath := filepath.Join(wizardDir, snake+"_action.xml")
	actionContent, err := Render("action/window_action.xml.tmpl", ActionContext(name, "form", "new"))
	if err != nil {
		return WizardResult{}, err
	}
	actionDoc := "<odoo>\n" + extractRecords(actionContent) + "\n</odoo>\n"
	if err := os.WriteFile(actionPath, []byte(actionDoc), 0o644); err != nil {
		return WizardResult{}, err
	}

	return WizardResult{ModelPath: modelPath, ViewPath: viewPath, ActionPath: actionPath}, nil
}

// AppendRecord renders a template and appends the result inside the <odoo>
// wrapper of views/actions_and_menus.xml, creating the file when absent.
func AppendRecord(moduleDir, templateName string, context map[string]any) (string, error) {
	content, err := Render(templateName, context)
	if err != nil {
		return "", err
	}
	outputPath := filepath.Join(moduleDir, "views", "actions_and_menus.xml")
	if err := appendXMLRecord(outputPath, content); err != nil {
		return "", err
	}
	return outputPath, nil
}

// renderToFile renders a template and writes the result, creating parents.
func renderToFile(templateName string, context map[string]any, outputPath string) error {
	content, err := Render(templateName, context)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte(content), 0o644)
}

// writeAccessRule creates security/ir.model.access.csv or appends the new
// model's row to an existing file, skipping the header.
func writeAccessRule(moduleDir, modelName string) (string, error) {
	accessPath := filepath.Join(moduleDir, "security", "ir.model.access.csv")
	content, err := Render("model/ir.model.access.csv.tmpl", AccessContext(modelName))
	if err != nil {
		return "", err
	}

	if _, statErr := os.Stat(accessPath); statErr != nil {
		if !errors.Is(statErr, os.ErrNotExist) {
			return "", statErr
		}
		if err := os.MkdirAll(filepath.Dir(accessPath), 0o755); err != nil {
			return "", err
		}
		return accessPath, os.WriteFile(accessPath, []byte(content), 0o644)
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) < 2 {
		return "", fmt.Errorf("access template produced no rule row")
	}
	return accessPath, appendLine(accessPath, lines[1])
}

// ensureWizardImport adds "from . import wizard" to the module __init__.py once.
func ensureWizardImport(moduleDir string) error {
	initPath := filepath.Join(moduleDir, "__init__.py")
	payload, err := os.ReadFile(initPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if strings.Contains(string(payload), "from . import wizard") {
		return nil
	}
	return appendLine(initPath, "from . import wizard")
}

// appendLine appends a line to a file, creating it when missing.
func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintf(file, "%s\n", line)
	return err
}

// appendXMLRecord inserts content before the closing </odoo> tag, creating a
// wrapped file when the target does not exist or is empty.
func appendXMLRecord(path, content string) error {
	payload, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	document := string(payload)
	if strings.TrimSpace(document) == "" {
		document = "<odoo>\n\n</odoo>\n"
	}

	record := strings.TrimRight(content, "\n")
	const marker = "</odoo>"
	if strings.Contains(document, marker) {
		document = strings.Replace(document, marker, record+"\n"+marker, 1)
	} else {
		document += record + "\n"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(document), 0o644)
}

// extractRecords strips an <odoo> or <data> wrapper from rendered view
// content, returning the inner records unchanged when no wrapper is present.
func extractRecords(content string) string {
	trimmed := strings.TrimSpace(content)
	for _, tag := range []string{"data", "odoo"} {
		openTag, closeTag := "<"+tag+">", "</"+tag+">"
		start := strings.Index(trimmed, openTag)
		end := strings.LastIndex(trimmed, closeTag)
		if start >= 0 && end > start {
			return strings.TrimSpace(trimmed[start+len(openTag) : end])
		}
	}
	return trimmed
}
