// Where: internal/app/add.go
// What: Handlers for the add module/model/view/wizard commands.
package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hoangtrann/otk/internal/config"
	"github.com/hoangtrann/otk/internal/scaffold"
	"github.com/hoangtrann/otk/internal/ui"
)

var modelTypes = []string{"Model", "TransientModel", "AbstractModel"}

// runAddModule scaffolds a new module skeleton.
func runAddModule(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ws, err := resolveWorkspace(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	name, err := resolveText(cli.Add.Module.Name,
		"Enter module name (e.g. 'my_custom_module')",
		config.LoadGlobalConfigOrDefault().RecentModules, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🧱", fmt.Sprintf("Creating new module %s", name))

	created, err := scaffold.CreateModule(ws.AddonsPath, name, ws.manifestDefaults())
	if err != nil {
		return exitWithError(out, err)
	}
	for _, path := range created {
		console.Created(relToAddons(ws, path))
	}

	rememberModule(name)

	console.Success(fmt.Sprintf("Successfully created module %s!", name))
	console.Info("Next steps:")
	console.ItemPlain("• Add models to the models/ directory")
	console.ItemPlain("• Create views in the views/ directory")
	console.ItemPlain("• Configure security in security/ir.model.access.csv")
	console.ItemPlain("• Update the __manifest__.py file with your data files")
	return 0
}

// runAddModel creates a model stub in an existing module.
func runAddModel(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ws, err := resolveWorkspace(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	module, err := resolveModule(cli.Add.Model.Module,
		"In which module would you like to create the new model?", ws, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	name, err := resolveText(cli.Add.Model.Name,
		"What is the name of the new model? (e.g. 'res.partner')", nil, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	modelType := cli.Add.Model.Type
	if !validModelType(modelType) {
		return exitWithMessage(out, fmt.Sprintf(
			"invalid model type %q (want Model, TransientModel, or AbstractModel)", modelType))
	}

	moduleDir, err := ws.moduleDir(module)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🧩", fmt.Sprintf("Creating new %s %s in module %s", modelType, name, module))

	touched, err := scaffold.CreateModel(moduleDir, name, modelType, cli.Add.Model.Inherit, nil)
	if err != nil {
		return exitWithError(out, err)
	}
	for _, path := range touched {
		console.Created(relToAddons(ws, path))
	}

	rememberModule(module)

	console.Success(fmt.Sprintf("Successfully created %s %s!", modelType, name))
	switch modelType {
	case "TransientModel":
		console.Info("Next steps for your wizard:")
		console.ItemPlain("• Add wizard fields to the model")
		console.ItemPlain("• Create a wizard form view")
		console.ItemPlain("• Add an action to open the wizard")
		console.ItemPlain("• Implement the wizard logic in action_confirm()")
	case "AbstractModel":
		console.Info("Next steps for your abstract model:")
		console.ItemPlain("• Add common fields and methods")
		console.ItemPlain(fmt.Sprintf("• Use _inherit = '%s' in concrete models", name))
	default:
		console.Info("Don't forget to list security/ir.model.access.csv in your __manifest__.py data files")
	}
	return 0
}

// runAddView renders the requested view types into one views file.
func runAddView(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ws, err := resolveWorkspace(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	module, err := resolveModule(cli.Add.View.Module,
		"In which module would you like to create the views?", ws, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	modelName, err := resolveText(cli.Add.View.Model,
		"What is the model name? (e.g. 'res.partner')", nil, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	viewTypes := splitViewTypes(cli.Add.View.Type)
	if len(viewTypes) == 0 {
		return exitWithMessage(out, "no view types requested")
	}

	moduleDir, err := ws.moduleDir(module)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🖼️", fmt.Sprintf("Creating views for model %s in module %s", modelName, module))
	console.Item("View types", strings.Join(viewTypes, ", "))

	viewsPath, err := scaffold.CreateViews(moduleDir, modelName, viewTypes, cli.Add.View.Layout)
	if err != nil {
		return exitWithError(out, err)
	}
	console.Created(relToAddons(ws, viewsPath))

	rememberModule(module)

	console.Success(fmt.Sprintf("Successfully created views for %s!", modelName))
	console.Info("Don't forget to add the views file to your __manifest__.py:")
	console.ItemPlain(fmt.Sprintf("'data': ['views/%s_views.xml', ...]", scaffold.TechnicalName(modelName)))
	return 0
}

// runAddWizard scaffolds a wizard: TransientModel, dialog form, and action.
func runAddWizard(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ws, err := resolveWorkspace(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	module, err := resolveModule(cli.Add.Wizard.Module,
		"In which module would you like to create the wizard?", ws, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	name, err := resolveText(cli.Add.Wizard.Name,
		"What is the name of the wizard? (e.g. 'import.wizard')", nil, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	moduleDir, err := ws.moduleDir(module)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🪄", fmt.Sprintf("Creating wizard %s in module %s", name, module))

	result, err := scaffold.CreateWizard(moduleDir, name)
	if err != nil {
		return exitWithError(out, err)
	}
	console.Created(relToAddons(ws, result.ModelPath))
	console.Created(relToAddons(ws, result.ViewPath))
	console.Created(relToAddons(ws, result.ActionPath))

	rememberModule(module)

	snake := scaffold.TechnicalName(name)
	console.Success(fmt.Sprintf("Successfully created wizard %s!", name))
	console.Info("Don't forget to add the wizard files to your __manifest__.py:")
	console.ItemPlain(fmt.Sprintf("'data': ['wizard/%s_views.xml', 'wizard/%s_action.xml', ...]", snake, snake))
	console.Info("Next steps:")
	console.ItemPlain("• Add wizard fields to the model")
	console.ItemPlain("• Implement the wizard logic in action_confirm()")
	console.ItemPlain(fmt.Sprintf("• Action XML ID: %s.%s_action", module, snake))
	return 0
}

func validModelType(modelType string) bool {
	for _, known := range modelTypes {
		if modelType == known {
			return true
		}
	}
	return false
}

func splitViewTypes(value string) []string {
	var types []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			types = append(types, part)
		}
	}
	return types
}

// relToAddons shortens a created path for display.
func relToAddons(ws workspace, path string) string {
	base := filepath.Dir(ws.AddonsPath)
	if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// rememberModule records recent module usage for prompt suggestions.
func rememberModule(module string) {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return
	}
	cfg := config.LoadGlobalConfigOrDefault()
	config.RememberModule(&cfg, module)
	_ = config.SaveGlobalConfig(path, cfg)
}
