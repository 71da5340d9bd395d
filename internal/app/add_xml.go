// Where: internal/app/add_xml.go
// What: Handlers for the add action/menu commands.
// Why: Both append rendered records into views/actions_and_menus.xml.
package app

import (
	"fmt"
	"io"

	"github.com/hoangtrann/otk/internal/scaffold"
	"github.com/hoangtrann/otk/internal/ui"
)

// runAddAction appends a window action record for a model.
func runAddAction(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ws, err := resolveWorkspace(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	module, err := resolveModule(cli.Add.Action.Module,
		"In which module should the action be created?", ws, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	moduleDir, err := ws.moduleDir(module)
	if err != nil {
		return exitWithError(out, err)
	}

	modelName := cli.Add.Action.Model
	console.Header("🎬", fmt.Sprintf("Creating action for %s in module %s", modelName, module))

	context := scaffold.ActionContext(modelName, "list,form", "")
	outputPath, err := scaffold.AppendRecord(moduleDir, "action/window_action.xml.tmpl", context)
	if err != nil {
		return exitWithError(out, err)
	}
	console.Created(relToAddons(ws, outputPath))

	console.Success("Successfully created action!")
	console.Info("Don't forget to add the XML file to your __manifest__.py:")
	console.ItemPlain("'data': ['views/actions_and_menus.xml', ...]")
	return 0
}

// runAddMenu appends a menuitem record triggering an action.
func runAddMenu(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ws, err := resolveWorkspace(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	module, err := resolveModule(cli.Add.Menu.Module,
		"In which module should the menu be created?", ws, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	action, err := resolveText(cli.Add.Menu.Action,
		"Enter the action XML ID (e.g. 'my_module.action_my_model')", nil, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	moduleDir, err := ws.moduleDir(module)
	if err != nil {
		return exitWithError(out, err)
	}

	name := cli.Add.Menu.Name
	console.Header("📋", fmt.Sprintf("Creating menu %s in module %s", name, module))

	context := scaffold.MenuContext(name, action, cli.Add.Menu.Parent)
	outputPath, err := scaffold.AppendRecord(moduleDir, "menu/menuitem.xml.tmpl", context)
	if err != nil {
		return exitWithError(out, err)
	}
	console.Created(relToAddons(ws, outputPath))

	console.Success("Successfully created menu!")
	console.Info("Don't forget to add the XML file to your __manifest__.py:")
	console.ItemPlain("'data': ['views/actions_and_menus.xml', ...]")
	return 0
}
