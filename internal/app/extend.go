// Where: internal/app/extend.go
// What: Handler for the extend view command.
// Why: Appends an xpath fragment to an existing inherited view when one is
//      present, otherwise creates a fresh inherited-view file.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hoangtrann/otk/internal/interaction"
	"github.com/hoangtrann/otk/internal/scaffold"
	"github.com/hoangtrann/otk/internal/ui"
	"github.com/hoangtrann/otk/internal/xmledit"
)

var extendPositions = []string{"after", "before", "inside", "replace"}

// runExtendView extends an existing view with a new field.
func runExtendView(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	ws, err := resolveWorkspace(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	module, err := resolveModule(cli.Extend.View.Module,
		"In which module should this view extension be created?", ws, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	viewID, err := resolveText(cli.Extend.View.ViewID,
		"What is the External XML ID of the view to extend?",
		[]string{"base.view_partner_form"}, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	modelName, err := resolveText(cli.Extend.View.Model,
		"What is the technical name of the model?", []string{"res.partner"}, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	field, err := resolveText(cli.Extend.View.Field,
		"What is the name of the new field to add?", nil, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	xpathExpr, err := resolveText(cli.Extend.View.Xpath,
		"Enter the XPath expression to target an element",
		[]string{"//field[@name='vat']"}, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	positionValue := cli.Extend.View.Position
	if positionValue == "" && deps.Prompter != nil {
		positionValue, err = deps.Prompter.Select("Select a position for the new field", extendPositions)
		if err != nil {
			return exitWithError(out, err)
		}
	}
	position, err := xmledit.ParsePosition(positionValue)
	if err != nil {
		return exitWithError(out, err)
	}

	moduleDir, err := ws.moduleDir(module)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Header("🔧", fmt.Sprintf("Extending view %s in module %s", viewID, module))

	fragment, err := scaffold.Render("view/xpath_field.xml.tmpl", map[string]any{
		"xpath_expr": xpathExpr,
		"position":   string(position),
		"field_name": field,
	})
	if err != nil {
		return exitWithError(out, err)
	}
	fragment = strings.TrimSpace(fragment)

	viewsDir := filepath.Join(moduleDir, "views")
	if existing, found := xmledit.FindInheritedView(viewsDir, viewID); found {
		console.Info(fmt.Sprintf("Found existing inherited view in %s, appending new xpath", filepath.Base(existing.Path)))
		if err := existing.AppendToArch(fragment); err != nil {
			return exitWithError(out, err)
		}
		console.Success(fmt.Sprintf("Successfully extended view %s!", viewID))
		return 0
	}

	console.Info("No existing inherited view found, creating a new file")
	viewNamePart := viewID
	if idx := strings.LastIndex(viewID, "."); idx >= 0 {
		viewNamePart = viewID[idx+1:]
	}

	content, err := scaffold.Render("view/inherited_view.xml.tmpl", map[string]any{
		"inherit_record_id": fmt.Sprintf("%s_inherit_%s", viewNamePart, module),
		"model_name":        modelName,
		"module_name":       module,
		"view_id":           viewID,
		"xpath_snippet":     fragment,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	outputPath := filepath.Join(viewsDir, viewNamePart+"_inherited_views.xml")
	if _, statErr := os.Stat(outputPath); statErr == nil {
		proceed, confirmErr := confirmOverwrite(deps.Prompter, outputPath)
		if confirmErr != nil {
			return exitWithError(out, confirmErr)
		}
		if !proceed {
			console.Warn("Aborted, file left unchanged")
			return 1
		}
	}
	if err := os.MkdirAll(viewsDir, 0o755); err != nil {
		return exitWithError(out, err)
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return exitWithError(out, err)
	}
	console.Created(relToAddons(ws, outputPath))
	console.Warn("Don't forget to add this file to your __manifest__.py!")
	console.Success(fmt.Sprintf("Successfully extended view %s!", viewID))
	return 0
}

// confirmOverwrite asks before replacing a file in interactive contexts.
func confirmOverwrite(prompter interaction.Prompter, path string) (bool, error) {
	if prompter == nil {
		return true, nil
	}
	return prompter.Confirm(fmt.Sprintf("Overwrite %s?", filepath.Base(path)), false)
}
