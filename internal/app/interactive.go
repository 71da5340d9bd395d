// Where: internal/app/interactive.go
// What: Menu-driven interactive mode.
// Why: Walks users through the same operations as the subcommands, dispatching
//      in-process instead of re-invoking the binary.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/hoangtrann/otk/internal/guide"
	"github.com/hoangtrann/otk/internal/interaction"
	"github.com/hoangtrann/otk/internal/ui"
)

// runInteractive drives the main menu loop until the user exits.
func runInteractive(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	if deps.Prompter == nil {
		return exitWithMessage(out, "interactive mode requires a terminal")
	}

	console.Header("🚀", "OTK Interactive Mode")
	console.ItemPlain("Use arrow keys to navigate, Enter to select, Ctrl+C to exit")

	for {
		choice, err := deps.Prompter.SelectValue("What would you like to do?", []interaction.SelectOption{
			{Label: "1. Module Management", Value: "module"},
			{Label: "2. Model Management", Value: "model"},
			{Label: "3. View Management", Value: "view"},
			{Label: "4. Extension Management", Value: "extension"},
			{Label: "5. Reference Guide", Value: "guide"},
			{Label: "6. Exit", Value: "exit"},
		})
		if err != nil {
			return exitWithError(out, err)
		}

		switch choice {
		case "module":
			interactiveModuleMenu(cli, deps, out)
		case "model":
			interactiveModelMenu(cli, deps, out)
		case "view":
			interactiveViewMenu(cli, deps, out)
		case "extension":
			interactiveExtensionMenu(cli, deps, out)
		case "guide":
			if err := guide.RunInteractive(console, deps.Prompter); err != nil {
				return exitWithError(out, err)
			}
		case "exit":
			console.Success("Goodbye!")
			return 0
		}
	}
}

func interactiveModuleMenu(cli CLI, deps Dependencies, out io.Writer) {
	console := ui.New(out)

	choice, err := deps.Prompter.Select("Select an option:",
		[]string{"Create New Module", "List Existing Modules", "Back to Main Menu"})
	if err != nil {
		return
	}

	switch choice {
	case "Create New Module":
		// Name is prompted by the handler itself.
		next := cli
		next.Add.Module = AddModuleCmd{}
		runAddModule(next, deps, out)
	case "List Existing Modules":
		ws, err := resolveWorkspace(cli, deps)
		if err != nil {
			exitWithError(out, err)
			return
		}
		console.Header("📦", "Existing modules")
		if len(ws.Modules) == 0 {
			console.ItemPlain("No modules found in the current directory.")
			console.ItemPlain("Tip: make sure you're in an addons directory or create a new module.")
			return
		}
		for i, module := range ws.Modules {
			console.ItemPlain(fmt.Sprintf("%d. %s", i+1, module))
		}
	}
}

func interactiveModelMenu(cli CLI, deps Dependencies, out io.Writer) {
	choice, err := deps.Prompter.Select("Select an option:", []string{
		"Create New Model",
		"Create Model with Inheritance",
		"Create Wizard Model",
		"Back to Main Menu",
	})
	if err != nil || choice == "Back to Main Menu" {
		return
	}

	if choice == "Create Wizard Model" {
		next := cli
		next.Add.Wizard = AddWizardCmd{}
		runAddWizard(next, deps, out)
		return
	}

	next := cli
	next.Add.Model = AddModelCmd{Type: "Model"}
	if choice == "Create Model with Inheritance" {
		inherit, err := deps.Prompter.Input("Enter model to inherit from (e.g. 'mail.thread')", nil)
		if err != nil {
			return
		}
		next.Add.Model.Inherit = inherit
	}
	runAddModel(next, deps, out)
}

func interactiveViewMenu(cli CLI, deps Dependencies, out io.Writer) {
	choice, err := deps.Prompter.Select("Select an option:",
		[]string{"Generate Views for Model", "Back to Main Menu"})
	if err != nil || choice != "Generate Views for Model" {
		return
	}

	var selected []string
	for _, viewType := range []string{"form", "list", "search", "kanban"} {
		include, err := deps.Prompter.Confirm(fmt.Sprintf("Include %s view?", viewType), true)
		if err != nil {
			return
		}
		if include {
			selected = append(selected, viewType)
		}
	}
	if len(selected) == 0 {
		return
	}

	next := cli
	next.Add.View = AddViewCmd{Type: strings.Join(selected, ","), Layout: "sheet"}
	runAddView(next, deps, out)
}

func interactiveExtensionMenu(cli CLI, deps Dependencies, out io.Writer) {
	choice, err := deps.Prompter.Select("Select an option:", []string{
		"Extend Existing View",
		"Create Action",
		"Create Menu Item",
		"Back to Main Menu",
	})
	if err != nil {
		return
	}

	switch choice {
	case "Extend Existing View":
		next := cli
		next.Extend.View = ExtendViewCmd{}
		runExtendView(next, deps, out)
	case "Create Action":
		model, err := deps.Prompter.Input("Enter model name (e.g. 'project.task')", nil)
		if err != nil || model == "" {
			return
		}
		next := cli
		next.Add.Action = AddActionCmd{Model: model}
		runAddAction(next, deps, out)
	case "Create Menu Item":
		name, err := deps.Prompter.Input("Enter menu name (e.g. 'My Custom Menu')", nil)
		if err != nil || name == "" {
			return
		}
		parent, err := deps.Prompter.Input("Enter parent menu XML ID (empty for top level)", []string{"base.menu_administration"})
		if err != nil {
			return
		}
		next := cli
		next.Add.Menu = AddMenuCmd{Name: name, Parent: parent}
		runAddMenu(next, deps, out)
	}
}
