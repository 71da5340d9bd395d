// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/hoangtrann/otk/internal/config"
	"github.com/hoangtrann/otk/internal/version"
	"github.com/joho/godotenv"
)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	AddonsPath string `name:"addons-path" default:"." help:"Path to the addons directory"`

	Add         AddCmd         `cmd:"" help:"Create new components (modules, models, views, wizards, actions, menus)"`
	Extend      ExtendCmd      `cmd:"" help:"Modify existing components (view inheritance)"`
	Lint        LintCmd        `cmd:"" help:"Validate view XML against schemas and modern syntax"`
	Guide       GuideCmd       `cmd:"" help:"Quick reference guide for view development"`
	Config      ConfigCmd      `cmd:"" name:"config" help:"Manage configuration"`
	Interactive InteractiveCmd `cmd:"" help:"Start menu-driven interactive mode"`
	Version     VersionCmd     `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type InteractiveCmd struct{}

type AddCmd struct {
	Module AddModuleCmd `cmd:"" help:"Create a new module skeleton"`
	Model  AddModelCmd  `cmd:"" help:"Create a model in an existing module"`
	View   AddViewCmd   `cmd:"" help:"Create views for a model"`
	Wizard AddWizardCmd `cmd:"" help:"Create a complete wizard (model + view + action)"`
	Action AddActionCmd `cmd:"" help:"Create a window action for a model"`
	Menu   AddMenuCmd   `cmd:"" help:"Create a menu item triggering an action"`
}

type AddModuleCmd struct {
	Name string `arg:"" optional:"" help:"Technical name of the module"`
}

type AddModelCmd struct {
	Name    string `arg:"" optional:"" help:"Model name (e.g. 'res.partner')"`
	Module  string `help:"Module to add the model to"`
	Type    string `default:"Model" help:"Model, TransientModel, or AbstractModel"`
	Inherit string `help:"Model to inherit from (e.g. 'mail.thread')"`
}

type AddViewCmd struct {
	Model  string `arg:"" optional:"" help:"Model to create views for"`
	Module string `help:"Module to add the views to"`
	Type   string `default:"form,list" help:"Comma-separated view types (form,list,search,kanban)"`
	Layout string `default:"sheet" help:"Form layout (sheet or simple)"`
}

type AddWizardCmd struct {
	Name   string `arg:"" optional:"" help:"Wizard model name (e.g. 'import.wizard')"`
	Module string `help:"Module to add the wizard to"`
}

type AddActionCmd struct {
	Model  string `arg:"" help:"Model the action opens"`
	Module string `help:"Module to add the action to"`
}

type AddMenuCmd struct {
	Name   string `arg:"" help:"UI text for the menu item"`
	Module string `help:"Module to add the menu to"`
	Action string `help:"XML ID of the action to trigger"`
	Parent string `help:"XML ID of the parent menu"`
}

type ExtendCmd struct {
	View ExtendViewCmd `cmd:"" help:"Extend an existing view with a new field"`
}

type ExtendViewCmd struct {
	Module   string `help:"Module the extension lives in"`
	ViewID   string `name:"view-id" help:"External XML ID of the view to inherit"`
	Model    string `help:"Technical name of the model"`
	Field    string `help:"Name of the field to add"`
	Xpath    string `help:"XPath expression locating the insertion point"`
	Position string `help:"Position relative to the anchor (after, before, inside, replace)"`
}

type LintCmd struct {
	Views LintViewsCmd `cmd:"" help:"Lint view files with grammar and convention checks"`
	XML   LintXMLCmd   `cmd:"" name:"xml" help:"Lint XML files with convention checks only"`
}

type LintViewsCmd struct {
	Path    string `arg:"" optional:"" help:"File or directory to lint (default: all modules)"`
	SkipRng bool   `name:"skip-rng" help:"Skip grammar validation (faster, basic checks only)"`
}

type LintXMLCmd struct {
	Path string `arg:"" optional:"" help:"File or directory to lint (default: all modules)"`
}

type GuideCmd struct {
	Topic       string `arg:"" optional:"" help:"Topic: form, list, search, widgets, patterns"`
	Subtopic    string `arg:"" optional:"" help:"Specific example (optional)"`
	Interactive bool   `short:"i" help:"Start interactive guide mode"`
}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// No arguments: start interactive mode.
	if len(args) == 0 {
		return runInteractive(CLI{AddonsPath: "."}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load .env from the working directory when present.
	if _, statErr := os.Stat(".env"); statErr == nil {
		if loadErr := godotenv.Load(); loadErr != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", loadErr)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"interactive": runInteractive,
		"config show": runConfigShow,
		"version":     func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "add module", handler: runAddModule},
		{prefix: "add model", handler: runAddModel},
		{prefix: "add view", handler: runAddView},
		{prefix: "add wizard", handler: runAddWizard},
		{prefix: "add action", handler: runAddAction},
		{prefix: "add menu", handler: runAddMenu},
		{prefix: "extend view", handler: runExtendView},
		{prefix: "lint views", handler: runLintViews},
		{prefix: "lint xml", handler: runLintXML},
		{prefix: "config set", handler: runConfigSet},
		{prefix: "guide", handler: runGuide},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}
