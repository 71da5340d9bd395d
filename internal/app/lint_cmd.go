// Where: internal/app/lint_cmd.go
// What: Handlers for the lint views/xml commands.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/hoangtrann/otk/internal/lint"
	"github.com/hoangtrann/otk/internal/ui"
)

// runLintViews lints view files with both convention and grammar passes.
func runLintViews(cli CLI, deps Dependencies, out io.Writer) int {
	opts := lint.Options{
		ValidateViews: true,
		SkipGrammar:   cli.Lint.Views.SkipRng,
	}
	return runLint(cli, deps, out, cli.Lint.Views.Path, opts)
}

// runLintXML lints XML files with convention checks only.
func runLintXML(cli CLI, deps Dependencies, out io.Writer) int {
	return runLint(cli, deps, out, cli.Lint.XML.Path, lint.Options{})
}

func runLint(cli CLI, deps Dependencies, out io.Writer, path string, opts lint.Options) int {
	console := ui.New(out)

	ws, err := resolveWorkspace(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	if ws.Project.Lint.SkipRNG {
		opts.SkipGrammar = true
	}

	var paths []string
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(deps.WorkDir, path)
		}
		paths = []string{path}
	} else {
		paths = ws.AllPaths
	}

	console.Header("🔍", "Linting XML files")

	runner := lint.NewRunner(deps.grammarValidator())
	result, err := runner.LintPaths(paths, opts)
	if err != nil {
		return exitWithError(out, err)
	}

	for _, notice := range result.Notices {
		console.Warn(notice)
	}

	if len(result.Findings) == 0 {
		console.Success("No issues found")
		return 0
	}

	currentFile := ""
	for _, finding := range result.Findings {
		if finding.File != currentFile {
			currentFile = finding.File
			console.Info(currentFile)
		}
		marker := "✗"
		if finding.Severity == lint.SeverityWarning {
			marker = "⚠"
		}
		console.ItemPlain(fmt.Sprintf("%s %s", marker, finding.String()))
	}

	console.Warn(fmt.Sprintf("Found %d issue(s)", len(result.Findings)))
	return 1
}
