// Where: cmd/otk/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/hoangtrann/otk/internal/app"
	"github.com/hoangtrann/otk/internal/interaction"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies required by the CLI.
// Prompting is only wired when stdin is a terminal so piped invocations fail
// fast instead of hanging on hidden prompts.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	deps := app.Dependencies{
		WorkDir: workDir,
		Out:     os.Stdout,
	}
	if interaction.IsTerminal(os.Stdin) {
		deps.Prompter = interaction.HuhPrompter{}
	}
	return deps, nil
}
