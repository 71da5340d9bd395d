// Where: internal/app/deps.go
// What: Injected dependencies for CLI command execution.
// Why: Handlers stay testable when IO, prompting, and network are swappable.
package app

import (
	"io"

	"github.com/hoangtrann/otk/internal/interaction"
	"github.com/hoangtrann/otk/internal/lint"
)

// Dependencies holds everything command handlers need beyond parsed flags.
type Dependencies struct {
	// WorkDir is the directory the CLI was invoked from.
	WorkDir string
	// Out receives all command output.
	Out io.Writer
	// Prompter supplies interactive input. Nil disables prompting; commands
	// missing required values then fail instead of asking.
	Prompter interaction.Prompter
	// SchemaFetcher overrides the grammar schema download. Nil uses HTTP.
	SchemaFetcher lint.Fetcher
}

// grammarValidator builds the validator the lint handlers use.
func (d Dependencies) grammarValidator() *lint.GrammarValidator {
	if d.SchemaFetcher != nil {
		return lint.NewGrammarValidatorWithFetcher(d.SchemaFetcher)
	}
	return lint.NewGrammarValidator()
}
