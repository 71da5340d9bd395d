// Where: internal/app/guide_cmd.go
// What: Handler for the guide command.
package app

import (
	"io"

	"github.com/hoangtrann/otk/internal/guide"
	"github.com/hoangtrann/otk/internal/ui"
)

// runGuide shows the quick reference, interactively when no topic is given
// and a prompter is available.
func runGuide(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	topic := cli.Guide.Topic
	if cli.Guide.Interactive || topic == "" {
		if deps.Prompter == nil {
			guide.ShowHelp(console)
			return 0
		}
		if err := guide.RunInteractive(console, deps.Prompter); err != nil {
			return exitWithError(out, err)
		}
		return 0
	}

	if err := guide.ShowReference(console, topic, cli.Guide.Subtopic); err != nil {
		return exitWithError(out, err)
	}
	return 0
}
