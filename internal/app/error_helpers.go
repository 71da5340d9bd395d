// Where: internal/app/error_helpers.go
// What: Shared error output helpers for command handlers.
package app

import (
	"fmt"
	"io"
)

// exitWithError prints the error and returns the failure exit code.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "✗ Error: %v\n", err)
	return 1
}

// exitWithMessage prints a plain failure message and returns the failure
// exit code.
func exitWithMessage(out io.Writer, message string) int {
	fmt.Fprintf(out, "✗ Error: %s\n", message)
	return 1
}
