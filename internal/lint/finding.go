// Where: internal/lint/finding.go
// What: Validation finding type and ordering.
// Why: Both lint passes report through one merged, stable-ordered stream.
package lint

import (
	"fmt"
	"sort"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single reported issue. Findings never abort a lint run; the
// process exit status reflects whether any exist.
type Finding struct {
	File       string
	Line       int
	Severity   Severity
	Message    string
	Suggestion string
}

// String renders a finding the way the CLI prints it.
func (f Finding) String() string {
	msg := fmt.Sprintf("L%d: %s", f.Line, f.Message)
	if f.Line == 0 {
		msg = f.Message
	}
	if f.Suggestion != "" {
		msg += " Suggestion: " + f.Suggestion
	}
	return msg
}

// SortFindings orders findings by file, then line, then message for
// deterministic output.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].File != findings[j].File {
			return findings[i].File < findings[j].File
		}
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Message < findings[j].Message
	})
}
