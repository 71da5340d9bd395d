// Where: internal/lint/lint.go
// What: Lint runner over XML files.
// Why: One entry point that collects files, runs both passes, and merges
//      findings into a deterministic stream.
package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Options selects which passes run.
type Options struct {
	// ValidateViews enables the grammar pass on view documents.
	ValidateViews bool
	// SkipGrammar disables the grammar pass even when ValidateViews is set.
	SkipGrammar bool
}

// Result aggregates findings across one run. Notices report skipped passes
// without contributing to the exit status.
type Result struct {
	Findings []Finding
	Notices  []string
}

// HasErrors reports whether any error-severity finding was recorded.
func (r Result) HasErrors() bool {
	for _, finding := range r.Findings {
		if finding.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Runner executes lint passes. A nil grammar validator disables that pass.
type Runner struct {
	grammar *GrammarValidator

	grammarDown bool
}

// NewRunner builds a runner around the given grammar validator.
func NewRunner(grammar *GrammarValidator) *Runner {
	return &Runner{grammar: grammar}
}

// CollectFiles expands a file or directory path into the XML files to lint.
// Directories are walked recursively; hidden directories are skipped.
func CollectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(entry), ".xml") {
			files = append(files, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LintPaths lints every file under the given paths and returns the merged,
// sorted result.
func (r *Runner) LintPaths(paths []string, opts Options) (Result, error) {
	var result Result
	for _, path := range paths {
		files, err := CollectFiles(path)
		if err != nil {
			return result, err
		}
		for _, file := range files {
			fileResult, err := r.LintFile(file, opts)
			if err != nil {
				return result, err
			}
			result.Findings = append(result.Findings, fileResult.Findings...)
			result.Notices = append(result.Notices, fileResult.Notices...)
		}
	}
	SortFindings(result.Findings)
	return result, nil
}

// LintFile runs the enabled passes over one file. A document that fails to
// parse yields a single syntax finding; the run continues.
func (r *Runner) LintFile(file string, opts Options) (Result, error) {
	var result Result

	raw, err := os.ReadFile(file)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", file, err)
	}

	doc, parseErr := ParseDocument(raw)
	if parseErr != nil {
		result.Findings = append(result.Findings, Finding{
			File:     file,
			Line:     syntaxLine(parseErr),
			Severity: SeverityError,
			Message:  fmt.Sprintf("XML syntax error: %v", parseErr),
		})
		return result, nil
	}

	result.Findings = append(result.Findings, ConventionPass(file, doc, raw)...)

	if opts.ValidateViews && !opts.SkipGrammar && r.grammar != nil && !r.grammarDown {
		viewType := DetectViewType(doc)
		if viewType != "" && r.grammar.Supports(viewType) {
			grammarFindings, err := r.grammar.Validate(file, doc, viewType)
			if err != nil {
				// One failed fetch disables the pass for the rest of the run.
				r.grammarDown = true
				result.Notices = append(result.Notices,
					fmt.Sprintf("Skipping grammar validation: %v", err))
			} else {
				result.Findings = append(result.Findings, grammarFindings...)
			}
		}
	}

	return result, nil
}
