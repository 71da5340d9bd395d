// Where: cmd/otk/cli_test.go
// What: Tests for CLI dependency wiring.
package main

import (
	"errors"
	"os"
	"testing"
)

func TestBuildDependenciesSuccess(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() {
		getwd = origGetwd
	})

	getwd = func() (string, error) {
		return "/project", nil
	}

	deps, err := buildDependencies()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deps.WorkDir != "/project" {
		t.Fatalf("unexpected work dir: %s", deps.WorkDir)
	}
	if deps.Out != os.Stdout {
		t.Fatalf("expected stdout writer")
	}
}

func TestBuildDependenciesGetwdError(t *testing.T) {
	origGetwd := getwd
	t.Cleanup(func() {
		getwd = origGetwd
	})

	getwd = func() (string, error) {
		return "", errors.New("boom")
	}

	if _, err := buildDependencies(); err == nil {
		t.Fatalf("expected error on getwd failure")
	}
}
