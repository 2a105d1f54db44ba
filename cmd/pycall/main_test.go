package main

import (
	"os"
	"strings"
	"testing"
)

func TestRunInspectRejectsWrongArgCount(t *testing.T) {
	if err := runInspect(nil); err == nil {
		t.Error("runInspect with no args should error")
	}
	if err := runInspect([]string{"a", "b"}); err == nil {
		t.Error("runInspect with two args should error")
	}
}

func TestRunTryRejectsTooFewArgs(t *testing.T) {
	if err := runTry(nil); err == nil {
		t.Error("runTry with no args should error")
	}
	if err := runTry([]string{"only-one"}); err == nil {
		t.Error("runTry with one arg should error")
	}
}

func TestRunTryReportsUnknownFunction(t *testing.T) {
	err := runTry([]string{"github.com/funvibe/pycall/internal/argkind", "NoSuchFunc"})
	if err == nil {
		t.Skip("Scan requires a resolvable module cache in this environment")
	}
	if !strings.Contains(err.Error(), "NoSuchFunc") {
		t.Errorf("error = %v, want it to mention the missing function name", err)
	}
}

func TestRunTryBindsPositionalStringArgs(t *testing.T) {
	err := runTry([]string{"github.com/funvibe/pycall/internal/argkind", "Less", "1", "2"})
	if err != nil {
		t.Skipf("Scan requires a resolvable module cache in this environment: %v", err)
	}
}

func TestRunTryReportsStructuralBindError(t *testing.T) {
	// Less takes exactly two parameters; a third positional argument with no
	// *args slot to absorb it is a structural bind failure either way scan
	// succeeds or not in this environment.
	if err := runTry([]string{"github.com/funvibe/pycall/internal/argkind", "Less", "1", "2", "3"}); err == nil {
		t.Error("expected a structural bind error for an excess positional argument")
	}
}

func TestColorizePlainOnNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "pycall-colorize")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	got := colorize(f, "hello", 31)
	if got != "hello" {
		t.Errorf("colorize on a non-terminal file = %q, want plain %q", got, "hello")
	}
}
