package main

import (
	"strings"
	"testing"
)

func TestSuggestNoMatchReportsNothingToSuggest(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := runCLI(t, "", "suggest", "git status")
	if err != nil {
		t.Fatalf("suggest returned error: %v", err)
	}
	if !strings.Contains(stdout, "nothing to suggest") {
		t.Fatalf("expected a nothing-to-suggest message, got %q", stdout)
	}
}

func TestSuggestPrintsSafeAlternative(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := runCLI(t, "", "suggest", "rm -rf /etc")
	if err != nil {
		t.Fatalf("suggest returned error: %v", err)
	}
	if !strings.Contains(stdout, "Matched") {
		t.Fatalf("expected the matched rule id to be reported, got %q", stdout)
	}
}
