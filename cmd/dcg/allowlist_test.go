package main

import (
	"strings"
	"testing"
)

func TestAllowlistAddRequiresReason(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := runCLI(t, "", "allowlist", "add", "rm -rf ./build")
	if err == nil {
		t.Fatal("expected an error when --reason is omitted")
	}
}

func TestAllowlistAddExactCommandThenListShowsIt(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := runCLI(t, "", "allowlist", "add", "rm -rf ./build", "--reason", "build dir is safe to nuke")
	if err != nil {
		t.Fatalf("allowlist add returned error: %v", err)
	}
	if !strings.Contains(stdout, "Added allowlist exception") {
		t.Fatalf("expected a confirmation line, got %q", stdout)
	}

	stdout, _, err = runCLI(t, "", "allowlist", "list")
	if err != nil {
		t.Fatalf("allowlist list returned error: %v", err)
	}
	if !strings.Contains(stdout, "rm -rf ./build") || !strings.Contains(stdout, "build dir is safe to nuke") {
		t.Fatalf("expected the new entry to appear in the listing, got %q", stdout)
	}
}

func TestAllowlistAddRuleIDThenOverridesSubsequentDeny(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	explainStdout, _, err := runCLI(t, "", "explain", "--json", "rm -rf /etc")
	if err != nil {
		t.Fatalf("explain returned error: %v", err)
	}
	if !strings.Contains(explainStdout, `"packId"`) {
		t.Fatalf("expected explain to report a packId, got %q", explainStdout)
	}

	ruleID := extractJSONField(t, explainStdout, "packId") + ":" + extractJSONField(t, explainStdout, "patternName")

	_, _, err = runCLI(t, "", "allowlist", "add", ruleID, "--reason", "reviewed by team lead")
	if err != nil {
		t.Fatalf("allowlist add returned error: %v", err)
	}

	stdout, _, err := runCLI(t, "", "explain", "rm -rf /etc")
	if err != nil {
		t.Fatalf("explain returned error: %v", err)
	}
	if !strings.Contains(stdout, "ALLOWED") {
		t.Fatalf("expected the rule allowlist entry to override the deny, got %q", stdout)
	}
}

func TestAllowlistAddUserFlagWritesToUserPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir+"/.config")

	_, _, err := runCLI(t, "", "allowlist", "add", "rm -rf ./scratch", "--reason", "scratch dir", "--user")
	if err != nil {
		t.Fatalf("allowlist add --user returned error: %v", err)
	}

	stdout, _, err := runCLI(t, "", "allowlist", "list")
	if err != nil {
		t.Fatalf("allowlist list returned error: %v", err)
	}
	if !strings.Contains(stdout, "user (") {
		t.Fatalf("expected the user layer to be listed, got %q", stdout)
	}
}

// extractJSONField pulls a top-level string field's value out of a JSON
// object without a full unmarshal, good enough for pulling packId/
// patternName out of an explain --json report in a test.
func extractJSONField(t *testing.T, doc, field string) string {
	t.Helper()
	needle := `"` + field + `": "`
	idx := strings.Index(doc, needle)
	if idx < 0 {
		t.Fatalf("field %q not found in %q", field, doc)
	}
	rest := doc[idx+len(needle):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		t.Fatalf("unterminated field %q in %q", field, doc)
	}
	return rest[:end]
}
