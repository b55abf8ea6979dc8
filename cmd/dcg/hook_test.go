package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/corvid-labs/dcg/internal/hookio"
)

// runCLI executes the dcg root command with args against stdin, returning
// the decoded stdout/stderr. Each call resets the handful of package-level
// flag vars cobra binds its flags to, since tests share the single
// process-wide rootCmd the way `dcg` itself does.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags()

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func resetFlags() {
	flagProject = ""
	flagNoColor = true // tests run without a terminal; keep output ASCII/plain
	flagJSON = false
	flagDBPath = ""
	flagAgent = ""
	flagVerbose = false
	flagInitForce = false
	flagTestFile = ""
	flagAllowReason = ""
	flagAllowUser = false
	flagHistoryLimit = 20
	flagHistoryKind = ""
	flagHistoryOlderThan = "30d"
}

func decodeHookStdout(t *testing.T, stdout string) hookio.Decision {
	t.Helper()
	var d hookio.Decision
	if err := json.Unmarshal([]byte(stdout), &d); err != nil {
		t.Fatalf("decoding hook stdout %q: %v", stdout, err)
	}
	return d
}

func TestHookAllowsSafeCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdin := `{"tool_name":"Bash","tool_input":{"command":"git status"}}`
	stdout, _, err := runCLI(t, stdin, "--db", dir+"/history.db", "hook")
	if err != nil {
		t.Fatalf("hook returned error: %v", err)
	}

	decision := decodeHookStdout(t, stdout)
	if decision.HookSpecificOutput.PermissionDecision != "allow" {
		t.Fatalf("PermissionDecision = %q, want allow", decision.HookSpecificOutput.PermissionDecision)
	}
}

func TestHookDeniesDestructiveCommandAndIssuesAllowOnce(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdin := `{"tool_name":"Bash","tool_input":{"command":"rm -rf /etc"}}`
	stdout, stderr, err := runCLI(t, stdin, "--db", dir+"/history.db", "hook")
	if err != nil {
		t.Fatalf("hook returned error: %v", err)
	}

	decision := decodeHookStdout(t, stdout)
	if decision.HookSpecificOutput.PermissionDecision != "deny" {
		t.Fatalf("PermissionDecision = %q, want deny, stderr=%s", decision.HookSpecificOutput.PermissionDecision, stderr)
	}
	if decision.HookSpecificOutput.AllowOnceCode == "" {
		t.Fatal("expected an allow-once code on a deny decision")
	}
	if !strings.Contains(stderr, "BLOCKED") {
		t.Fatalf("expected a BLOCKED box on stderr, got %q", stderr)
	}
}

func TestHookIgnoresNonBashTool(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdin := `{"tool_name":"Read","tool_input":{"command":"rm -rf /"}}`
	stdout, _, err := runCLI(t, stdin, "--db", dir+"/history.db", "hook")
	if err != nil {
		t.Fatalf("hook returned error: %v", err)
	}

	decision := decodeHookStdout(t, stdout)
	if decision.HookSpecificOutput.PermissionDecision != "allow" {
		t.Fatalf("PermissionDecision = %q, want allow for a non-Bash tool", decision.HookSpecificOutput.PermissionDecision)
	}
}

func TestHookFailsOpenOnMalformedInput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := runCLI(t, "not json", "--db", dir+"/history.db", "hook")
	if err != nil {
		t.Fatalf("hook returned error: %v", err)
	}

	decision := decodeHookStdout(t, stdout)
	if decision.HookSpecificOutput.PermissionDecision != "allow" {
		t.Fatalf("PermissionDecision = %q, want allow on malformed input", decision.HookSpecificOutput.PermissionDecision)
	}
}

func TestAllowOnceRedeemsCodeFromHookDenial(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdin := `{"tool_name":"Bash","tool_input":{"command":"rm -rf /etc"}}`
	stdout, _, err := runCLI(t, stdin, "--db", dir+"/history.db", "hook")
	if err != nil {
		t.Fatalf("hook returned error: %v", err)
	}
	decision := decodeHookStdout(t, stdout)
	code := decision.HookSpecificOutput.AllowOnceCode
	if code == "" {
		t.Fatal("expected an allow-once code")
	}

	_, stderr, err := runCLI(t, "", "allow-once", code)
	if err != nil {
		t.Fatalf("allow-once returned error: %v, stderr=%s", err, stderr)
	}

	_, _, err = runCLI(t, "", "allow-once", code)
	if err == nil {
		t.Fatal("expected the second redemption of the same code to fail")
	}
}
