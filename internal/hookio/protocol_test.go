package hookio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corvid-labs/dcg/internal/core"
)

func TestExtractCommandBash(t *testing.T) {
	in, err := ReadInput(strings.NewReader(`{"tool_name": "Bash", "tool_input": {"command": "git status"}}`), 1<<16)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	cmd, ok := ExtractCommand(in)
	if !ok || cmd != "git status" {
		t.Fatalf("got (%q, %v), want (\"git status\", true)", cmd, ok)
	}
}

func TestExtractCommandNonBash(t *testing.T) {
	in, err := ReadInput(strings.NewReader(`{"tool_name": "Read", "tool_input": {"file_path": "/tmp/foo"}}`), 1<<16)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if _, ok := ExtractCommand(in); ok {
		t.Fatal("expected ok=false for non-Bash tool")
	}
}

func TestExtractCommandEmpty(t *testing.T) {
	in, err := ReadInput(strings.NewReader(`{"tool_name": "Bash", "tool_input": {"command": ""}}`), 1<<16)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if _, ok := ExtractCommand(in); ok {
		t.Fatal("expected ok=false for empty command")
	}
}

func TestReadInputTooLarge(t *testing.T) {
	body := `{"tool_name": "Bash", "tool_input": {"command": "` + strings.Repeat("a", 200) + `"}}`
	_, err := ReadInput(strings.NewReader(body), 32)
	if _, ok := err.(ErrInputTooLarge); !ok {
		t.Fatalf("got err %v, want ErrInputTooLarge", err)
	}
}

func TestDenyIncludesRuleAndPack(t *testing.T) {
	match := core.Match{
		PackID:      "core.git",
		PatternName: "reset-hard",
		Severity:    core.SeverityHigh,
		Reason:      "destroys uncommitted changes",
		Explanation: "Rewrites the working tree to match HEAD.",
		Suggestions: []core.PatternSuggestion{{SafeAlternative: "git stash", Explanation: "save changes first"}},
	}
	d := Deny("git reset --hard", match, nil, nil)

	body := d.HookSpecificOutput
	if body.PermissionDecision != "deny" {
		t.Fatalf("permissionDecision = %q, want deny", body.PermissionDecision)
	}
	if body.RuleID != "core.git:reset-hard" {
		t.Fatalf("ruleId = %q, want core.git:reset-hard", body.RuleID)
	}
	if body.PackID != "core.git" {
		t.Fatalf("packId = %q, want core.git", body.PackID)
	}
	if body.Severity != "high" {
		t.Fatalf("severity = %q, want high", body.Severity)
	}
	if body.Remediation == nil || body.Remediation.SafeAlternative != "git stash" {
		t.Fatalf("remediation = %+v, want SafeAlternative=git stash", body.Remediation)
	}
	if !strings.Contains(body.PermissionDecisionReason, "BLOCKED by dcg") {
		t.Fatalf("permissionDecisionReason missing BLOCKED banner: %q", body.PermissionDecisionReason)
	}
}

func TestDenyWithAllowOnce(t *testing.T) {
	match := core.Match{PackID: "core.filesystem", PatternName: "rm-root", Severity: core.SeverityCritical, Reason: "deletes root"}
	d := Deny("rm -rf /", match, nil, &AllowOnce{Code: "12345", FullHash: "deadbeef"})

	if d.HookSpecificOutput.AllowOnceCode != "12345" {
		t.Fatalf("allowOnceCode = %q, want 12345", d.HookSpecificOutput.AllowOnceCode)
	}
	if d.HookSpecificOutput.AllowOnceFullHash != "deadbeef" {
		t.Fatalf("allowOnceFullHash = %q, want deadbeef", d.HookSpecificOutput.AllowOnceFullHash)
	}
	if d.HookSpecificOutput.Remediation.AllowOnceCommand != "dcg allow-once 12345" {
		t.Fatalf("allowOnceCommand = %q, want dcg allow-once 12345", d.HookSpecificOutput.Remediation.AllowOnceCommand)
	}
}

func TestWriteEncodesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Allow()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"permissionDecision":"allow"`) {
		t.Fatalf("output missing allow decision: %s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("expected trailing newline from json.Encoder")
	}
}
