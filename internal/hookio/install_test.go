package hookio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestInstallHookFreshProject(t *testing.T) {
	dir := t.TempDir()
	path, merged, err := InstallHook(dir, true)
	if err != nil {
		t.Fatalf("InstallHook: %v", err)
	}
	if merged {
		t.Fatal("expected merged=false for a fresh project")
	}
	if filepath.Base(path) != "hooks.json" {
		t.Fatalf("path = %q, want a hooks.json file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var f ClaudeHooksFile
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if f.Hooks.PreToolUse == nil || f.Hooks.PreToolUse.Command != "dcg hook" {
		t.Fatalf("PreToolUse = %+v, want command=dcg hook", f.Hooks.PreToolUse)
	}
}

func TestInstallHookMergePreservesUnrelatedKeys(t *testing.T) {
	dir := t.TempDir()
	claudeDir := filepath.Join(dir, ".claude")
	if err := os.MkdirAll(claudeDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	existing := `{
  "hooks": {
    "PostToolUse": {"command": "some-other-tool"}
  },
  "unrelatedTopLevelKey": "keep-me"
}`
	if err := os.WriteFile(filepath.Join(claudeDir, "hooks.json"), []byte(existing), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	path, merged, err := InstallHook(dir, true)
	if err != nil {
		t.Fatalf("InstallHook: %v", err)
	}
	if !merged {
		t.Fatal("expected merged=true when a hooks.json already exists")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(raw["unrelatedTopLevelKey"]) != `"keep-me"` {
		t.Fatalf("unrelatedTopLevelKey = %s, want preserved", raw["unrelatedTopLevelKey"])
	}

	var hooks map[string]json.RawMessage
	if err := json.Unmarshal(raw["hooks"], &hooks); err != nil {
		t.Fatalf("Unmarshal hooks: %v", err)
	}
	if _, ok := hooks["PostToolUse"]; !ok {
		t.Fatal("expected PostToolUse hook to survive the merge")
	}
	var preToolUse ClaudeHook
	if err := json.Unmarshal(hooks["PreToolUse"], &preToolUse); err != nil {
		t.Fatalf("Unmarshal PreToolUse: %v", err)
	}
	if preToolUse.Command != "dcg hook" {
		t.Fatalf("PreToolUse.Command = %q, want dcg hook", preToolUse.Command)
	}
}

func TestInstallHookNoMergeOverwrites(t *testing.T) {
	dir := t.TempDir()
	claudeDir := filepath.Join(dir, ".claude")
	if err := os.MkdirAll(claudeDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	existing := `{"hooks": {"PreToolUse": {"command": "old-command"}}, "unrelatedTopLevelKey": "gone"}`
	if err := os.WriteFile(filepath.Join(claudeDir, "hooks.json"), []byte(existing), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	path, _, err := InstallHook(dir, false)
	if err != nil {
		t.Fatalf("InstallHook: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var f ClaudeHooksFile
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if f.Hooks.PreToolUse.Command != "dcg hook" {
		t.Fatalf("Command = %q, want dcg hook after overwrite", f.Hooks.PreToolUse.Command)
	}
}
