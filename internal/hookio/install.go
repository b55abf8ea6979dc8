package hookio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ClaudeHooksFile is the top-level shape of a project's .claude/hooks.json.
// Only the PreToolUse slot is modeled; any other keys already present in
// the file are preserved verbatim by InstallHook.
type ClaudeHooksFile struct {
	Hooks ClaudeHooks `json:"hooks"`
}

// ClaudeHooks holds the hook slots dcg participates in.
type ClaudeHooks struct {
	PreToolUse *ClaudeHook `json:"PreToolUse,omitempty"`
}

// ClaudeHook describes a single hook registration: the command Claude Code
// runs and what to do with a "deny" response.
type ClaudeHook struct {
	Command  string            `json:"command"`
	Input    map[string]string `json:"input,omitempty"`
	OnDeny   *ClaudeOnDeny     `json:"onDeny,omitempty"`
	Disabled bool              `json:"disabled,omitempty"`
}

// ClaudeOnDeny configures what Claude Code shows the agent when dcg denies
// a command.
type ClaudeOnDeny struct {
	Message string `json:"message"`
}

// DefaultClaudeHooks returns the hook registration dcg installs by default:
// a PreToolUse hook piping the tool call into "dcg hook" and surfacing its
// JSON denial reason back to the agent.
func DefaultClaudeHooks() ClaudeHooksFile {
	return ClaudeHooksFile{
		Hooks: ClaudeHooks{
			PreToolUse: &ClaudeHook{
				Command: "dcg hook",
				OnDeny: &ClaudeOnDeny{
					Message: "${permissionDecisionReason}",
				},
			},
		},
	}
}

// MarshalClaudeHooks renders a hooks file the way the on-disk file is
// formatted: indented, stable key order via struct field order.
func MarshalClaudeHooks(f ClaudeHooksFile) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// InstallHook writes (or merges) dcg's PreToolUse hook into
// <projectPath>/.claude/hooks.json. When merge is true and the file already
// exists, unrelated top-level keys and other hook slots are preserved; only
// the PreToolUse slot is overwritten. When merge is false, an existing file
// is fully replaced with DefaultClaudeHooks(). Returns the path written and
// whether an existing file was merged into (as opposed to created fresh).
func InstallHook(projectPath string, merge bool) (path string, merged bool, err error) {
	dir := filepath.Join(projectPath, ".claude")
	path = filepath.Join(dir, "hooks.json")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("creating %s: %w", dir, err)
	}

	desired := DefaultClaudeHooks()

	existing, readErr := os.ReadFile(path)
	if readErr != nil {
		if !os.IsNotExist(readErr) {
			return "", false, fmt.Errorf("reading %s: %w", path, readErr)
		}
		data, marshalErr := MarshalClaudeHooks(desired)
		if marshalErr != nil {
			return "", false, marshalErr
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", false, fmt.Errorf("writing %s: %w", path, err)
		}
		return path, false, nil
	}

	if !merge {
		data, marshalErr := MarshalClaudeHooks(desired)
		if marshalErr != nil {
			return "", false, marshalErr
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", false, fmt.Errorf("writing %s: %w", path, err)
		}
		return path, false, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(existing, &raw); err != nil {
		return "", false, fmt.Errorf("parsing %s: %w", path, err)
	}

	var hooksRaw map[string]json.RawMessage
	if hooksBytes, ok := raw["hooks"]; ok {
		if err := json.Unmarshal(hooksBytes, &hooksRaw); err != nil {
			return "", false, fmt.Errorf("parsing hooks object in %s: %w", path, err)
		}
	} else {
		hooksRaw = map[string]json.RawMessage{}
	}

	preToolUse, marshalErr := json.Marshal(desired.Hooks.PreToolUse)
	if marshalErr != nil {
		return "", false, marshalErr
	}
	hooksRaw["PreToolUse"] = preToolUse

	mergedHooks, marshalErr := json.Marshal(hooksRaw)
	if marshalErr != nil {
		return "", false, marshalErr
	}
	raw["hooks"] = mergedHooks

	data, marshalErr := json.MarshalIndent(raw, "", "  ")
	if marshalErr != nil {
		return "", false, marshalErr
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("writing %s: %w", path, err)
	}
	return path, true, nil
}
