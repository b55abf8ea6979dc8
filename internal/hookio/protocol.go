// Package hookio implements the Claude Code PreToolUse hook protocol: JSON
// input on stdin describing the tool call about to run, and a JSON denial
// decision on stdout that Claude Code interprets as an allow/deny verdict.
package hookio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/corvid-labs/dcg/internal/core"
)

// Input is the payload Claude Code sends on stdin before running a tool.
type Input struct {
	ToolName  string     `json:"tool_name"`
	ToolInput *ToolInput `json:"tool_input"`
}

// ToolInput carries tool-specific parameters. Only Bash invocations carry a
// Command; other tools (Read, Write, Edit, ...) are left to other hooks.
type ToolInput struct {
	Command json.RawMessage `json:"command"`
}

// ErrInputTooLarge is returned by ReadInput when stdin exceeds the
// configured byte limit, guarding against a misbehaving host pumping an
// unbounded stream into the hook.
type ErrInputTooLarge struct {
	Limit int64
}

func (e ErrInputTooLarge) Error() string {
	return fmt.Sprintf("hook input exceeds %d byte limit", e.Limit)
}

// ReadInput reads and parses hook input from r, refusing anything larger
// than maxBytes.
func ReadInput(r io.Reader, maxBytes int64) (Input, error) {
	limited := io.LimitReader(r, maxBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return Input{}, err
	}
	if int64(len(data)) > maxBytes {
		return Input{}, ErrInputTooLarge{Limit: maxBytes}
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, err
	}
	return in, nil
}

// ExtractCommand pulls the shell command string out of a Bash tool
// invocation. It returns ok=false for non-Bash tools, a missing command
// field, or an empty command string; Claude Code's tool_input.command is
// typed loosely enough that it is sometimes a JSON string wrapped in extra
// quoting or, rarely, absent entirely.
func ExtractCommand(in Input) (string, bool) {
	if in.ToolName != "Bash" || in.ToolInput == nil || len(in.ToolInput.Command) == 0 {
		return "", false
	}

	var cmd string
	if err := json.Unmarshal(in.ToolInput.Command, &cmd); err != nil {
		return "", false
	}
	if cmd == "" {
		return "", false
	}
	return cmd, true
}

// Decision is the JSON document written to stdout for the PreToolUse hook.
type Decision struct {
	HookSpecificOutput DecisionBody `json:"hookSpecificOutput"`
}

// DecisionBody carries the actual allow/deny verdict and, for denials,
// enough structured context for an AI agent to recover without asking the
// human to re-run the raw command.
type DecisionBody struct {
	HookEventName            string       `json:"hookEventName"`
	PermissionDecision       string       `json:"permissionDecision"`
	PermissionDecisionReason string       `json:"permissionDecisionReason"`
	AllowOnceCode            string       `json:"allowOnceCode,omitempty"`
	AllowOnceFullHash        string       `json:"allowOnceFullHash,omitempty"`
	RuleID                   string       `json:"ruleId,omitempty"`
	PackID                   string       `json:"packId,omitempty"`
	Severity                 string       `json:"severity,omitempty"`
	Confidence               *float64     `json:"confidence,omitempty"`
	Remediation              *Remediation `json:"remediation,omitempty"`
}

// Remediation suggests a safer path forward for a denied command.
type Remediation struct {
	SafeAlternative  string `json:"safeAlternative,omitempty"`
	Explanation      string `json:"explanation"`
	AllowOnceCommand string `json:"allowOnceCommand,omitempty"`
}

// AllowOnce carries the short code and full hash issued for a pending
// allow-once exception, so a deny response can tell the agent how to
// re-run the exact same command without a second review.
type AllowOnce struct {
	Code     string
	FullHash string
}

// Allow builds the JSON decision for a command that is permitted to run.
func Allow() Decision {
	return Decision{HookSpecificOutput: DecisionBody{
		HookEventName:      "PreToolUse",
		PermissionDecision: "allow",
	}}
}

// Deny builds the JSON decision for a command blocked by a match, following
// the "{packId}:{patternName}" rule identifier convention. allowOnce is nil
// when no pending exception was recorded for this command.
func Deny(command string, match core.Match, confidence *core.ConfidenceScore, allowOnce *AllowOnce) Decision {
	ruleID := fmt.Sprintf("%s:%s", match.PackID, match.PatternName)
	reason := formatDenialReason(command, match, ruleID)

	body := DecisionBody{
		HookEventName:            "PreToolUse",
		PermissionDecision:       "deny",
		PermissionDecisionReason: reason,
		RuleID:                   ruleID,
		PackID:                   match.PackID,
		Severity:                 string(match.Severity),
	}
	if confidence != nil {
		v := confidence.Value
		body.Confidence = &v
	}
	if allowOnce != nil {
		body.AllowOnceCode = allowOnce.Code
		body.AllowOnceFullHash = allowOnce.FullHash
	}

	explanation := match.Explanation
	if explanation == "" {
		explanation = reason
	}
	remediation := &Remediation{Explanation: explanation}
	if len(match.Suggestions) > 0 {
		remediation.SafeAlternative = match.Suggestions[0].SafeAlternative
	}
	if allowOnce != nil {
		remediation.AllowOnceCommand = fmt.Sprintf("dcg allow-once %s", allowOnce.Code)
	}
	body.Remediation = remediation

	return Decision{HookSpecificOutput: body}
}

func formatDenialReason(command string, match core.Match, ruleID string) string {
	explanation := match.Explanation
	if explanation == "" {
		explanation = fmt.Sprintf("Matched destructive pattern %s. No additional explanation is available.", ruleID)
	}
	return fmt.Sprintf(
		"BLOCKED by dcg\n\nReason: %s\n\nExplanation: %s\n\nRule: %s\n\nCommand: %s\n\n"+
			"If this operation is truly needed, ask the user for explicit permission and have them run the command manually.",
		match.Reason, explanation, ruleID, command,
	)
}

// Write serializes d as a single line of JSON to w, as required by the
// PreToolUse hook protocol.
func Write(w io.Writer, d Decision) error {
	enc := json.NewEncoder(w)
	return enc.Encode(d)
}
