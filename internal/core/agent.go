package core

import (
	"os"
	"strings"
	"sync"
)

// Agent identifies which AI coding agent is invoking dcg, enabling
// per-agent profile overrides (spec §6: "Agent-detection variables …
// select per-agent profile overrides").
type Agent struct {
	Name    string // canonical config key: "claude-code", "aider", "custom-name", "unknown"
	Known   bool
	Display string
}

var (
	agentClaudeCode = Agent{Name: "claude-code", Known: true, Display: "Claude Code"}
	agentAider      = Agent{Name: "aider", Known: true, Display: "Aider"}
	agentContinue   = Agent{Name: "continue", Known: true, Display: "Continue"}
	agentCodexCLI   = Agent{Name: "codex-cli", Known: true, Display: "Codex CLI"}
	agentGeminiCLI  = Agent{Name: "gemini-cli", Known: true, Display: "Gemini CLI"}
	agentUnknown    = Agent{Name: "unknown", Known: false, Display: "Unknown"}
)

// ParseAgentName parses a user-supplied agent name (e.g. from an
// "--agent=" flag) into an Agent, normalizing dashes/underscores/case.
func ParseAgentName(name string) Agent {
	normalized := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	switch normalized {
	case "claudecode":
		return agentClaudeCode
	case "aider":
		return agentAider
	case "continue":
		return agentContinue
	case "codexcli", "codex":
		return agentCodexCLI
	case "geminicli", "gemini":
		return agentGeminiCLI
	case "unknown":
		return agentUnknown
	default:
		return Agent{Name: name, Known: false, Display: name}
	}
}

// DetectionMethod records how an Agent was identified.
type DetectionMethod int

const (
	DetectionNone DetectionMethod = iota
	DetectionEnvironment
	DetectionExplicit
)

func (m DetectionMethod) String() string {
	switch m {
	case DetectionEnvironment:
		return "environment variable"
	case DetectionExplicit:
		return "explicit flag"
	default:
		return "not detected"
	}
}

// DetectionResult is the full outcome of agent detection, including which
// signal fired.
type DetectionResult struct {
	Agent        Agent
	Method       DetectionMethod
	MatchedValue string
}

var agentEnvSignals = []struct {
	env   string
	agent Agent
}{
	{"CLAUDE_CODE", agentClaudeCode},
	{"CLAUDE_SESSION_ID", agentClaudeCode},
	{"AIDER_SESSION", agentAider},
	{"CONTINUE_SESSION_ID", agentContinue},
	{"CODEX_CLI", agentCodexCLI},
	{"GEMINI_CLI", agentGeminiCLI},
}

// detectFromEnvironment checks the known agent environment variables in
// priority order, returning the first that is set.
func detectFromEnvironment() (DetectionResult, bool) {
	for _, sig := range agentEnvSignals {
		if _, ok := os.LookupEnv(sig.env); ok {
			return DetectionResult{Agent: sig.agent, Method: DetectionEnvironment, MatchedValue: sig.env}, true
		}
	}
	return DetectionResult{}, false
}

// agentProfile memoizes agent detection for the lifetime of the process.
// The original per-thread cache with a 5-minute TTL doesn't translate
// meaningfully to a short-lived CLI invocation; a process only ever runs
// one evaluation, so a one-shot initializer (spec Design Notes §9) replaces
// it outright.
var (
	agentProfileOnce   sync.Once
	agentProfileResult DetectionResult
)

// DetectAgent returns the current process's detected agent, computed once
// and cached for the process lifetime.
func DetectAgent() DetectionResult {
	agentProfileOnce.Do(func() {
		if r, ok := detectFromEnvironment(); ok {
			agentProfileResult = r
			return
		}
		agentProfileResult = DetectionResult{Agent: agentUnknown, Method: DetectionNone}
	})
	return agentProfileResult
}

// ExplicitAgent overrides detection with a CLI-supplied agent name,
// bypassing environment inspection entirely. Callers use this when an
// "--agent=" flag is present; it still participates in the same one-shot
// cache so a single process reports a consistent agent throughout.
func ExplicitAgent(name string) DetectionResult {
	var result DetectionResult
	agentProfileOnce.Do(func() {
		result = DetectionResult{Agent: ParseAgentName(name), Method: DetectionExplicit, MatchedValue: name}
		agentProfileResult = result
	})
	return agentProfileResult
}
