package core

import (
	"os"
	"testing"
)

func TestParseAgentNameNormalizesDashesAndCase(t *testing.T) {
	cases := map[string]string{
		"Claude-Code": "claude-code",
		"CLAUDE_CODE": "claude-code",
		"aider":       "aider",
		"codex":       "codex-cli",
		"gemini-cli":  "gemini-cli",
	}
	for input, want := range cases {
		got := ParseAgentName(input)
		if got.Name != want {
			t.Fatalf("ParseAgentName(%q).Name = %q, want %q", input, got.Name, want)
		}
	}
}

func TestParseAgentNameUnknownPreservesInput(t *testing.T) {
	got := ParseAgentName("some-custom-tool")
	if got.Known {
		t.Fatal("expected an unrecognized name to be reported as unknown")
	}
	if got.Name != "some-custom-tool" {
		t.Fatalf("Name = %q, want the original input preserved", got.Name)
	}
}

func TestDetectFromEnvironmentPrefersFirstMatch(t *testing.T) {
	t.Setenv("CLAUDE_CODE", "1")
	result, ok := detectFromEnvironment()
	if !ok || result.Agent.Name != "claude-code" {
		t.Fatalf("result = %+v ok=%v, want claude-code", result, ok)
	}
	if result.Method != DetectionEnvironment {
		t.Fatalf("Method = %v, want DetectionEnvironment", result.Method)
	}
}

func TestDetectFromEnvironmentNoSignalsReturnsFalse(t *testing.T) {
	for _, sig := range agentEnvSignals {
		old, had := os.LookupEnv(sig.env)
		os.Unsetenv(sig.env)
		if had {
			t.Cleanup(func() { os.Setenv(sig.env, old) })
		}
	}
	if _, ok := detectFromEnvironment(); ok {
		t.Fatal("expected no detection when no agent environment variables are set")
	}
}
