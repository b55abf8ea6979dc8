package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corvid-labs/dcg/internal/core"
)

func TestRenderDenyProducesOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(ColorNever)
	decision := core.EvaluationDecision{
		Kind: core.DecisionDeny,
		Match: &core.Match{
			PackID:      "core.filesystem",
			PatternName: "rm-rf-system-root",
			Severity:    core.SeverityCritical,
			Reason:      "recursive delete of a system root",
			Explanation: "this removes the entire filesystem tree rooted at a critical path",
		},
	}
	r.Render(&buf, "rm -rf /etc", decision)
	out := buf.String()
	if !strings.Contains(out, "BLOCKED") {
		t.Fatalf("expected a BLOCKED marker in output, got %q", out)
	}
	if !strings.Contains(out, "core.filesystem:rm-rf-system-root") {
		t.Fatalf("expected the rule id in output, got %q", out)
	}
}

func TestRenderWarnUsesWarningMarker(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(ColorNever)
	decision := core.EvaluationDecision{
		Kind: core.DecisionWarn,
		Match: &core.Match{
			PackID:      "core.git",
			PatternName: "force-push-shared-branch",
			Severity:    core.SeverityMedium,
			Reason:      "force push may discard remote history",
		},
		Confidence: &core.ConfidenceScore{Value: 0.4},
	}
	r.Render(&buf, "git push --force origin main", decision)
	out := buf.String()
	if !strings.Contains(out, "WARNING") {
		t.Fatalf("expected a WARNING marker in output, got %q", out)
	}
	if !strings.Contains(out, "40%") {
		t.Fatalf("expected confidence percentage in output, got %q", out)
	}
}

func TestRenderAllowWithoutOverrideIsSilent(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(ColorNever)
	r.Render(&buf, "git status", core.EvaluationDecision{Kind: core.DecisionAllow})
	if buf.Len() != 0 {
		t.Fatalf("expected no output for a plain Allow, got %q", buf.String())
	}
}

func TestRenderAllowWithOverrideMentionsLayer(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(ColorNever)
	decision := core.EvaluationDecision{
		Kind: core.DecisionAllow,
		Match: &core.Match{PackID: "core.filesystem", PatternName: "rm-rf-system-root", Severity: core.SeverityCritical},
		AllowlistOverride: &core.AllowlistOverride{
			Layer:  core.LayerProject,
			Reason: "scripted teardown, reviewed",
		},
	}
	r.Render(&buf, "rm -rf /etc/myapp-scratch", decision)
	out := buf.String()
	if !strings.Contains(out, "project allowlist") {
		t.Fatalf("expected the allowlist layer named in output, got %q", out)
	}
	if !strings.Contains(out, "scripted teardown") {
		t.Fatalf("expected the override reason in output, got %q", out)
	}
}

func TestRenderBudgetSkipNamesStage(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(ColorNever)
	decision := core.EvaluationDecision{Kind: core.DecisionSkippedDueToBudget, BudgetStage: "classify"}
	r.Render(&buf, "rm -rf /etc", decision)
	out := buf.String()
	if !strings.Contains(out, "classify") {
		t.Fatalf("expected the budget stage named in output, got %q", out)
	}
}

func TestTruncateShortensLongStrings(t *testing.T) {
	got := truncate("this is a long command line that needs truncation", 20)
	if len(got) != 20 {
		t.Fatalf("truncate length = %d, want 20", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate(%q) = %q, want a ... suffix", "...", got)
	}
}

func TestTruncateLeavesShortStringsAlone(t *testing.T) {
	if got := truncate("short", 20); got != "short" {
		t.Fatalf("truncate = %q, want unchanged", got)
	}
}

func TestWrapBreaksAtWidth(t *testing.T) {
	got := wrap("one two three four five six seven eight", 15)
	for _, line := range strings.Split(got, "\n       ") {
		if len(line) > 15 {
			t.Fatalf("wrapped line %q exceeds width 15", line)
		}
	}
}
