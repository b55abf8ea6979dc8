package config

import (
	"testing"

	"github.com/corvid-labs/dcg/internal/core"
)

func TestToEvaluatorConfigAppliesBudgetAndThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Evaluator.BudgetMS = 100
	cfg.Evaluator.WarnThreshold = 0.7

	ec := cfg.ToEvaluatorConfig()
	if ec.BudgetMS != 100 {
		t.Fatalf("BudgetMS = %d, want 100", ec.BudgetMS)
	}
	if ec.WarnThreshold != 0.7 {
		t.Fatalf("WarnThreshold = %v, want 0.7", ec.WarnThreshold)
	}
}

func TestToEvaluatorConfigWildcardPacksMeansAllEnabled(t *testing.T) {
	cfg := DefaultConfig() // Packs.Enabled == ["*"]
	ec := cfg.ToEvaluatorConfig()
	if len(ec.EnabledPacks) != 0 {
		t.Fatalf("EnabledPacks = %v, want empty (meaning all enabled)", ec.EnabledPacks)
	}
}

func TestToEvaluatorConfigRestrictsToNamedPacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Packs.Enabled = []string{"core.filesystem", "core.git"}
	ec := cfg.ToEvaluatorConfig()
	if len(ec.EnabledPacks) != 2 {
		t.Fatalf("EnabledPacks = %v, want 2 entries", ec.EnabledPacks)
	}
}

func TestToEvaluatorConfigSeverityOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Overrides = map[string]OverrideEntry{
		"core.filesystem:rm-rf-system-root": {Severity: "low"},
	}
	ec := cfg.ToEvaluatorConfig()
	rid := core.RuleID{PackID: "core.filesystem", PatternName: "rm-rf-system-root"}
	if ec.SeverityOverrides[rid] != core.SeverityLow {
		t.Fatalf("SeverityOverrides[%v] = %v, want low", rid, ec.SeverityOverrides[rid])
	}
}

func TestToEvaluatorConfigDecisionOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Overrides = map[string]OverrideEntry{
		"core.git:force-push-shared-branch": {Decision: "allow"},
	}
	ec := cfg.ToEvaluatorConfig()
	rid := core.RuleID{PackID: "core.git", PatternName: "force-push-shared-branch"}
	if ec.DecisionOverrides[rid] != core.DecisionAllow {
		t.Fatalf("DecisionOverrides[%v] = %v, want Allow", rid, ec.DecisionOverrides[rid])
	}
}

func TestToEvaluatorConfigSkipsMalformedOverrideKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Overrides = map[string]OverrideEntry{
		"not-a-valid-rule-id": {Severity: "low"},
	}
	ec := cfg.ToEvaluatorConfig()
	if len(ec.SeverityOverrides) != 0 {
		t.Fatalf("SeverityOverrides = %v, want empty for a malformed key", ec.SeverityOverrides)
	}
}
