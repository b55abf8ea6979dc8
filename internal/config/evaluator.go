package config

import (
	"github.com/charmbracelet/log"

	"github.com/corvid-labs/dcg/internal/core"
)

// ToEvaluatorConfig translates the on-disk [evaluator]/[overrides] sections
// into the core.EvaluatorConfig the evaluator actually runs on. Malformed
// override keys or values are logged and skipped rather than rejected
// wholesale, matching the rest of this package's "warn and keep going"
// merge behavior.
func (cfg Config) ToEvaluatorConfig() core.EvaluatorConfig {
	ec := core.DefaultEvaluatorConfig()

	if cfg.Evaluator.BudgetMS > 0 {
		ec.BudgetMS = cfg.Evaluator.BudgetMS
	}
	if cfg.Evaluator.WarnThreshold > 0 {
		ec.WarnThreshold = cfg.Evaluator.WarnThreshold
	}
	ec.HeredocEnabled = cfg.Heredoc.Enabled
	if cfg.Heredoc.MaxDepth > 0 {
		ec.HeredocMaxDepth = cfg.Heredoc.MaxDepth
	}
	if len(cfg.Packs.Enabled) > 0 && !(len(cfg.Packs.Enabled) == 1 && cfg.Packs.Enabled[0] == "*") {
		ec.EnabledPacks = cfg.Packs.Enabled
	}

	for key, entry := range cfg.Overrides {
		rid, ok := core.ParseRuleID(key)
		if !ok {
			log.Warn("config: skipping malformed override key", "key", key)
			continue
		}
		if entry.Severity != "" {
			sev := core.Severity(entry.Severity)
			if !sev.Valid() {
				log.Warn("config: skipping override with unknown severity", "key", key, "severity", entry.Severity)
			} else {
				if ec.SeverityOverrides == nil {
					ec.SeverityOverrides = map[core.RuleID]core.Severity{}
				}
				ec.SeverityOverrides[rid] = sev
			}
		}
		if entry.Decision != "" {
			dk, ok := parseDecisionKind(entry.Decision)
			if !ok {
				log.Warn("config: skipping override with unknown decision", "key", key, "decision", entry.Decision)
				continue
			}
			if ec.DecisionOverrides == nil {
				ec.DecisionOverrides = map[core.RuleID]core.DecisionKind{}
			}
			ec.DecisionOverrides[rid] = dk
		}
	}

	return ec
}

func parseDecisionKind(s string) (core.DecisionKind, bool) {
	switch s {
	case "allow":
		return core.DecisionAllow, true
	case "deny":
		return core.DecisionDeny, true
	case "warn":
		return core.DecisionWarn, true
	default:
		return 0, false
	}
}
