package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/core"
)

func init() {
	rootCmd.AddCommand(explainCmd)
}

var explainCmd = &cobra.Command{
	Use:   "explain <command>",
	Short: "Evaluate a command and print a detailed breakdown of the verdict",
	Long: `Runs the same evaluation pipeline the hook uses against the given command
and prints the matched rule, confidence signals, and any allowlist or
budget interaction that shaped the final decision.

Unlike 'dcg hook', this never consults stdin and always prints a
human-readable (or, with --json, machine-readable) report regardless of
the decision kind, including a plain Allow.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func runExplain(cmd *cobra.Command, args []string) error {
	command := args[0]
	decision := buildEvaluator().Evaluate(command)
	out := cmd.OutOrStdout()

	if flagJSON {
		return printExplainJSON(out, command, decision)
	}

	renderer := newRenderer()
	if decision.Kind == core.DecisionAllow && decision.AllowlistOverride == nil {
		fmt.Fprintln(out, "ALLOW: no destructive pattern matched, and no allowlist override applied.")
		return nil
	}
	renderer.Render(out, command, decision)
	return nil
}

type explainReport struct {
	Command     string   `json:"command"`
	Decision    string   `json:"decision"`
	PackID      string   `json:"packId,omitempty"`
	PatternName string   `json:"patternName,omitempty"`
	Severity    string   `json:"severity,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Confidence  *float64 `json:"confidence,omitempty"`
	AllowLayer  string   `json:"allowlistLayer,omitempty"`
	AllowReason string   `json:"allowlistReason,omitempty"`
	BudgetStage string   `json:"budgetStage,omitempty"`
}

func printExplainJSON(w io.Writer, command string, decision core.EvaluationDecision) error {
	report := explainReport{Command: command, Decision: decision.Kind.String()}
	if decision.Match != nil {
		report.PackID = decision.Match.PackID
		report.PatternName = decision.Match.PatternName
		report.Severity = string(decision.Match.Severity)
		report.Reason = decision.Match.Reason
		report.Explanation = decision.Match.Explanation
	}
	if decision.Confidence != nil {
		v := decision.Confidence.Value
		report.Confidence = &v
	}
	if decision.AllowlistOverride != nil {
		report.AllowLayer = decision.AllowlistOverride.Layer.Label()
		report.AllowReason = decision.AllowlistOverride.Reason
	}
	if decision.Kind == core.DecisionSkippedDueToBudget {
		report.BudgetStage = decision.BudgetStage
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
