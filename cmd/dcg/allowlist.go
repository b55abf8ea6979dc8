package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/config"
	"github.com/corvid-labs/dcg/internal/core"
)

var (
	flagAllowReason string
	flagAllowUser   bool
)

func init() {
	allowlistAddCmd.Flags().StringVarP(&flagAllowReason, "reason", "r", "", "why this exception is safe (required)")
	allowlistAddCmd.Flags().BoolVar(&flagAllowUser, "user", false, "write to the per-user allowlist instead of the project one")

	allowlistCmd.AddCommand(allowlistAddCmd)
	allowlistCmd.AddCommand(allowlistListCmd)
	rootCmd.AddCommand(allowlistCmd)
}

var allowlistCmd = &cobra.Command{
	Use:   "allowlist",
	Short: "Manage allowlist exceptions",
}

var allowlistAddCmd = &cobra.Command{
	Use:   "add <rule-id|exact-command>",
	Short: "Add an allowlist exception for a rule id or an exact command",
	Long: `Adds an exception to the project (default) or user allowlist.

The argument is treated as a "pack_id:pattern_name" rule id if it parses as
one; otherwise it's recorded as an exact-command exception.

Examples:
  dcg allowlist add core.git:push-force --reason "release branch, team policy"
  dcg allowlist add "rm -rf ./build" --reason "build dir is safe to nuke"`,
	Args: cobra.ExactArgs(1),
	RunE: runAllowlistAdd,
}

var allowlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List allowlist exceptions across all layers",
	RunE:  runAllowlistList,
}

func runAllowlistAdd(cmd *cobra.Command, args []string) error {
	if flagAllowReason == "" {
		return fmt.Errorf("--reason is required: record why this exception is safe")
	}

	var selector core.AllowSelector
	if rid, ok := core.ParseRuleID(args[0]); ok {
		selector = core.AllowSelector{Kind: core.SelectorRule, Rule: rid}
	} else {
		selector = core.AllowSelector{Kind: core.SelectorExactCommand, Text: args[0]}
	}

	entry := core.AllowEntry{
		Selector: selector,
		Reason:   flagAllowReason,
		AddedBy:  resolvedAgent().Agent.Name,
	}

	path := filepath.Join(projectDir(), ".dcg", "allowlist.toml")
	if flagAllowUser {
		_, userPath, _ := config.AllowlistPaths(projectDir())
		path = userPath
	}

	if err := config.AppendEntry(path, entry); err != nil {
		return fmt.Errorf("adding allowlist entry: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added allowlist exception to %s: %s (%s)\n", path, selectorLabel(selector), entry.Reason)
	return nil
}

func runAllowlistList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	project, user, system := config.AllowlistPaths(projectDir())
	layers := []struct {
		name  string
		path  string
		layer core.AllowlistLayer
	}{
		{"project", project, core.LayerProject},
		{"user", user, core.LayerUser},
		{"system", system, core.LayerSystem},
	}

	total := 0
	for _, l := range layers {
		layer := config.LoadAllowlistLayer(l.layer, l.path)
		if len(layer.File.Entries) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s (%s):\n", l.name, l.path)
		for _, entry := range layer.File.Entries {
			fmt.Fprintf(out, "  - %s", selectorLabel(entry.Selector))
			if entry.Reason != "" {
				fmt.Fprintf(out, "  # %s", entry.Reason)
			}
			fmt.Fprintln(out)
			total++
		}
	}
	if total == 0 {
		fmt.Fprintln(out, "No allowlist exceptions configured.")
	}
	return nil
}

func selectorLabel(s core.AllowSelector) string {
	switch s.Kind {
	case core.SelectorRule:
		return s.Rule.String()
	default:
		return fmt.Sprintf("%s: %s", s.Kind.Label(), s.Text)
	}
}
