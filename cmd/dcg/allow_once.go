package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/config"
	"github.com/corvid-labs/dcg/internal/core"
	"github.com/corvid-labs/dcg/internal/hookio"
)

func init() {
	rootCmd.AddCommand(allowOnceCmd)
}

var allowOnceCmd = &cobra.Command{
	Use:   "allow-once <code>",
	Short: "Redeem an allow-once code issued by a denied hook invocation",
	Long: `Redeems the short code a "dcg hook" denial printed in its
remediation.allowOnceCommand field, recovering the exact command text and
writing a single, time-limited exact-command allowlist entry for it so the
agent's next retry of the identical command is allowed.

The code is single-use and expires ` + hookio.PendingTTL.String() + ` after it was issued.`,
	Args: cobra.ExactArgs(1),
	RunE: runAllowOnce,
}

func runAllowOnce(cmd *cobra.Command, args []string) error {
	dir := filepath.Join(projectDir(), ".dcg", "pending")
	rec, err := hookio.RedeemAllowOnce(dir, args[0])
	if err != nil {
		return err
	}

	entry := core.AllowEntry{
		Selector:  core.AllowSelector{Kind: core.SelectorExactCommand, Text: rec.Command},
		Reason:    fmt.Sprintf("allow-once redemption of %s", rec.RuleID),
		AddedBy:   resolvedAgent().Agent.Name,
		Session:   true,
		ExpiresAt: rec.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	path := filepath.Join(projectDir(), ".dcg", "allowlist.toml")
	if err := config.AppendEntry(path, entry); err != nil {
		return fmt.Errorf("writing allow-once exception: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Allowed once: %s\nRe-run the exact same command; this exception expires at %s.\n", rec.Command, rec.ExpiresAt.Format("15:04:05 MST"))
	return nil
}
