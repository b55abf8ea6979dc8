package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/output"
)

var flagHistoryLimit int
var flagHistoryKind string
var flagHistoryOlderThan string

func init() {
	historyListCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "maximum records to show")
	historyListCmd.Flags().StringVar(&flagHistoryKind, "kind", "", "filter to one decision kind (allow, warn, deny)")

	historyPruneCmd.Flags().StringVar(&flagHistoryOlderThan, "older-than", "30d", "prune records older than this duration (e.g. 24h, 30d)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded evaluation decisions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent decision records",
	RunE:  runHistoryList,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete decision records older than --older-than",
	RunE:  runHistoryPrune,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openHistory()
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	var records, err2 = db.Recent(flagHistoryLimit)
	if flagHistoryKind != "" {
		records, err2 = db.RecentByKind(flagHistoryKind, flagHistoryLimit)
	}
	if err2 != nil {
		return fmt.Errorf("reading history: %w", err2)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No history recorded yet.")
		return nil
	}

	for _, rec := range records {
		age := output.FormatAge(rec.CreatedAt)
		fmt.Fprintf(out, "[%s] %-5s %s", age, rec.Kind, rec.Command)
		if rec.PackID != "" {
			fmt.Fprintf(out, "  (%s:%s)", rec.PackID, rec.PatternName)
		}
		if rec.AllowlistLayer != "" {
			fmt.Fprintf(out, "  allowlisted:%s", rec.AllowlistLayer)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	d, err := parseRetentionDuration(flagHistoryOlderThan)
	if err != nil {
		return err
	}

	db, err := openHistory()
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	deleted, err := db.Prune(time.Now().UTC().Add(-d))
	if err != nil {
		return fmt.Errorf("pruning history: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d record(s) older than %s.\n", deleted, flagHistoryOlderThan)
	return nil
}

// parseRetentionDuration extends time.ParseDuration with a day ("d") unit,
// matching the allowlist TTL syntax used elsewhere in dcg.
func parseRetentionDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var days int
	if _, err := fmt.Sscanf(s, "%dd", &days); err == nil && days > 0 {
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return 0, fmt.Errorf("invalid duration %q, want a Go duration (e.g. 24h) or Nd (e.g. 30d)", s)
}
