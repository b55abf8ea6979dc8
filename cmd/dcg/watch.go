package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/dcg/internal/history"
)

var flagWatchPollInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&flagWatchPollInterval, "poll-interval", 2*time.Second, "how often to check the history database for new records")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream newly recorded decisions as NDJSON",
	Long: `Polls the history database and streams each new decision record as a
newline-delimited JSON object, for an agent or dashboard that wants to
react to dcg's verdicts as they happen rather than querying history after
the fact.

Exits cleanly on SIGINT/SIGTERM.`,
	RunE: runWatch,
}

// watchEvent is the NDJSON shape emitted per record: a flattened view of
// history.DecisionRecord, independent of its storage representation so the
// wire format doesn't change if the schema does.
type watchEvent struct {
	ID             string  `json:"id"`
	CreatedAt      string  `json:"createdAt"`
	Command        string  `json:"command"`
	Kind           string  `json:"kind"`
	PackID         string  `json:"packId,omitempty"`
	PatternName    string  `json:"patternName,omitempty"`
	Severity       string  `json:"severity,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
	AllowlistLayer string  `json:"allowlistLayer,omitempty"`
	Agent          string  `json:"agent,omitempty"`
}

func toWatchEvent(rec history.DecisionRecord) watchEvent {
	ev := watchEvent{
		ID:             rec.ID,
		CreatedAt:      rec.CreatedAt.Format(time.RFC3339),
		Command:        rec.Command,
		Kind:           rec.Kind,
		PackID:         rec.PackID,
		PatternName:    rec.PatternName,
		Severity:       rec.Severity,
		AllowlistLayer: rec.AllowlistLayer,
		Agent:          rec.Agent,
	}
	if rec.Confidence != nil {
		ev.Confidence = *rec.Confidence
	}
	return ev
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	db, err := openHistory()
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	return watchLoop(ctx, db, cmd.OutOrStdout(), flagWatchPollInterval)
}

// watchLoop polls db every interval and writes each new record to out as
// NDJSON, until ctx is cancelled. Split out from runWatch so it can be
// driven by a test-controlled context instead of OS signals.
func watchLoop(ctx context.Context, db *history.DB, out io.Writer, interval time.Duration) error {
	enc := json.NewEncoder(out)

	cutoff := time.Now().UTC()
	seenAtCutoff := map[string]bool{}

	poll := func() error {
		records, err := db.Since(cutoff.Add(-time.Second))
		if err != nil {
			return fmt.Errorf("polling history: %w", err)
		}
		for _, rec := range records {
			if !rec.CreatedAt.After(cutoff) && seenAtCutoff[rec.ID] {
				continue
			}
			if err := enc.Encode(toWatchEvent(rec)); err != nil {
				return fmt.Errorf("encoding event: %w", err)
			}
			if rec.CreatedAt.After(cutoff) {
				cutoff = rec.CreatedAt
				seenAtCutoff = map[string]bool{}
			}
			seenAtCutoff[rec.ID] = true
		}
		return nil
	}

	if err := poll(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := poll(); err != nil {
				return err
			}
		}
	}
}
