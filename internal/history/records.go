package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/corvid-labs/dcg/internal/core"
)

// DecisionRecord is the structured form of an EvaluationDecision that gets
// persisted: the evaluator's output, projected into something that
// survives the process (spec design notes §9).
type DecisionRecord struct {
	ID              string
	CreatedAt       time.Time
	Command         string
	Kind            string
	PackID          string
	PatternName     string
	Severity        string
	Confidence      *float64
	AllowlistLayer  string
	AllowlistReason string
	BudgetStage     string
	Agent           string
	CWD             string
}

// FromDecision projects an evaluator decision into a DecisionRecord ready
// to insert, stamping it with a fresh UUID and the current time.
func FromDecision(command string, decision core.EvaluationDecision, agent, cwd string) DecisionRecord {
	rec := DecisionRecord{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Command:   command,
		Kind:      decision.Kind.String(),
		Agent:     agent,
		CWD:       cwd,
	}
	if decision.Match != nil {
		rec.PackID = decision.Match.PackID
		rec.PatternName = decision.Match.PatternName
		rec.Severity = string(decision.Match.Severity)
	}
	if decision.Confidence != nil {
		v := decision.Confidence.Value
		rec.Confidence = &v
	}
	if decision.AllowlistOverride != nil {
		rec.AllowlistLayer = decision.AllowlistOverride.Layer.Label()
		rec.AllowlistReason = decision.AllowlistOverride.Reason
	}
	rec.BudgetStage = decision.BudgetStage
	return rec
}

// Record inserts rec into the database.
func (db *DB) Record(rec DecisionRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(`
		INSERT INTO decision_records (
			id, created_at, command, kind, pack_id, pattern_name, severity,
			confidence, allowlist_layer, allowlist_reason, budget_stage, agent, cwd
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Format(time.RFC3339), rec.Command, rec.Kind,
		nullString(rec.PackID), nullString(rec.PatternName), nullString(rec.Severity),
		nullFloat(rec.Confidence), nullString(rec.AllowlistLayer), nullString(rec.AllowlistReason),
		nullString(rec.BudgetStage), nullString(rec.Agent), nullString(rec.CWD),
	)
	if err != nil {
		return fmt.Errorf("recording decision: %w", err)
	}
	return nil
}

// Recent returns the most recent limit records, newest first.
func (db *DB) Recent(limit int) ([]DecisionRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, created_at, command, kind, pack_id, pattern_name, severity,
			confidence, allowlist_layer, allowlist_reason, budget_stage, agent, cwd
		FROM decision_records ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// RecentByKind returns the most recent limit records whose Kind matches
// kind (e.g. "deny"), newest first.
func (db *DB) RecentByKind(kind string, limit int) ([]DecisionRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, created_at, command, kind, pack_id, pattern_name, severity,
			confidence, allowlist_layer, allowlist_reason, budget_stage, agent, cwd
		FROM decision_records WHERE kind = ? ORDER BY created_at DESC LIMIT ?`, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("querying records by kind: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Since returns every record created after cutoff, oldest first, for
// tailing the decision stream (see `dcg watch`).
func (db *DB) Since(cutoff time.Time) ([]DecisionRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, created_at, command, kind, pack_id, pattern_name, severity,
			confidence, allowlist_layer, allowlist_reason, budget_stage, agent, cwd
		FROM decision_records WHERE created_at > ? ORDER BY created_at ASC`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("querying records since %s: %w", cutoff, err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Prune deletes every record older than cutoff and reports how many rows
// were removed, backing `dcg history prune --older-than`.
func (db *DB) Prune(cutoff time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	res, err := db.conn.Exec(`DELETE FROM decision_records WHERE created_at < ?`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("pruning records: %w", err)
	}
	return res.RowsAffected()
}

func scanRecords(rows *sql.Rows) ([]DecisionRecord, error) {
	var out []DecisionRecord
	for rows.Next() {
		var rec DecisionRecord
		var createdAt string
		var packID, patternName, severity, allowlistLayer, allowlistReason, budgetStage, agent, cwd sql.NullString
		var confidence sql.NullFloat64

		if err := rows.Scan(&rec.ID, &createdAt, &rec.Command, &rec.Kind,
			&packID, &patternName, &severity, &confidence,
			&allowlistLayer, &allowlistReason, &budgetStage, &agent, &cwd); err != nil {
			return nil, fmt.Errorf("scanning decision record: %w", err)
		}

		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		rec.PackID = packID.String
		rec.PatternName = patternName.String
		rec.Severity = severity.String
		rec.AllowlistLayer = allowlistLayer.String
		rec.AllowlistReason = allowlistReason.String
		rec.BudgetStage = budgetStage.String
		rec.Agent = agent.String
		rec.CWD = cwd.String
		if confidence.Valid {
			v := confidence.Float64
			rec.Confidence = &v
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decision records: %w", err)
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
