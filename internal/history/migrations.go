package history

import (
	"database/sql"
	"fmt"
	"time"
)

// SchemaVersion is the schema version this build of dcg expects.
const SchemaVersion = 1

const initialSchema = `
CREATE TABLE IF NOT EXISTS decision_records (
  id TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  command TEXT NOT NULL,
  kind TEXT NOT NULL,
  pack_id TEXT,
  pattern_name TEXT,
  severity TEXT,
  confidence REAL,
  allowlist_layer TEXT,
  allowlist_reason TEXT,
  budget_stage TEXT,
  agent TEXT,
  cwd TEXT
);
CREATE INDEX IF NOT EXISTS idx_decision_records_created ON decision_records(created_at);
CREATE INDEX IF NOT EXISTS idx_decision_records_kind ON decision_records(kind);
`

func (db *DB) applyMigrations() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := ensureMigrationsTable(db.conn); err != nil {
		return err
	}
	current, err := currentVersion(db.conn)
	if err != nil {
		return err
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	if _, err := tx.Exec(initialSchema); err != nil {
		tx.Rollback()
		return fmt.Errorf("applying initial schema: %w", err)
	}
	if _, err := tx.Exec(`INSERT OR IGNORE INTO schema_migrations(version, applied_at) VALUES(?, ?)`,
		SchemaVersion, time.Now().UTC().Format(time.RFC3339)); err != nil {
		tx.Rollback()
		return fmt.Errorf("recording migration: %w", err)
	}
	return tx.Commit()
}

func (db *DB) schemaVersion() (int, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if err := ensureMigrationsTable(db.conn); err != nil {
		return 0, err
	}
	return currentVersion(db.conn)
}

func ensureMigrationsTable(conn *sql.DB) error {
	_, err := conn.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  applied_at TEXT NOT NULL
);`)
	return err
}

func currentVersion(conn *sql.DB) (int, error) {
	var v sql.NullInt64
	if err := conn.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	if !v.Valid {
		return 0, nil
	}
	return int(v.Int64), nil
}
