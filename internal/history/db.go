// Package history persists evaluation decisions to a local SQLite database
// (pure Go, via modernc.org/sqlite) so `dcg history` can show what a guard
// instance has done over time and `dcg history prune` can bound its growth.
// internal/core never imports this package: the evaluator emits a decision,
// and it is cmd/dcg's job to hand that decision to history.Record after the
// fact, matching the design note that "the core emits a structured decision
// record that can be persisted by the caller" rather than persisting it
// itself.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection holding dcg's decision history.
type DB struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// Open opens (creating if necessary) the history database at path, enabling
// WAL mode and a busy timeout so a concurrent `dcg history prune` doesn't
// collide with a hook invocation writing a new record.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging history database: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

// OpenAndMigrate opens path and applies any pending schema migrations.
func OpenAndMigrate(path string) (*DB, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.applyMigrations(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenUserHistory opens the per-user history database at
// ~/.dcg/history.db, the default location when no project- or
// system-scoped path is configured.
func OpenUserHistory() (*DB, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return OpenAndMigrate(filepath.Join(home, ".dcg", "history.db"))
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Stats summarizes a history database's contents for `dcg history` without
// a subcommand.
type Stats struct {
	Path          string
	SchemaVersion int
	RecordCount   int
	DenyCount     int
	WarnCount     int
}

// GetStats reports summary counts.
func (db *DB) GetStats() (Stats, error) {
	version, err := db.schemaVersion()
	if err != nil {
		return Stats{}, err
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	stats := Stats{Path: db.path, SchemaVersion: version}
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM decision_records`).Scan(&stats.RecordCount); err != nil {
		return Stats{}, fmt.Errorf("counting records: %w", err)
	}
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM decision_records WHERE kind = 'deny'`).Scan(&stats.DenyCount); err != nil {
		return Stats{}, fmt.Errorf("counting denials: %w", err)
	}
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM decision_records WHERE kind = 'warn'`).Scan(&stats.WarnCount); err != nil {
		return Stats{}, fmt.Errorf("counting warnings: %w", err)
	}
	return stats, nil
}
