// Package store persists the audit log of generator requests in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Store owns the SQLite connection used for the LLM request audit log.
type Store struct {
	db  *sql.DB
	seq *sequence
}

// schema holds one entry per schema version. Entry i moves a database from
// user_version i to i+1; applied entries must never change.
var schema = [][]string{
	{
		`CREATE TABLE llm_request_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence      INTEGER NOT NULL UNIQUE,
			timestamp_ms  INTEGER NOT NULL,
			provider      TEXT    NOT NULL,
			model         TEXT    NOT NULL,
			purpose       TEXT    NOT NULL,
			input_tokens  INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms    INTEGER NOT NULL DEFAULT 0,
			success       INTEGER NOT NULL,
			error_message TEXT    NOT NULL DEFAULT '',
			request_body  TEXT    NOT NULL DEFAULT '',
			response_body TEXT    NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX idx_llm_events_purpose ON llm_request_events (purpose)`,
		`CREATE INDEX idx_llm_events_timestamp ON llm_request_events (timestamp_ms)`,
		`CREATE TABLE global_sequence (
			id       INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL
		)`,
		`INSERT INTO global_sequence (id, next_val) VALUES (1, 1)`,
	},
}

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Open connects to the database at dsn and brings its schema up to date.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := setup(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, seq: &sequence{db: db}}, nil
}

func setup(ctx context.Context, db *sql.DB) error {
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", strings.TrimPrefix(p, "PRAGMA "), err)
		}
	}

	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > len(schema) {
		return fmt.Errorf("database schema version %d is newer than this build supports (%d)", version, len(schema))
	}

	for v := version; v < len(schema); v++ {
		if err := migrate(ctx, db, v); err != nil {
			return fmt.Errorf("migrate to version %d: %w", v+1, err)
		}
	}
	return nil
}

func migrate(ctx context.Context, db *sql.DB, from int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schema[from] {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", from+1)); err != nil {
		return err
	}
	return tx.Commit()
}

// DB exposes the connection for ad-hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// EventRepo returns the audit log repository backed by this store.
func (s *Store) EventRepo() *SQLEventRepo {
	return &SQLEventRepo{db: s.db, seq: s.seq}
}

// DefaultDBPath returns $LEVELUP_DB, else levelup/levelup.db under
// $XDG_DATA_HOME or ~/.local/share. The parent directory is created.
func DefaultDBPath() (string, error) {
	p := os.Getenv("LEVELUP_DB")
	if p == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		p = filepath.Join(dataHome, "levelup", "levelup.db")
	}
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
