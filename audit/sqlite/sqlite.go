// Package sqlite provides a durable, SQLite-backed audit sink.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	_ "modernc.org/sqlite"
)

// Sink persists audit events to a SQLite database. Events are stored as one
// row per event with the full payload as JSON, so new event kinds need no
// schema migration.
type Sink struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and initializes the
// schema. WAL mode keeps appends cheap under concurrent turns.
func New(dbPath string) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Sink{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *Sink) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS audit_events (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		user_id TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_events_kind ON audit_events(kind);
	CREATE INDEX IF NOT EXISTS idx_audit_events_user ON audit_events(user_id);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Record inserts one event row.
func (s *Sink) Record(ctx context.Context, event core.AuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}

	query := `INSERT INTO audit_events (id, kind, user_id, payload, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query,
		core.NewID(), event.Kind(), event.User(), string(payload), event.At().Unix(),
	); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// CountByKind returns the number of stored events of one kind.
func (s *Sink) CountByKind(ctx context.Context, kind string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_events WHERE kind = ?`, kind,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count audit events: %w", err)
	}
	return n, nil
}

// Ping verifies database connectivity.
func (s *Sink) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Sink) Close() error {
	return s.db.Close()
}
