package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/avlab/ot-engine/overtime"
)

// =============================================================================
// SNAPSHOT - SQLite copy of the last successfully fetched dataset
// =============================================================================

// Snapshot is the local-file flavor of the attendance source: after a
// successful remote fetch the event set is saved here, so a later
// outage can still serve real (if stale) data. The engine itself never
// touches this; it is purely an ingestion concern.
type Snapshot struct {
	db *sql.DB
}

// OpenSnapshot opens (and if needed creates) the snapshot database.
// Use ":memory:" for tests.
func OpenSnapshot(path string) (*Snapshot, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS clock_events (
		staff_name TEXT NOT NULL,
		clocked_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_clock_events_staff ON clock_events(staff_name);

	CREATE TABLE IF NOT EXISTS snapshot_meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		saved_at TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate snapshot schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

func (s *Snapshot) Close() error { return s.db.Close() }

// Save replaces the stored dataset with the given events atomically.
func (s *Snapshot) Save(ctx context.Context, events []overtime.ClockEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM clock_events`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO clock_events (staff_name, clocked_at) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.ExecContext(ctx, e.StaffName, e.At.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("insert snapshot event: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (id, saved_at) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET saved_at = excluded.saved_at`,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("stamp snapshot: %w", err)
	}

	return tx.Commit()
}

// Load returns the stored dataset. An empty snapshot is a valid empty
// collection, not an error.
func (s *Snapshot) Load(ctx context.Context) ([]overtime.ClockEvent, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT staff_name, clocked_at FROM clock_events`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	var events []overtime.ClockEvent
	for rows.Next() {
		var name, clockedAt string
		if err := rows.Scan(&name, &clockedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		at, err := time.Parse(time.RFC3339, clockedAt)
		if err != nil {
			// Rows we wrote ourselves should always parse; skip anything
			// a foreign tool may have stuffed in.
			continue
		}
		events = append(events, overtime.ClockEvent{StaffName: name, At: at})
	}
	return events, rows.Err()
}

// SavedAt reports when the snapshot was last written, if ever.
func (s *Snapshot) SavedAt(ctx context.Context) (time.Time, bool) {
	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM snapshot_meta WHERE id = 1`).Scan(&savedAt)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
