// Package sqlite implements the ability to persist snapshots and events in
// a sqlite database file. This implements the state.Storage interface.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/evoforge/ledger/foundation/ledger/state"

	_ "modernc.org/sqlite"
)

// Sqlite represents the storage implementation for reading and storing the
// ledger in a sqlite database.
type Sqlite struct {
	db *sql.DB
}

// New constructs a Sqlite value for use, opening the database file and
// making sure the schema exists.
func New(dbFile string) (*Sqlite, error) {
	connStr := fmt.Sprintf("file:%s", filepath.Clean(dbFile))

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// The state facade serializes all writes, so a single connection is
	// enough and avoids sqlite's writer lock contention.
	db.SetMaxOpenConns(1)

	s := Sqlite{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return &s, nil
}

// Close closes the database handle.
func (s *Sqlite) Close() error {
	return s.db.Close()
}

// SaveSnapshot replaces the stored snapshot with the specified one.
func (s *Sqlite) SaveSnapshot(snap state.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	const q = `INSERT INTO snapshot (id, data) VALUES (1, ?)
	           ON CONFLICT(id) DO UPDATE SET data = excluded.data`

	if _, err := s.db.Exec(q, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot reads the stored snapshot if one exists.
func (s *Sqlite) LoadSnapshot() (state.Snapshot, error) {
	const q = `SELECT data FROM snapshot WHERE id = 1`

	var data []byte
	if err := s.db.QueryRow(q).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return state.Snapshot{}, state.ErrNoSnapshot
		}
		return state.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var snap state.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return state.Snapshot{}, err
	}

	return snap, nil
}

// AppendEvent adds the specified event to the journal table.
func (s *Sqlite) AppendEvent(evt state.Event) error {
	fields, err := json.Marshal(evt.Fields)
	if err != nil {
		return err
	}

	const q = `INSERT OR REPLACE INTO events (seq, time, name, fields) VALUES (?, ?, ?, ?)`

	if _, err := s.db.Exec(q, evt.Seq, evt.Time, evt.Name, fields); err != nil {
		return fmt.Errorf("append event: %w", err)
	}

	return nil
}

// Events returns up to limit of the most recent journal records in
// append order.
func (s *Sqlite) Events(limit int) ([]state.Event, error) {
	const q = `SELECT seq, time, name, fields FROM events
	           ORDER BY seq DESC LIMIT ?`

	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []state.Event
	for rows.Next() {
		var evt state.Event
		var fields []byte
		if err := rows.Scan(&evt.Seq, &evt.Time, &evt.Name, &fields); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fields, &evt.Fields); err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query walks newest first. Flip to append order for callers.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	return events, nil
}

// ensureSchema creates the snapshot and journal tables on first use.
func (s *Sqlite) ensureSchema() error {
	const q = `
	CREATE TABLE IF NOT EXISTS snapshot (
		id   INTEGER PRIMARY KEY CHECK (id = 1),
		data BLOB NOT NULL
	);
	CREATE TABLE IF NOT EXISTS events (
		seq    INTEGER PRIMARY KEY,
		time   TIMESTAMP NOT NULL,
		name   TEXT NOT NULL,
		fields BLOB NOT NULL
	);`

	if _, err := s.db.Exec(q); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	return nil
}
