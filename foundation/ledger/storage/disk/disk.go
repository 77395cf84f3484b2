// Package disk implements the ability to persist snapshots and events on
// disk using JSON files. The snapshot is written through a temp file and
// rename so a crash never leaves a partial snapshot behind.
package disk

import (
	"bufio"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/evoforge/ledger/foundation/ledger/state"
)

const (
	snapshotFile = "snapshot.json"
	journalFile  = "events.json"
)

// Disk represents the storage implementation for reading and storing the
// ledger in a directory on disk. This implements the state.Storage interface.
type Disk struct {
	dbPath  string
	mu      sync.Mutex
	journal *os.File
}

// New constructs a Disk value for use, creating the directory and opening
// the event journal for appending.
func New(dbPath string) (*Disk, error) {
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, err
	}

	journal, err := os.OpenFile(filepath.Join(dbPath, journalFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	return &Disk{dbPath: dbPath, journal: journal}, nil
}

// Close closes the open journal file.
func (d *Disk) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.journal.Close()
}

// SaveSnapshot writes the specified snapshot to disk in a more human
// readable format, replacing any previous snapshot atomically.
func (d *Disk) SaveSnapshot(snap state.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	tmp := filepath.Join(d.dbPath, snapshotFile+".tmp")
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmp, filepath.Join(d.dbPath, snapshotFile))
}

// LoadSnapshot reads the latest snapshot from disk if one exists.
func (d *Disk) LoadSnapshot() (state.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(d.dbPath, snapshotFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return state.Snapshot{}, state.ErrNoSnapshot
		}
		return state.Snapshot{}, err
	}

	var snap state.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return state.Snapshot{}, err
	}

	return snap, nil
}

// AppendEvent writes the specified event to the journal as a single JSON
// line.
func (d *Disk) AppendEvent(evt state.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.journal.Write(append(data, '\n')); err != nil {
		return err
	}

	return nil
}

// Events walks the journal and returns up to limit of the most recent
// records in append order.
func (d *Disk) Events(limit int) ([]state.Event, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, err := os.Open(filepath.Join(d.dbPath, journalFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var events []state.Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var evt state.Event
		if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}

	return events, nil
}
