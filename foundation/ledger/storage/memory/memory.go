// Package memory implements the ability to persist snapshots and events in
// memory. This implementation exists to support testing.
package memory

import (
	"sync"

	"github.com/evoforge/ledger/foundation/ledger/state"
)

// Memory represents the storage implementation for keeping the snapshot and
// the event journal in memory. This implements the state.Storage interface.
type Memory struct {
	mu       sync.RWMutex
	snapshot state.Snapshot
	saved    bool
	events   []state.Event
}

// New constructs a Memory value for use.
func New() *Memory {
	return &Memory{}
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// SaveSnapshot keeps the specified snapshot as the latest.
func (m *Memory) SaveSnapshot(snap state.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot = snap
	m.saved = true

	return nil
}

// LoadSnapshot returns the latest snapshot if one was saved.
func (m *Memory) LoadSnapshot() (state.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.saved {
		return state.Snapshot{}, state.ErrNoSnapshot
	}
	return m.snapshot, nil
}

// AppendEvent adds the specified event to the journal.
func (m *Memory) AppendEvent(evt state.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = append(m.events, evt)

	return nil
}

// Events returns up to limit of the most recent journal records in
// append order.
func (m *Memory) Events(limit int) ([]state.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := 0
	if limit > 0 && len(m.events) > limit {
		start = len(m.events) - limit
	}

	return append([]state.Event(nil), m.events[start:]...), nil
}
