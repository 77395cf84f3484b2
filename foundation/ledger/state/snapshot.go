package state

import (
	"time"

	"github.com/evoforge/ledger/foundation/ledger/content"
	"github.com/evoforge/ledger/foundation/ledger/forge"
	"github.com/evoforge/ledger/foundation/ledger/token"
)

// Snapshot represents the serializable form of the complete ledger at a
// single point in time.
type Snapshot struct {
	ChainID  uint16           `json:"chain_id"`
	Taken    time.Time        `json:"taken"`
	EventSeq uint64           `json:"event_seq"`
	Token    token.Snapshot   `json:"token"`
	Forge    forge.Snapshot   `json:"forge"`
	Content  content.Snapshot `json:"content"`
}

// Checkpoint captures a consistent snapshot of all three registries and
// saves it to storage.
func (s *State) Checkpoint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ChainID:  s.genesis.ChainID,
		Taken:    time.Now().UTC(),
		EventSeq: s.eventSeq,
		Token:    s.token.TakeSnapshot(),
		Forge:    s.forge.TakeSnapshot(),
		Content:  s.content.TakeSnapshot(),
	}

	if err := s.storage.SaveSnapshot(snap); err != nil {
		return err
	}

	s.evHandler("state: checkpoint: seq[%d]", snap.EventSeq)

	return nil
}

// restore replaces the registry contents with the specified snapshot. Only
// called during construction, before any operation can run.
func (s *State) restore(snap Snapshot) {
	s.token.Restore(snap.Token)
	s.forge.Restore(snap.Forge)
	s.content.Restore(snap.Content)
	s.eventSeq = snap.EventSeq
}
