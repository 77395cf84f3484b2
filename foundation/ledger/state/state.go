// Package state is the core API for the ledger and implements all the
// business rules and processing for the three registries it hosts.
package state

import (
	"errors"
	"sync"

	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/content"
	"github.com/evoforge/ledger/foundation/ledger/forge"
	"github.com/evoforge/ledger/foundation/ledger/genesis"
	"github.com/evoforge/ledger/foundation/ledger/token"
)

// ErrNoSnapshot is returned by storage implementations when no snapshot
// has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot")

// =============================================================================

// EventHandler defines a function that is called when events occur in the
// processing of ledger operations.
type EventHandler func(v string, args ...any)

// EventSink defines a function that receives the structured record of every
// committed operation.
type EventSink func(evt Event)

// Worker interface represents the behavior required to be implemented by
// any package providing background checkpoint support.
type Worker interface {
	Shutdown()
	SignalCheckpoint()
}

// Storage interface represents the behavior required to be implemented by
// any package providing support for persisting the ledger.
type Storage interface {
	SaveSnapshot(snap Snapshot) error
	LoadSnapshot() (Snapshot, error)
	AppendEvent(evt Event) error
	Events(limit int) ([]Event, error)
	Close() error
}

// =============================================================================

// Config represents the configuration required to start the ledger.
type Config struct {
	Genesis   genesis.Genesis
	Storage   Storage
	EvHandler EventHandler
	Sink      EventSink
}

// State manages the ledger registries behind a single serialized facade.
// Every mutating operation checks its preconditions and applies its changes
// under one mutex, so no operation ever observes a partial update.
type State struct {
	mu        sync.Mutex
	genesis   genesis.Genesis
	admin     account.AccountID
	evHandler EventHandler
	sink      EventSink
	storage   Storage
	eventSeq  uint64

	token   *token.Ledger
	forge   *forge.Registry
	content *content.Registry

	Worker Worker
}

// New constructs a new state for ledger management. If the storage holds a
// snapshot the registries are restored from it, otherwise they start from
// the genesis information.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	admin, err := account.ToAccountID(cfg.Genesis.Admin)
	if err != nil {
		return nil, err
	}

	tkn, err := token.New(cfg.Genesis)
	if err != nil {
		return nil, err
	}

	state := State{
		genesis:   cfg.Genesis,
		admin:     admin,
		evHandler: ev,
		sink:      cfg.Sink,
		storage:   cfg.Storage,
		token:     tkn,
		forge:     forge.New(cfg.Genesis),
		content:   content.New(admin),
	}

	// Restore the registries from the latest snapshot if one exists.
	snap, err := cfg.Storage.LoadSnapshot()
	switch {
	case errors.Is(err, ErrNoSnapshot):
		ev("state: new: no snapshot found, starting from genesis")

	case err != nil:
		return nil, err

	default:
		ev("state: new: restoring snapshot: seq[%d] taken[%v]", snap.EventSeq, snap.Taken)
		state.restore(snap)
	}

	// Events are journaled per operation while snapshots flush on an
	// interval, so after a hard stop the journal can run ahead of the
	// snapshot. Resume the sequence from the journal's high mark so a
	// restart never reissues sequence numbers.
	evts, err := cfg.Storage.Events(1)
	if err != nil {
		return nil, err
	}
	if len(evts) > 0 && evts[len(evts)-1].Seq > state.eventSeq {
		ev("state: new: journal ahead of snapshot: resuming at seq[%d]", evts[len(evts)-1].Seq)
		state.eventSeq = evts[len(evts)-1].Seq
	}

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start the checkpoint loop.

	return &state, nil
}

// Shutdown cleanly brings the ledger down, taking a final checkpoint.
func (s *State) Shutdown() error {

	// Make sure the storage is properly closed.
	defer func() {
		s.storage.Close()
	}()

	// Stop the background checkpoint activity.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	// Take a final checkpoint so a restart picks up where we left off.
	return s.Checkpoint()
}
