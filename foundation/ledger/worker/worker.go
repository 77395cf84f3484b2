// Package worker implements the background checkpoint workflow that flushes
// ledger snapshots to storage on an interval and on demand.
package worker

import (
	"sync"
	"time"

	"github.com/evoforge/ledger/foundation/ledger/state"
)

// Worker manages the checkpoint workflow for the ledger.
type Worker struct {
	state      *state.State
	wg         sync.WaitGroup
	ticker     *time.Ticker
	shut       chan struct{}
	checkpoint chan bool
	evHandler  state.EventHandler
}

// Run creates a worker, registers the worker with the state package, and
// starts up the checkpoint goroutine.
func Run(st *state.State, interval time.Duration, evHandler state.EventHandler) {
	w := Worker{
		state:      st,
		ticker:     time.NewTicker(interval),
		shut:       make(chan struct{}),
		checkpoint: make(chan bool, 1),
		evHandler:  evHandler,
	}

	// Register this worker with the state package.
	st.Worker = &w

	// We don't want to return until we know the G is up and running.
	hasStarted := make(chan bool)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		hasStarted <- true
		w.checkpointOperations()
	}()

	<-hasStarted
}

// =============================================================================
// These methods implement the state.Worker interface.

// Shutdown terminates the goroutine performing work.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.evHandler("worker: shutdown: stop ticker")
	w.ticker.Stop()

	w.evHandler("worker: shutdown: terminate goroutine")
	close(w.shut)
	w.wg.Wait()
}

// SignalCheckpoint requests a checkpoint outside the regular interval. If a
// signal is already pending, just return since a checkpoint will happen.
func (w *Worker) SignalCheckpoint() {
	select {
	case w.checkpoint <- true:
		w.evHandler("worker: SignalCheckpoint: checkpoint signaled")
	default:
	}
}

// =============================================================================

// checkpointOperations takes a snapshot on each tick and on demand.
func (w *Worker) checkpointOperations() {
	w.evHandler("worker: checkpointOperations: G started")
	defer w.evHandler("worker: checkpointOperations: G completed")

	for {
		select {
		case <-w.ticker.C:
			w.runCheckpoint()
		case <-w.checkpoint:
			w.runCheckpoint()
		case <-w.shut:
			return
		}
	}
}

// runCheckpoint performs a single checkpoint operation.
func (w *Worker) runCheckpoint() {
	if err := w.state.Checkpoint(); err != nil {
		w.evHandler("worker: runCheckpoint: ERROR: %s", err)
	}
}
