// Package forge maintains the registry of evolving blocks. Blocks gain power
// as they age and can be merged into stronger blocks.
package forge

import (
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/genesis"
)

// Set of errors returned by forge operations. Every failure is detected
// before any block is touched.
var (
	ErrNotOwner            = errors.New("caller does not own the block")
	ErrNotFound            = errors.New("block not found")
	ErrInactive            = errors.New("block is inactive")
	ErrEvolutionNotReady   = errors.New("block is not ready to evolve")
	ErrInsufficientPayment = errors.New("payment below the creation fee")
	ErrSelfMerge           = errors.New("block cannot merge with itself")
)

// palette is the fixed set of display colors a new block can be born with.
// The draw is a keccak hash of the creation inputs and is predictable by
// anyone who can observe pending operations.
var palette = [6]string{"aurora", "cobalt", "ember", "jade", "onyx", "solar"}

// Block represents an individual evolving block owned by an account.
type Block struct {
	ID         uint64            `json:"id"`
	Owner      account.AccountID `json:"owner"`
	Power      uint64            `json:"power"`
	Generation uint64            `json:"generation"`
	Color      string            `json:"color"`
	BirthTime  time.Time         `json:"birth_time"`
	Active     bool              `json:"active"`
}

// Registry manages the set of evolving blocks and the per-owner index.
type Registry struct {
	creationFee   uint64
	basePower     uint64
	evolutionTime time.Duration

	mu         sync.RWMutex
	blocks     map[uint64]Block
	ownerIndex map[account.AccountID][]uint64
	nextID     uint64
}

// New constructs a forge registry with the tuning values from genesis.
func New(genesis genesis.Genesis) *Registry {
	return &Registry{
		creationFee:   genesis.CreationFee,
		basePower:     genesis.BasePower,
		evolutionTime: genesis.EvolutionTime(),
		blocks:        make(map[uint64]Block),
		ownerIndex:    make(map[account.AccountID][]uint64),
	}
}

// Create forges a new block for the caller. The payment attached to the
// call must cover the creation fee.
func (r *Registry) Create(owner account.AccountID, payment uint64, now time.Time) (Block, error) {
	if payment < r.creationFee {
		return Block{}, ErrInsufficientPayment
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	block := Block{
		ID:         r.nextID,
		Owner:      owner,
		Power:      r.basePower,
		Generation: 1,
		Color:      drawColor(now, r.nextID, owner),
		BirthTime:  now,
		Active:     true,
	}

	r.blocks[block.ID] = block
	r.ownerIndex[owner] = append(r.ownerIndex[owner], block.ID)

	return block, nil
}

// Evolve advances the specified block one generation once the evolution
// interval has elapsed. The interval restarts from the time of evolution.
func (r *Registry) Evolve(caller account.AccountID, id uint64, now time.Time) (Block, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	block, exists := r.blocks[id]
	if !exists {
		return Block{}, ErrNotFound
	}
	if block.Owner != caller {
		return Block{}, ErrNotOwner
	}
	if !block.Active {
		return Block{}, ErrInactive
	}
	if now.Before(block.BirthTime.Add(r.evolutionTime)) {
		return Block{}, ErrEvolutionNotReady
	}

	block.Generation++
	block.Power += r.basePower * block.Generation / 2
	block.BirthTime = now

	r.blocks[id] = block

	return block, nil
}

// Merge consumes two blocks owned by the caller and forges a new block
// carrying their combined power. The inputs are permanently deactivated.
func (r *Registry) Merge(caller account.AccountID, idA uint64, idB uint64, now time.Time) (Block, error) {
	if idA == idB {
		return Block{}, ErrSelfMerge
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	blockA, exists := r.blocks[idA]
	if !exists {
		return Block{}, ErrNotFound
	}
	blockB, exists := r.blocks[idB]
	if !exists {
		return Block{}, ErrNotFound
	}
	if blockA.Owner != caller || blockB.Owner != caller {
		return Block{}, ErrNotOwner
	}
	if !blockA.Active || !blockB.Active {
		return Block{}, ErrInactive
	}

	blockA.Active = false
	blockB.Active = false
	r.blocks[idA] = blockA
	r.blocks[idB] = blockB

	generation := blockA.Generation
	if blockB.Generation > generation {
		generation = blockB.Generation
	}

	r.nextID++
	block := Block{
		ID:         r.nextID,
		Owner:      caller,
		Power:      blockA.Power + blockB.Power,
		Generation: generation + 1,
		Color:      blockA.Color,
		BirthTime:  now,
		Active:     true,
	}

	r.blocks[block.ID] = block
	r.ownerIndex[caller] = append(r.ownerIndex[caller], block.ID)

	return block, nil
}

// =============================================================================

// Block returns a copy of the specified block.
func (r *Registry) Block(id uint64) (Block, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	block, exists := r.blocks[id]
	if !exists {
		return Block{}, ErrNotFound
	}
	return block, nil
}

// BlocksOf returns copies of all blocks ever forged for the owner, in
// creation order. Consumed blocks remain in the list as inactive.
func (r *Registry) BlocksOf(owner account.AccountID) []Block {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.ownerIndex[owner]
	blocks := make([]Block, 0, len(ids))
	for _, id := range ids {
		blocks = append(blocks, r.blocks[id])
	}
	return blocks
}

// CreationFee returns the payment required to forge a block.
func (r *Registry) CreationFee() uint64 {
	return r.creationFee
}

// =============================================================================

// Snapshot represents the serializable form of the forge registry.
type Snapshot struct {
	Blocks     map[uint64]Block               `json:"blocks"`
	OwnerIndex map[account.AccountID][]uint64 `json:"owner_index"`
	NextID     uint64                         `json:"next_id"`
}

// TakeSnapshot captures the current blocks and indices.
func (r *Registry) TakeSnapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		Blocks:     make(map[uint64]Block, len(r.blocks)),
		OwnerIndex: make(map[account.AccountID][]uint64, len(r.ownerIndex)),
		NextID:     r.nextID,
	}
	for id, block := range r.blocks {
		snap.Blocks[id] = block
	}
	for owner, ids := range r.ownerIndex {
		snap.OwnerIndex[owner] = append([]uint64(nil), ids...)
	}

	return snap
}

// Restore replaces the registry contents with the specified snapshot.
func (r *Registry) Restore(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blocks = make(map[uint64]Block, len(snap.Blocks))
	for id, block := range snap.Blocks {
		r.blocks[id] = block
	}
	r.ownerIndex = make(map[account.AccountID][]uint64, len(snap.OwnerIndex))
	for owner, ids := range snap.OwnerIndex {
		r.ownerIndex[owner] = append([]uint64(nil), ids...)
	}
	r.nextID = snap.NextID
}

// =============================================================================

// drawColor derives the display color for a new block from a hash of the
// creation time, the block id and the owner.
func drawColor(now time.Time, id uint64, owner account.AccountID) string {
	data := make([]byte, 16, 16+len(owner))
	binary.BigEndian.PutUint64(data[:8], uint64(now.Unix()))
	binary.BigEndian.PutUint64(data[8:16], id)
	data = append(data, []byte(owner)...)

	hash := crypto.Keccak256(data)
	return palette[int(hash[len(hash)-1])%len(palette)]
}
