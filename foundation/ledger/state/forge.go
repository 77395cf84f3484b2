package state

import (
	"time"

	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/forge"
)

// ForgeCreate forges a new block for the caller. The payment attached to
// the call must cover the creation fee from genesis.
func (s *State) ForgeCreate(caller account.AccountID, payment uint64) (forge.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	block, err := s.forge.Create(caller, payment, now)
	if err != nil {
		return forge.Block{}, err
	}

	s.evHandler("state: forgecreate: owner[%s] id[%d] color[%s]", caller, block.ID, block.Color)
	s.emit(now, "forge.created", map[string]any{"id": block.ID, "owner": block.Owner, "power": block.Power, "color": block.Color})

	return block, nil
}

// ForgeEvolve advances the specified block one generation.
func (s *State) ForgeEvolve(caller account.AccountID, id uint64) (forge.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	block, err := s.forge.Evolve(caller, id, now)
	if err != nil {
		return forge.Block{}, err
	}

	s.evHandler("state: forgeevolve: owner[%s] id[%d] generation[%d] power[%d]", caller, id, block.Generation, block.Power)
	s.emit(now, "forge.evolved", map[string]any{"id": block.ID, "owner": block.Owner, "generation": block.Generation, "power": block.Power})

	return block, nil
}

// ForgeMerge consumes the two specified blocks and forges a new block with
// their combined power.
func (s *State) ForgeMerge(caller account.AccountID, idA uint64, idB uint64) (forge.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	block, err := s.forge.Merge(caller, idA, idB, now)
	if err != nil {
		return forge.Block{}, err
	}

	s.evHandler("state: forgemerge: owner[%s] a[%d] b[%d] id[%d] power[%d]", caller, idA, idB, block.ID, block.Power)
	s.emit(now, "forge.merged", map[string]any{"id": block.ID, "owner": block.Owner, "merged_a": idA, "merged_b": idB, "power": block.Power, "generation": block.Generation})

	return block, nil
}
