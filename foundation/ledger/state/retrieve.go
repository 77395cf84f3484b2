package state

import (
	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/content"
	"github.com/evoforge/ledger/foundation/ledger/forge"
	"github.com/evoforge/ledger/foundation/ledger/genesis"
)

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveAdmin returns the admin account id.
func (s *State) RetrieveAdmin() account.AccountID {
	return s.admin
}

// RetrieveBalances returns a copy of the current balances for all accounts.
func (s *State) RetrieveBalances() map[account.AccountID]uint64 {
	return s.token.Copy()
}

// RetrieveBalance returns the current balance for the specified account.
func (s *State) RetrieveBalance(accountID account.AccountID) uint64 {
	return s.token.BalanceOf(accountID)
}

// RetrieveAllowance returns the amount the spender may still transfer on
// behalf of the owner.
func (s *State) RetrieveAllowance(owner account.AccountID, spender account.AccountID) uint64 {
	return s.token.Allowance(owner, spender)
}

// RetrieveTotalSupply returns the total number of tokens in circulation.
func (s *State) RetrieveTotalSupply() uint64 {
	return s.token.TotalSupply()
}

// RetrieveBlock returns a copy of the specified forge block.
func (s *State) RetrieveBlock(id uint64) (forge.Block, error) {
	return s.forge.Block(id)
}

// RetrieveBlocksOf returns copies of all forge blocks owned by the account.
func (s *State) RetrieveBlocksOf(owner account.AccountID) []forge.Block {
	return s.forge.BlocksOf(owner)
}

// RetrieveVersion returns a copy of the specified content version.
func (s *State) RetrieveVersion(id uint64) (content.Version, error) {
	return s.content.Version(id)
}

// RetrieveLatest returns a copy of the latest content version for the key.
func (s *State) RetrieveLatest(key string) (content.Version, error) {
	return s.content.Latest(key)
}

// RetrieveVersionsOf returns copies of all content versions for the key.
func (s *State) RetrieveVersionsOf(key string) []content.Version {
	return s.content.VersionsOf(key)
}

// RetrieveVersionsBy returns copies of all content versions by the creator.
func (s *State) RetrieveVersionsBy(creator account.AccountID) []content.Version {
	return s.content.VersionsBy(creator)
}

// RetrieveContentOwner returns the current content registry admin.
func (s *State) RetrieveContentOwner() account.AccountID {
	return s.content.Owner()
}

// RetrieveEvents returns up to limit of the most recent journal records.
func (s *State) RetrieveEvents(limit int) ([]Event, error) {
	return s.storage.Events(limit)
}
