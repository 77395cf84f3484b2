// Package token maintains the fungible token balances and allowances for
// accounts transacting on the ledger.
package token

import (
	"errors"
	"sync"

	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/genesis"
)

// Set of errors returned by token operations. Every failure is detected
// before any balance is touched.
var (
	ErrNotOwner            = errors.New("caller is not the token admin")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAllowanceExceeded   = errors.New("allowance exceeded")
)

// Ledger manages the balances and allowances for all accounts holding
// the token.
type Ledger struct {
	admin       account.AccountID
	mu          sync.RWMutex
	balances    map[account.AccountID]uint64
	allowances  map[account.AccountID]map[account.AccountID]uint64
	totalSupply uint64
}

// New constructs a token ledger seeded with the genesis balances.
func New(genesis genesis.Genesis) (*Ledger, error) {
	admin, err := account.ToAccountID(genesis.Admin)
	if err != nil {
		return nil, err
	}

	lgr := Ledger{
		admin:      admin,
		balances:   make(map[account.AccountID]uint64),
		allowances: make(map[account.AccountID]map[account.AccountID]uint64),
	}

	for addr, balance := range genesis.Balances {
		accountID, err := account.ToAccountID(addr)
		if err != nil {
			return nil, err
		}
		lgr.balances[accountID] = balance
		lgr.totalSupply += balance
	}

	return &lgr, nil
}

// Transfer moves amount from the caller to the specified account.
func (lgr *Ledger) Transfer(from account.AccountID, to account.AccountID, amount uint64) error {
	if to.IsZero() || !to.IsAccountID() {
		return account.ErrZeroAccount
	}

	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	if lgr.balances[from] < amount {
		return ErrInsufficientBalance
	}

	lgr.balances[from] -= amount
	lgr.balances[to] += amount

	return nil
}

// Approve sets the allowance the spender may transfer on behalf of the
// owner. The amount is an absolute overwrite, not additive.
func (lgr *Ledger) Approve(owner account.AccountID, spender account.AccountID, amount uint64) {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	spenders, exists := lgr.allowances[owner]
	if !exists {
		spenders = make(map[account.AccountID]uint64)
		lgr.allowances[owner] = spenders
	}
	spenders[spender] = amount
}

// TransferFrom moves amount from the specified account to the destination
// using the allowance granted to the caller. The allowance is consumed by
// the amount moved.
func (lgr *Ledger) TransferFrom(caller account.AccountID, from account.AccountID, to account.AccountID, amount uint64) error {
	if to.IsZero() || !to.IsAccountID() {
		return account.ErrZeroAccount
	}

	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	if lgr.balances[from] < amount {
		return ErrInsufficientBalance
	}
	if lgr.allowances[from][caller] < amount {
		return ErrAllowanceExceeded
	}

	lgr.balances[from] -= amount
	lgr.balances[to] += amount

	// A zero amount passes the checks without the owner ever calling
	// Approve, so the inner map may not exist yet.
	if amount > 0 {
		lgr.allowances[from][caller] -= amount
	}

	return nil
}

// Mint creates amount new tokens for the specified account. Only the admin
// account may mint.
func (lgr *Ledger) Mint(caller account.AccountID, to account.AccountID, amount uint64) error {
	if caller != lgr.admin {
		return ErrNotOwner
	}
	if to.IsZero() || !to.IsAccountID() {
		return account.ErrZeroAccount
	}

	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	lgr.balances[to] += amount
	lgr.totalSupply += amount

	return nil
}

// Burn destroys amount tokens held by the specified account. Only the admin
// account may burn.
func (lgr *Ledger) Burn(caller account.AccountID, from account.AccountID, amount uint64) error {
	if caller != lgr.admin {
		return ErrNotOwner
	}

	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	if lgr.balances[from] < amount {
		return ErrInsufficientBalance
	}

	lgr.balances[from] -= amount
	lgr.totalSupply -= amount

	return nil
}

// =============================================================================

// Admin returns the account allowed to mint and burn.
func (lgr *Ledger) Admin() account.AccountID {
	return lgr.admin
}

// BalanceOf returns the current balance for the specified account.
func (lgr *Ledger) BalanceOf(accountID account.AccountID) uint64 {
	lgr.mu.RLock()
	defer lgr.mu.RUnlock()

	return lgr.balances[accountID]
}

// Allowance returns the amount the spender may still transfer on behalf
// of the owner.
func (lgr *Ledger) Allowance(owner account.AccountID, spender account.AccountID) uint64 {
	lgr.mu.RLock()
	defer lgr.mu.RUnlock()

	return lgr.allowances[owner][spender]
}

// TotalSupply returns the total number of tokens in circulation.
func (lgr *Ledger) TotalSupply() uint64 {
	lgr.mu.RLock()
	defer lgr.mu.RUnlock()

	return lgr.totalSupply
}

// Copy makes a copy of the current balances for all accounts.
func (lgr *Ledger) Copy() map[account.AccountID]uint64 {
	lgr.mu.RLock()
	defer lgr.mu.RUnlock()

	balances := make(map[account.AccountID]uint64, len(lgr.balances))
	for accountID, balance := range lgr.balances {
		balances[accountID] = balance
	}
	return balances
}

// =============================================================================

// Snapshot represents the serializable form of the token ledger.
type Snapshot struct {
	Balances    map[account.AccountID]uint64                       `json:"balances"`
	Allowances  map[account.AccountID]map[account.AccountID]uint64 `json:"allowances"`
	TotalSupply uint64                                             `json:"total_supply"`
}

// TakeSnapshot captures the current balances and allowances.
func (lgr *Ledger) TakeSnapshot() Snapshot {
	lgr.mu.RLock()
	defer lgr.mu.RUnlock()

	snap := Snapshot{
		Balances:    make(map[account.AccountID]uint64, len(lgr.balances)),
		Allowances:  make(map[account.AccountID]map[account.AccountID]uint64, len(lgr.allowances)),
		TotalSupply: lgr.totalSupply,
	}
	for accountID, balance := range lgr.balances {
		snap.Balances[accountID] = balance
	}
	for owner, spenders := range lgr.allowances {
		cpy := make(map[account.AccountID]uint64, len(spenders))
		for spender, amount := range spenders {
			cpy[spender] = amount
		}
		snap.Allowances[owner] = cpy
	}

	return snap
}

// Restore replaces the ledger contents with the specified snapshot.
func (lgr *Ledger) Restore(snap Snapshot) {
	lgr.mu.Lock()
	defer lgr.mu.Unlock()

	lgr.balances = make(map[account.AccountID]uint64, len(snap.Balances))
	for accountID, balance := range snap.Balances {
		lgr.balances[accountID] = balance
	}
	lgr.allowances = make(map[account.AccountID]map[account.AccountID]uint64, len(snap.Allowances))
	for owner, spenders := range snap.Allowances {
		cpy := make(map[account.AccountID]uint64, len(spenders))
		for spender, amount := range spenders {
			cpy[spender] = amount
		}
		lgr.allowances[owner] = cpy
	}
	lgr.totalSupply = snap.TotalSupply
}
