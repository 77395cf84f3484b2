package state

import (
	"time"

	"github.com/evoforge/ledger/foundation/ledger/account"
)

// Transfer moves tokens from the caller to the specified account.
func (s *State) Transfer(from account.AccountID, to account.AccountID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.token.Transfer(from, to, amount); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.evHandler("state: transfer: from[%s] to[%s] amount[%d]", from, to, amount)
	s.emit(now, "token.transfer", map[string]any{"from": from, "to": to, "amount": amount})

	return nil
}

// Approve sets the allowance the spender may transfer on behalf of the
// caller. The amount overwrites any previous allowance.
func (s *State) Approve(owner account.AccountID, spender account.AccountID, amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token.Approve(owner, spender, amount)

	now := time.Now().UTC()
	s.evHandler("state: approve: owner[%s] spender[%s] amount[%d]", owner, spender, amount)
	s.emit(now, "token.approval", map[string]any{"owner": owner, "spender": spender, "amount": amount})
}

// TransferFrom moves tokens between two accounts using the allowance
// granted to the caller.
func (s *State) TransferFrom(caller account.AccountID, from account.AccountID, to account.AccountID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.token.TransferFrom(caller, from, to, amount); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.evHandler("state: transferfrom: caller[%s] from[%s] to[%s] amount[%d]", caller, from, to, amount)
	s.emit(now, "token.transfer", map[string]any{"from": from, "to": to, "amount": amount, "spender": caller})

	return nil
}

// Mint creates new tokens for the specified account. The transfer event
// carries the zero account as its source.
func (s *State) Mint(caller account.AccountID, to account.AccountID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.token.Mint(caller, to, amount); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.evHandler("state: mint: to[%s] amount[%d]", to, amount)
	s.emit(now, "token.transfer", map[string]any{"from": account.ZeroAccount, "to": to, "amount": amount})

	return nil
}

// Burn destroys tokens held by the specified account. The transfer event
// carries the zero account as its destination.
func (s *State) Burn(caller account.AccountID, from account.AccountID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.token.Burn(caller, from, amount); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.evHandler("state: burn: from[%s] amount[%d]", from, amount)
	s.emit(now, "token.transfer", map[string]any{"from": from, "to": account.ZeroAccount, "amount": amount})

	return nil
}
