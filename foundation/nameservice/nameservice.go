// Package nameservice provides friendly name lookup for the account ids
// declared in the genesis file.
package nameservice

import (
	"fmt"

	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/genesis"
)

// NameService maintains a map of accounts for name lookup.
type NameService struct {
	accounts map[account.AccountID]string
}

// New constructs a name service from the genesis names section.
func New(genesis genesis.Genesis) (*NameService, error) {
	ns := NameService{
		accounts: make(map[account.AccountID]string),
	}

	for name, addr := range genesis.Names {
		accountID, err := account.ToAccountID(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid account for name %q: %w", name, err)
		}
		ns.accounts[accountID] = name
	}

	return &ns, nil
}

// Lookup returns the name for the specified account.
func (ns *NameService) Lookup(accountID account.AccountID) string {
	name, exists := ns.accounts[accountID]
	if !exists {
		return string(accountID)
	}
	return name
}

// Copy returns a copy of the map of names and accounts.
func (ns *NameService) Copy() map[account.AccountID]string {
	cpy := make(map[account.AccountID]string, len(ns.accounts))
	for accountID, name := range ns.accounts {
		cpy[accountID] = name
	}
	return cpy
}
