// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the genesis file.
type Genesis struct {
	Date             time.Time         `json:"date"`
	ChainID          uint16            `json:"chain_id"`          // Unique id for this running instance.
	Admin            string            `json:"admin"`             // Account allowed to mint, burn and reassign registry ownership.
	TokenName        string            `json:"token_name"`        // Display name of the fungible token.
	TokenSymbol      string            `json:"token_symbol"`      // Ticker symbol of the fungible token.
	CreationFee      uint64            `json:"creation_fee"`      // Payment required to forge a new block.
	BasePower        uint64            `json:"base_power"`        // Power assigned to a freshly forged block.
	EvolutionSeconds uint64            `json:"evolution_seconds"` // Seconds a block must age before it can evolve.
	Balances         map[string]uint64 `json:"balances"`          // Initial token balances.
	Names            map[string]string `json:"names"`             // Friendly name to account id.
}

// EvolutionTime returns the evolution interval as a duration.
func (g Genesis) EvolutionTime() time.Duration {
	return time.Duration(g.EvolutionSeconds) * time.Second
}

// =============================================================================

// Load opens and consumes the genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	err = json.Unmarshal(content, &genesis)
	if err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
