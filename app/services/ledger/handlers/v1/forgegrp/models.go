package forgegrp

import (
	"time"

	"github.com/evoforge/ledger/foundation/ledger/forge"
)

type create struct {
	Caller  string `json:"caller" validate:"required"`
	Payment uint64 `json:"payment"`
}

type evolve struct {
	Caller string `json:"caller" validate:"required"`
	ID     uint64 `json:"id" validate:"required"`
}

type merge struct {
	Caller string `json:"caller" validate:"required"`
	IDA    uint64 `json:"id_a" validate:"required"`
	IDB    uint64 `json:"id_b" validate:"required"`
}

type appBlock struct {
	ID         uint64    `json:"id"`
	Owner      string    `json:"owner"`
	Power      uint64    `json:"power"`
	Generation uint64    `json:"generation"`
	Color      string    `json:"color"`
	BirthTime  time.Time `json:"birth_time"`
	Active     bool      `json:"active"`
}

func toAppBlock(block forge.Block) appBlock {
	return appBlock{
		ID:         block.ID,
		Owner:      string(block.Owner),
		Power:      block.Power,
		Generation: block.Generation,
		Color:      block.Color,
		BirthTime:  block.BirthTime,
		Active:     block.Active,
	}
}
