package admingrp

type supplyChange struct {
	Caller  string `json:"caller" validate:"required"`
	Account string `json:"account" validate:"required"`
	Amount  uint64 `json:"amount" validate:"required"`
}

type transferOwnership struct {
	Caller   string `json:"caller" validate:"required"`
	NewOwner string `json:"new_owner" validate:"required"`
}

type result struct {
	Status      string `json:"status"`
	TotalSupply uint64 `json:"total_supply,omitempty"`
}
