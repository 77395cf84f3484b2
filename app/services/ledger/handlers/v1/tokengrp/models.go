package tokengrp

type transfer struct {
	Caller string `json:"caller" validate:"required"`
	To     string `json:"to" validate:"required"`
	Amount uint64 `json:"amount" validate:"required"`
}

type approve struct {
	Caller  string `json:"caller" validate:"required"`
	Spender string `json:"spender" validate:"required"`
	Amount  uint64 `json:"amount"`
}

type transferFrom struct {
	Caller string `json:"caller" validate:"required"`
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
	Amount uint64 `json:"amount" validate:"required"`
}

type result struct {
	Status string `json:"status"`
}

type balance struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Balance uint64 `json:"balance"`
}

type balances struct {
	TotalSupply uint64    `json:"total_supply"`
	Balances    []balance `json:"balances"`
}

type allowance struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance uint64 `json:"allowance"`
}
