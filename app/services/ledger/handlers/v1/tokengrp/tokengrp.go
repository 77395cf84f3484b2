// Package tokengrp maintains the group of handlers for token ledger access.
package tokengrp

import (
	"context"
	"errors"
	"net/http"

	"github.com/evoforge/ledger/business/web/errs"
	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/state"
	"github.com/evoforge/ledger/foundation/ledger/token"
	"github.com/evoforge/ledger/foundation/nameservice"
	"github.com/evoforge/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of token ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	NS    *nameservice.NameService
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	gen := h.State.RetrieveGenesis()
	return web.Respond(ctx, w, gen, http.StatusOK)
}

// Transfer moves tokens from the caller to the specified account.
func (h Handlers) Transfer(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req transfer
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	from, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
	to, err := account.ToAccountID(req.To)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Log.Infow("token transfer", "traceid", v.TraceID, "from", req.Caller, "to", req.To, "amount", req.Amount)

	if err := h.State.Transfer(from, to, req.Amount); err != nil {
		return trusted(err)
	}

	resp := result{Status: "transfer applied"}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Approve sets the allowance the spender may transfer on behalf of
// the caller.
func (h Handlers) Approve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req approve
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	owner, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
	spender, err := account.ToAccountID(req.Spender)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.State.Approve(owner, spender, req.Amount)

	resp := result{Status: "allowance set"}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// TransferFrom moves tokens between two accounts using the allowance
// granted to the caller.
func (h Handlers) TransferFrom(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req transferFrom
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
	from, err := account.ToAccountID(req.From)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
	to, err := account.ToAccountID(req.To)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.State.TransferFrom(caller, from, to, req.Amount); err != nil {
		return trusted(err)
	}

	resp := result{Status: "transfer applied"}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Balances returns the current balances for all accounts or the one
// specified on the route.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	acct := web.Param(r, "account")

	var all map[account.AccountID]uint64
	switch acct {
	case "":
		all = h.State.RetrieveBalances()

	default:
		accountID, err := account.ToAccountID(acct)
		if err != nil {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		all = map[account.AccountID]uint64{accountID: h.State.RetrieveBalance(accountID)}
	}

	resp := balances{
		TotalSupply: h.State.RetrieveTotalSupply(),
		Balances:    make([]balance, 0, len(all)),
	}
	for accountID, amount := range all {
		resp.Balances = append(resp.Balances, balance{
			Account: string(accountID),
			Name:    h.NS.Lookup(accountID),
			Balance: amount,
		})
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Allowance returns the amount the spender may still transfer on behalf
// of the owner.
func (h Handlers) Allowance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	owner, err := account.ToAccountID(web.Param(r, "owner"))
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
	spender, err := account.ToAccountID(web.Param(r, "spender"))
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	resp := allowance{
		Owner:     string(owner),
		Spender:   string(spender),
		Allowance: h.State.RetrieveAllowance(owner, spender),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// =============================================================================

// trusted maps the ledger precondition errors to client facing responses.
func trusted(err error) error {
	switch {
	case errors.Is(err, token.ErrNotOwner):
		return errs.NewTrusted(err, http.StatusForbidden)
	default:
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
}
