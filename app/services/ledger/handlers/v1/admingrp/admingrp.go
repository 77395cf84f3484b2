// Package admingrp maintains the group of private handlers for admin access.
package admingrp

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/evoforge/ledger/business/web/errs"
	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/content"
	"github.com/evoforge/ledger/foundation/ledger/state"
	"github.com/evoforge/ledger/foundation/ledger/token"
	"github.com/evoforge/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of admin endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Mint creates new tokens for the specified account.
func (h Handlers) Mint(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req supplyChange
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	to, err := account.ToAccountID(req.Account)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Log.Infow("mint", "traceid", v.TraceID, "account", req.Account, "amount", req.Amount)

	if err := h.State.Mint(caller, to, req.Amount); err != nil {
		return trusted(err)
	}

	resp := result{Status: "minted", TotalSupply: h.State.RetrieveTotalSupply()}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Burn destroys tokens held by the specified account.
func (h Handlers) Burn(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req supplyChange
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	from, err := account.ToAccountID(req.Account)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Log.Infow("burn", "traceid", v.TraceID, "account", req.Account, "amount", req.Amount)

	if err := h.State.Burn(caller, from, req.Amount); err != nil {
		return trusted(err)
	}

	resp := result{Status: "burned", TotalSupply: h.State.RetrieveTotalSupply()}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// TransferOwnership reassigns the content registry admin.
func (h Handlers) TransferOwnership(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req transferOwnership
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	newOwner, err := account.ToAccountID(req.NewOwner)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := h.State.ContentTransferOwnership(caller, newOwner); err != nil {
		return trusted(err)
	}

	resp := result{Status: "ownership transferred"}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Checkpoint signals the worker to flush a snapshot outside the regular
// interval.
func (h Handlers) Checkpoint(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.State.Worker.SignalCheckpoint()

	resp := result{Status: "checkpoint signaled"}
	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Events returns the most recent journal records.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	limit := 100
	if p := web.Param(r, "limit"); p != "" {
		l, err := strconv.Atoi(p)
		if err != nil {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		limit = l
	}

	evts, err := h.State.RetrieveEvents(limit)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, evts, http.StatusOK)
}

// =============================================================================

// trusted maps the admin precondition errors to client facing responses.
func trusted(err error) error {
	switch {
	case errors.Is(err, token.ErrNotOwner), errors.Is(err, content.ErrNotOwner):
		return errs.NewTrusted(err, http.StatusForbidden)
	default:
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
}
