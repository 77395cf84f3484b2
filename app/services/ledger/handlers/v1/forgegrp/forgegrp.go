// Package forgegrp maintains the group of handlers for the evolving block
// registry.
package forgegrp

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/evoforge/ledger/business/web/errs"
	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/forge"
	"github.com/evoforge/ledger/foundation/ledger/state"
	"github.com/evoforge/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of forge registry endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Create forges a new block for the caller.
func (h Handlers) Create(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req create
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	block, err := h.State.ForgeCreate(caller, req.Payment)
	if err != nil {
		return trusted(err)
	}

	h.Log.Infow("forge create", "traceid", v.TraceID, "owner", req.Caller, "id", block.ID, "color", block.Color)

	return web.Respond(ctx, w, toAppBlock(block), http.StatusCreated)
}

// Evolve advances the specified block one generation.
func (h Handlers) Evolve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req evolve
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	block, err := h.State.ForgeEvolve(caller, req.ID)
	if err != nil {
		return trusted(err)
	}

	return web.Respond(ctx, w, toAppBlock(block), http.StatusOK)
}

// Merge consumes two blocks and forges a new one with their combined power.
func (h Handlers) Merge(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req merge
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	block, err := h.State.ForgeMerge(caller, req.IDA, req.IDB)
	if err != nil {
		return trusted(err)
	}

	return web.Respond(ctx, w, toAppBlock(block), http.StatusCreated)
}

// Block returns the specified block.
func (h Handlers) Block(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseUint(web.Param(r, "id"), 10, 64)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	block, err := h.State.RetrieveBlock(id)
	if err != nil {
		return trusted(err)
	}

	return web.Respond(ctx, w, toAppBlock(block), http.StatusOK)
}

// BlocksOf returns every block ever forged for the specified owner.
func (h Handlers) BlocksOf(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	owner, err := account.ToAccountID(web.Param(r, "account"))
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	blocks := h.State.RetrieveBlocksOf(owner)

	out := make([]appBlock, len(blocks))
	for i, blk := range blocks {
		out[i] = toAppBlock(blk)
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// =============================================================================

// trusted maps the forge precondition errors to client facing responses.
func trusted(err error) error {
	switch {
	case errors.Is(err, forge.ErrNotFound):
		return errs.NewTrusted(err, http.StatusNotFound)
	case errors.Is(err, forge.ErrNotOwner):
		return errs.NewTrusted(err, http.StatusForbidden)
	default:
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
}
