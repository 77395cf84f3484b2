// Package contentgrp maintains the group of handlers for the versioned
// content registry.
package contentgrp

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/evoforge/ledger/business/web/errs"
	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/content"
	"github.com/evoforge/ledger/foundation/ledger/state"
	"github.com/evoforge/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of content registry endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Create registers version 1 of a new logical key.
func (h Handlers) Create(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var req createVersion
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	version, err := h.State.ContentCreate(caller, req.Key, req.Label, req.URI, req.Tag)
	if err != nil {
		return trusted(err)
	}

	h.Log.Infow("content create", "traceid", v.TraceID, "creator", req.Caller, "key", req.Key, "id", version.ID)

	return web.Respond(ctx, w, toAppVersion(version), http.StatusCreated)
}

// Publish registers the next version of an existing key.
func (h Handlers) Publish(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req createVersion
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	version, err := h.State.ContentPublish(caller, req.Key, req.Label, req.URI, req.Tag)
	if err != nil {
		return trusted(err)
	}

	return web.Respond(ctx, w, toAppVersion(version), http.StatusCreated)
}

// SetActive flips the liveness flag of the specified version.
func (h Handlers) SetActive(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req setActive
	if err := web.Decode(r, &req); err != nil {
		return err
	}

	caller, err := account.ToAccountID(req.Caller)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	version, err := h.State.ContentSetActive(caller, req.ID, req.Active)
	if err != nil {
		return trusted(err)
	}

	return web.Respond(ctx, w, toAppVersion(version), http.StatusOK)
}

// Version returns the specified version.
func (h Handlers) Version(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseUint(web.Param(r, "id"), 10, 64)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	version, err := h.State.RetrieveVersion(id)
	if err != nil {
		return trusted(err)
	}

	return web.Respond(ctx, w, toAppVersion(version), http.StatusOK)
}

// Latest returns the latest version registered under the key.
func (h Handlers) Latest(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	version, err := h.State.RetrieveLatest(web.Param(r, "key"))
	if err != nil {
		return trusted(err)
	}

	return web.Respond(ctx, w, toAppVersion(version), http.StatusOK)
}

// VersionsOf returns all versions registered under the key in creation order.
func (h Handlers) VersionsOf(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	versions := h.State.RetrieveVersionsOf(web.Param(r, "key"))

	out := make([]appVersion, len(versions))
	for i, version := range versions {
		out[i] = toAppVersion(version)
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// VersionsBy returns all versions registered by the creator in creation order.
func (h Handlers) VersionsBy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	creator, err := account.ToAccountID(web.Param(r, "account"))
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	versions := h.State.RetrieveVersionsBy(creator)

	out := make([]appVersion, len(versions))
	for i, version := range versions {
		out[i] = toAppVersion(version)
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// =============================================================================

// trusted maps the registry precondition errors to client facing responses.
func trusted(err error) error {
	switch {
	case errors.Is(err, content.ErrNotFound), errors.Is(err, content.ErrKeyNotFound):
		return errs.NewTrusted(err, http.StatusNotFound)
	case errors.Is(err, content.ErrNotCreator), errors.Is(err, content.ErrNotOwner):
		return errs.NewTrusted(err, http.StatusForbidden)
	default:
		return errs.NewTrusted(err, http.StatusBadRequest)
	}
}
