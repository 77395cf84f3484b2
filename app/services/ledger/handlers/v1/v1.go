// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/evoforge/ledger/app/services/ledger/handlers/v1/admingrp"
	"github.com/evoforge/ledger/app/services/ledger/handlers/v1/contentgrp"
	"github.com/evoforge/ledger/app/services/ledger/handlers/v1/evtgrp"
	"github.com/evoforge/ledger/app/services/ledger/handlers/v1/forgegrp"
	"github.com/evoforge/ledger/app/services/ledger/handlers/v1/tokengrp"
	"github.com/evoforge/ledger/foundation/events"
	"github.com/evoforge/ledger/foundation/ledger/state"
	"github.com/evoforge/ledger/foundation/nameservice"
	"github.com/evoforge/ledger/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	NS    *nameservice.NameService
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	tkn := tokengrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		NS:    cfg.NS,
	}

	app.Handle(http.MethodGet, version, "/genesis/list", tkn.Genesis)
	app.Handle(http.MethodGet, version, "/balances/list", tkn.Balances)
	app.Handle(http.MethodGet, version, "/balances/list/:account", tkn.Balances)
	app.Handle(http.MethodGet, version, "/token/allowance/:owner/:spender", tkn.Allowance)
	app.Handle(http.MethodPost, version, "/token/transfer", tkn.Transfer)
	app.Handle(http.MethodPost, version, "/token/approve", tkn.Approve)
	app.Handle(http.MethodPost, version, "/token/transferfrom", tkn.TransferFrom)

	frg := forgegrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
	}

	app.Handle(http.MethodGet, version, "/forge/block/:id", frg.Block)
	app.Handle(http.MethodGet, version, "/forge/list/:account", frg.BlocksOf)
	app.Handle(http.MethodPost, version, "/forge/create", frg.Create)
	app.Handle(http.MethodPost, version, "/forge/evolve", frg.Evolve)
	app.Handle(http.MethodPost, version, "/forge/merge", frg.Merge)

	cnt := contentgrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
	}

	app.Handle(http.MethodGet, version, "/content/version/:id", cnt.Version)
	app.Handle(http.MethodGet, version, "/content/latest/:key", cnt.Latest)
	app.Handle(http.MethodGet, version, "/content/list/:key", cnt.VersionsOf)
	app.Handle(http.MethodGet, version, "/content/creator/:account", cnt.VersionsBy)
	app.Handle(http.MethodPost, version, "/content/create", cnt.Create)
	app.Handle(http.MethodPost, version, "/content/publish", cnt.Publish)
	app.Handle(http.MethodPost, version, "/content/status", cnt.SetActive)

	evt := evtgrp.Handlers{
		Log:  cfg.Log,
		Evts: cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", evt.Events)
}

// PrivateRoutes binds all the version 1 private routes.
func PrivateRoutes(app *web.App, cfg Config) {
	adm := admingrp.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
	}

	app.Handle(http.MethodPost, version, "/admin/mint", adm.Mint)
	app.Handle(http.MethodPost, version, "/admin/burn", adm.Burn)
	app.Handle(http.MethodPost, version, "/admin/owner", adm.TransferOwnership)
	app.Handle(http.MethodPost, version, "/admin/checkpoint", adm.Checkpoint)
	app.Handle(http.MethodGet, version, "/admin/events/list", adm.Events)
	app.Handle(http.MethodGet, version, "/admin/events/list/:limit", adm.Events)
}
