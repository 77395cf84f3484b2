package tokengrp_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/evoforge/ledger/app/services/ledger/handlers/v1/tokengrp"
	"github.com/evoforge/ledger/business/web/mid"
	"github.com/evoforge/ledger/foundation/ledger/genesis"
	"github.com/evoforge/ledger/foundation/ledger/state"
	"github.com/evoforge/ledger/foundation/ledger/storage/memory"
	"github.com/evoforge/ledger/foundation/nameservice"
	"github.com/evoforge/ledger/foundation/web"
	"go.uber.org/zap"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

const (
	adminAcct = "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32"
	acctA     = "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"
	acctB     = "0xbEE6ACE826eC3DE1B6349888B9151B92522F7F76"
)

func newApp(t *testing.T) http.Handler {
	gen := genesis.Genesis{
		ChainID: 1,
		Admin:   adminAcct,
		Balances: map[string]uint64{
			acctA: 1000,
		},
	}

	st, err := state.New(state.Config{
		Genesis: gen,
		Storage: memory.New(),
	})
	if err != nil {
		t.Fatalf("unable to construct state: %v", err)
	}

	ns, err := nameservice.New(gen)
	if err != nil {
		t.Fatalf("unable to construct nameservice: %v", err)
	}

	log := zap.NewNop().Sugar()

	h := tokengrp.Handlers{
		Log:   log,
		State: st,
		NS:    ns,
	}

	app := web.NewApp(make(chan os.Signal, 1), mid.Errors(log))
	app.Handle(http.MethodPost, "v1", "/token/transfer", h.Transfer)

	return app
}

func Test_TransferHandler(t *testing.T) {
	type table struct {
		name       string
		body       string
		statusCode int
	}

	tt := []table{
		{
			name:       "valid",
			body:       `{"caller":"` + acctA + `","to":"` + acctB + `","amount":100}`,
			statusCode: http.StatusOK,
		},
		{
			name:       "malformedto",
			body:       `{"caller":"` + acctA + `","to":"0x12","amount":100}`,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "malformedcaller",
			body:       `{"caller":"0x12","to":"` + acctB + `","amount":100}`,
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "missingamount",
			body:       `{"caller":"` + acctA + `","to":"` + acctB + `"}`,
			statusCode: http.StatusBadRequest,
		},
	}

	t.Log("Given the need to validate the transfer endpoint.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen posting a %s request.", testID, tst.name)
			{
				f := func(t *testing.T) {
					app := newApp(t)

					r := httptest.NewRequest(http.MethodPost, "/v1/token/transfer", strings.NewReader(tst.body))
					w := httptest.NewRecorder()
					app.ServeHTTP(w, r)

					if w.Code != tst.statusCode {
						t.Fatalf("\t%s\tTest %d:\tShould get status %d: got %d", failed, testID, tst.statusCode, w.Code)
					}
					t.Logf("\t%s\tTest %d:\tShould get status %d.", success, testID, tst.statusCode)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
