package account_test

import (
	"testing"

	"github.com/evoforge/ledger/foundation/ledger/account"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_AccountID(t *testing.T) {
	type table struct {
		name  string
		hex   string
		valid bool
	}

	tt := []table{
		{name: "prefixed", hex: "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4", valid: true},
		{name: "bare", hex: "dd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4", valid: true},
		{name: "short", hex: "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8eb", valid: false},
		{name: "nonhex", hex: "0xzz6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4", valid: false},
		{name: "empty", hex: "", valid: false},
	}

	t.Log("Given the need to validate account id formats.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen checking the %s form.", testID, tst.name)
			{
				_, err := account.ToAccountID(tst.hex)
				if tst.valid && err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould accept the id: %v", failed, testID, err)
				}
				if !tst.valid && err == nil {
					t.Fatalf("\t%s\tTest %d:\tShould reject the id.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould validate the id correctly.", success, testID)
			}
		}
	}
}

func Test_ZeroAccount(t *testing.T) {
	t.Log("Given the need to validate the zero sentinel.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen checking the zero account.", testID)
		{
			if !account.ZeroAccount.IsZero() {
				t.Fatalf("\t%s\tTest %d:\tShould report the sentinel as zero.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould report the sentinel as zero.", success, testID)

			id := account.AccountID("0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4")
			if id.IsZero() {
				t.Fatalf("\t%s\tTest %d:\tShould not report a real account as zero.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not report a real account as zero.", success, testID)
		}
	}
}
