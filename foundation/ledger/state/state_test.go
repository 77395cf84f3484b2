package state_test

import (
	"errors"
	"testing"

	"github.com/evoforge/ledger/foundation/ledger/account"
	"github.com/evoforge/ledger/foundation/ledger/genesis"
	"github.com/evoforge/ledger/foundation/ledger/state"
	"github.com/evoforge/ledger/foundation/ledger/storage/memory"
	"github.com/evoforge/ledger/foundation/ledger/token"
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

func newGenesis() genesis.Genesis {
	return genesis.Genesis{
		ChainID:          1,
		Admin:            adminAcct,
		TokenName:        "Evoforge Token",
		TokenSymbol:      "EVO",
		CreationFee:      100,
		BasePower:        10,
		EvolutionSeconds: 604800,
		Balances: map[string]uint64{
			adminAcct: 1000000,
			acctA:     1000,
		},
	}
}

func Test_Operations(t *testing.T) {
	t.Log("Given the need to validate ledger operations through the state.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen running operations across the registries.", testID)
		{
			storage := memory.New()
			st, err := state.New(state.Config{
				Genesis: newGenesis(),
				Storage: storage,
			})
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to construct the state: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to construct the state.", success, testID)

			if err := st.Transfer(acctA, acctB, 300); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to transfer tokens: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to transfer tokens.", success, testID)

			if got := st.RetrieveBalance(acctB); got != 300 {
				t.Errorf("\t%s\tTest %d:\tShould see balance 300: got %d", failed, testID, got)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see balance 300.", success, testID)
			}

			block, err := st.ForgeCreate(acctA, 100)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to forge a block: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to forge a block.", success, testID)

			if _, err := st.RetrieveBlock(block.ID); err != nil {
				t.Errorf("\t%s\tTest %d:\tShould be able to retrieve the block: %v", failed, testID, err)
			} else {
				t.Logf("\t%s\tTest %d:\tShould be able to retrieve the block.", success, testID)
			}

			version, err := st.ContentCreate(acctA, "docs/guide", "Guide", "ipfs://Qm1", "draft")
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to create content: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to create content.", success, testID)

			latest, err := st.RetrieveLatest("docs/guide")
			if err != nil || latest.ID != version.ID {
				t.Errorf("\t%s\tTest %d:\tShould see the latest pointer on the new version: %v", failed, testID, err)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see the latest pointer on the new version.", success, testID)
			}

			// Every committed operation was journaled in commit order.
			events, err := st.RetrieveEvents(0)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to read the journal: %v", failed, testID, err)
			}
			if len(events) != 3 {
				t.Fatalf("\t%s\tTest %d:\tShould see 3 journal records: got %d", failed, testID, len(events))
			}
			t.Logf("\t%s\tTest %d:\tShould see 3 journal records.", success, testID)

			names := []string{"token.transfer", "forge.created", "content.created"}
			for i, evt := range events {
				if evt.Name != names[i] || evt.Seq != uint64(i+1) {
					t.Errorf("\t%s\tTest %d:\tShould see event %s at seq %d: got %s at %d", failed, testID, names[i], i+1, evt.Name, evt.Seq)
				} else {
					t.Logf("\t%s\tTest %d:\tShould see event %s at seq %d.", success, testID, names[i], i+1)
				}
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen a precondition fails.", testID)
		{
			st, err := state.New(state.Config{
				Genesis: newGenesis(),
				Storage: memory.New(),
			})
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to construct the state: %v", failed, testID, err)
			}

			if err := st.Transfer(acctB, acctA, 1); !errors.Is(err, token.ErrInsufficientBalance) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrInsufficientBalance: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrInsufficientBalance.", success, testID)

			// A rejected operation never reaches the journal.
			events, err := st.RetrieveEvents(0)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to read the journal: %v", failed, testID, err)
			}
			if len(events) != 0 {
				t.Errorf("\t%s\tTest %d:\tShould see an empty journal: got %d", failed, testID, len(events))
			} else {
				t.Logf("\t%s\tTest %d:\tShould see an empty journal.", success, testID)
			}
		}
	}
}

func Test_CheckpointRestore(t *testing.T) {
	t.Log("Given the need to validate checkpoint and restart.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen restarting from a checkpoint.", testID)
		{
			storage := memory.New()

			st, err := state.New(state.Config{
				Genesis: newGenesis(),
				Storage: storage,
			})
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to construct the state: %v", failed, testID, err)
			}

			if err := st.Transfer(acctA, acctB, 400); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to transfer tokens: %v", failed, testID, err)
			}
			if _, err := st.ForgeCreate(acctA, 100); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to forge a block: %v", failed, testID, err)
			}

			if err := st.Checkpoint(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to take a checkpoint: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to take a checkpoint.", success, testID)

			st2, err := state.New(state.Config{
				Genesis: newGenesis(),
				Storage: storage,
			})
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to restart from the snapshot: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to restart from the snapshot.", success, testID)

			if got := st2.RetrieveBalance(acctB); got != 400 {
				t.Errorf("\t%s\tTest %d:\tShould see balance 400 after restart: got %d", failed, testID, got)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see balance 400 after restart.", success, testID)
			}

			if blocks := st2.RetrieveBlocksOf(acctA); len(blocks) != 1 {
				t.Errorf("\t%s\tTest %d:\tShould see the forged block after restart: got %d", failed, testID, len(blocks))
			} else {
				t.Logf("\t%s\tTest %d:\tShould see the forged block after restart.", success, testID)
			}

			// The event sequence continues where the snapshot left off.
			if err := st2.Transfer(acctB, acctA, 1); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to transfer after restart: %v", failed, testID, err)
			}
			events, err := st2.RetrieveEvents(1)
			if err != nil || len(events) != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould be able to read the last journal record: %v", failed, testID, err)
			}
			if events[0].Seq != 3 {
				t.Errorf("\t%s\tTest %d:\tShould see the sequence continue at 3: got %d", failed, testID, events[0].Seq)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see the sequence continue at 3.", success, testID)
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen the journal runs ahead of the snapshot.", testID)
		{
			storage := memory.New()

			st, err := state.New(state.Config{
				Genesis: newGenesis(),
				Storage: storage,
			})
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to construct the state: %v", failed, testID, err)
			}

			// Checkpoint at seq 1, then journal two more operations that a
			// hard stop would leave uncovered by any snapshot.
			if err := st.Transfer(acctA, acctB, 100); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to transfer tokens: %v", failed, testID, err)
			}
			if err := st.Checkpoint(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to take a checkpoint: %v", failed, testID, err)
			}
			if err := st.Transfer(acctA, acctB, 100); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to transfer tokens: %v", failed, testID, err)
			}
			if err := st.Transfer(acctA, acctB, 100); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to transfer tokens: %v", failed, testID, err)
			}

			st2, err := state.New(state.Config{
				Genesis: newGenesis(),
				Storage: storage,
			})
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to restart from the snapshot: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to restart from the snapshot.", success, testID)

			// The next operation must pick up past the journal's high mark,
			// never reissuing sequence numbers 2 and 3.
			if err := st2.Transfer(acctA, acctB, 1); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to transfer after restart: %v", failed, testID, err)
			}

			events, err := st2.RetrieveEvents(0)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to read the journal: %v", failed, testID, err)
			}
			if len(events) != 4 {
				t.Fatalf("\t%s\tTest %d:\tShould see 4 journal records: got %d", failed, testID, len(events))
			}
			t.Logf("\t%s\tTest %d:\tShould see 4 journal records.", success, testID)

			for i, evt := range events {
				if evt.Seq != uint64(i+1) {
					t.Errorf("\t%s\tTest %d:\tShould see seq %d at position %d: got %d", failed, testID, i+1, i, evt.Seq)
				} else {
					t.Logf("\t%s\tTest %d:\tShould see seq %d at position %d.", success, testID, i+1, i)
				}
			}
		}
	}
}

func Test_AdminOperations(t *testing.T) {
	t.Log("Given the need to validate admin only operations.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen minting and burning through the state.", testID)
		{
			st, err := state.New(state.Config{
				Genesis: newGenesis(),
				Storage: memory.New(),
			})
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to construct the state: %v", failed, testID, err)
			}

			supply := st.RetrieveTotalSupply()

			if err := st.Mint(adminAcct, acctB, 500); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to mint as admin: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to mint as admin.", success, testID)

			if err := st.Burn(adminAcct, acctB, 100); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to burn as admin: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to burn as admin.", success, testID)

			if got := st.RetrieveTotalSupply(); got != supply+400 {
				t.Errorf("\t%s\tTest %d:\tShould see the supply grow by 400: got %d", failed, testID, got)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see the supply grow by 400.", success, testID)
			}

			if err := st.Mint(acctA, acctA, 500); !errors.Is(err, token.ErrNotOwner) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrNotOwner for a non admin: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrNotOwner for a non admin.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen reassigning the content registry.", testID)
		{
			st, err := state.New(state.Config{
				Genesis: newGenesis(),
				Storage: memory.New(),
			})
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to construct the state: %v", failed, testID, err)
			}

			if err := st.ContentTransferOwnership(adminAcct, acctA); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to transfer ownership: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to transfer ownership.", success, testID)

			if got := st.RetrieveContentOwner(); got != account.AccountID(acctA) {
				t.Errorf("\t%s\tTest %d:\tShould see the new registry owner: got %s", failed, testID, got)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see the new registry owner.", success, testID)
			}
		}
	}
}
