package forge_test

import (
	"errors"
	"testing"
	"time"

	"github.com/evoforge/ledger/foundation/ledger/forge"
	"github.com/evoforge/ledger/foundation/ledger/genesis"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

const (
	acctA = "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"
	acctB = "0xbEE6ACE826eC3DE1B6349888B9151B92522F7F76"
)

func newRegistry() *forge.Registry {
	return forge.New(genesis.Genesis{
		CreationFee:      100,
		BasePower:        10,
		EvolutionSeconds: 604800,
	})
}

func Test_Create(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Log("Given the need to validate forging new blocks.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen paying the creation fee.", testID)
		{
			r := newRegistry()

			block, err := r.Create(acctA, 100, now)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to create a block: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to create a block.", success, testID)

			if block.ID != 1 || block.Power != 10 || block.Generation != 1 || !block.Active {
				t.Fatalf("\t%s\tTest %d:\tShould see id 1, power 10, generation 1, active: got %+v", failed, testID, block)
			}
			t.Logf("\t%s\tTest %d:\tShould see id 1, power 10, generation 1, active.", success, testID)

			if block.Color == "" {
				t.Errorf("\t%s\tTest %d:\tShould see a color drawn from the palette.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see a color drawn from the palette.", success, testID)
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen the payment is below the fee.", testID)
		{
			r := newRegistry()

			if _, err := r.Create(acctA, 99, now); !errors.Is(err, forge.ErrInsufficientPayment) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrInsufficientPayment: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrInsufficientPayment.", success, testID)

			if blocks := r.BlocksOf(acctA); len(blocks) != 0 {
				t.Errorf("\t%s\tTest %d:\tShould not record any block: got %d", failed, testID, len(blocks))
			} else {
				t.Logf("\t%s\tTest %d:\tShould not record any block.", success, testID)
			}
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen blocks are created in sequence.", testID)
		{
			r := newRegistry()

			b1, _ := r.Create(acctA, 100, now)
			b2, _ := r.Create(acctA, 150, now)
			if b1.ID != 1 || b2.ID != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould see sequential ids 1 and 2: got %d and %d", failed, testID, b1.ID, b2.ID)
			}
			t.Logf("\t%s\tTest %d:\tShould see sequential ids 1 and 2.", success, testID)

			if blocks := r.BlocksOf(acctA); len(blocks) != 2 {
				t.Errorf("\t%s\tTest %d:\tShould see both blocks in the owner list: got %d", failed, testID, len(blocks))
			} else {
				t.Logf("\t%s\tTest %d:\tShould see both blocks in the owner list.", success, testID)
			}
		}
	}
}

func Test_Evolve(t *testing.T) {
	birth := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	week := 7 * 24 * time.Hour

	t.Log("Given the need to validate block evolution.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the evolution interval has not elapsed.", testID)
		{
			r := newRegistry()
			block, _ := r.Create(acctA, 100, birth)

			if _, err := r.Evolve(acctA, block.ID, birth.Add(week-time.Second)); !errors.Is(err, forge.ErrEvolutionNotReady) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrEvolutionNotReady: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrEvolutionNotReady.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen the interval elapses exactly.", testID)
		{
			r := newRegistry()
			block, _ := r.Create(acctA, 100, birth)

			evolved, err := r.Evolve(acctA, block.ID, birth.Add(week))
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to evolve at the boundary: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to evolve at the boundary.", success, testID)

			if evolved.Generation != 2 {
				t.Errorf("\t%s\tTest %d:\tShould see generation 2: got %d", failed, testID, evolved.Generation)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see generation 2.", success, testID)
			}

			// basePower 10 at generation 2 adds 10*2/2 to the base 10.
			if evolved.Power != 20 {
				t.Errorf("\t%s\tTest %d:\tShould see power 20: got %d", failed, testID, evolved.Power)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see power 20.", success, testID)
			}

			if !evolved.BirthTime.Equal(birth.Add(week)) {
				t.Errorf("\t%s\tTest %d:\tShould see the interval restart from the evolution time.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see the interval restart from the evolution time.", success, testID)
			}

			// The clock restarted, so evolving again right away must fail.
			if _, err := r.Evolve(acctA, block.ID, birth.Add(week+time.Hour)); !errors.Is(err, forge.ErrEvolutionNotReady) {
				t.Errorf("\t%s\tTest %d:\tShould not be able to evolve again before another interval: %v", failed, testID, err)
			} else {
				t.Logf("\t%s\tTest %d:\tShould not be able to evolve again before another interval.", success, testID)
			}
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen the caller does not own the block.", testID)
		{
			r := newRegistry()
			block, _ := r.Create(acctA, 100, birth)

			if _, err := r.Evolve(acctB, block.ID, birth.Add(week)); !errors.Is(err, forge.ErrNotOwner) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrNotOwner: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrNotOwner.", success, testID)
		}

		testID = 3
		t.Logf("\tTest %d:\tWhen the block does not exist.", testID)
		{
			r := newRegistry()

			if _, err := r.Evolve(acctA, 42, birth); !errors.Is(err, forge.ErrNotFound) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrNotFound: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrNotFound.", success, testID)
		}
	}
}

func Test_Merge(t *testing.T) {
	birth := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	week := 7 * 24 * time.Hour

	t.Log("Given the need to validate merging blocks.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen merging two owned blocks.", testID)
		{
			r := newRegistry()
			blockA, _ := r.Create(acctA, 100, birth)
			blockB, _ := r.Create(acctA, 100, birth)

			// Evolve the second block so the generations differ.
			blockB, err := r.Evolve(acctA, blockB.ID, birth.Add(week))
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to evolve the second block: %v", failed, testID, err)
			}

			merged, err := r.Merge(acctA, blockA.ID, blockB.ID, birth.Add(week))
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to merge the blocks: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to merge the blocks.", success, testID)

			if merged.Power != blockA.Power+blockB.Power {
				t.Errorf("\t%s\tTest %d:\tShould see the combined power %d: got %d", failed, testID, blockA.Power+blockB.Power, merged.Power)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see the combined power %d.", success, testID, merged.Power)
			}

			if merged.Generation != blockB.Generation+1 {
				t.Errorf("\t%s\tTest %d:\tShould see generation %d: got %d", failed, testID, blockB.Generation+1, merged.Generation)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see generation %d.", success, testID, merged.Generation)
			}

			if merged.Color != blockA.Color {
				t.Errorf("\t%s\tTest %d:\tShould inherit the color of the first block.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould inherit the color of the first block.", success, testID)
			}

			gotA, _ := r.Block(blockA.ID)
			gotB, _ := r.Block(blockB.ID)
			if gotA.Active || gotB.Active {
				t.Errorf("\t%s\tTest %d:\tShould see both inputs deactivated.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see both inputs deactivated.", success, testID)
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen merging a block with itself.", testID)
		{
			r := newRegistry()
			block, _ := r.Create(acctA, 100, birth)

			if _, err := r.Merge(acctA, block.ID, block.ID, birth); !errors.Is(err, forge.ErrSelfMerge) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrSelfMerge: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrSelfMerge.", success, testID)

			got, _ := r.Block(block.ID)
			if !got.Active {
				t.Errorf("\t%s\tTest %d:\tShould leave the block active.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould leave the block active.", success, testID)
			}
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen the caller does not own both blocks.", testID)
		{
			r := newRegistry()
			blockA, _ := r.Create(acctA, 100, birth)
			blockB, _ := r.Create(acctB, 100, birth)

			if _, err := r.Merge(acctA, blockA.ID, blockB.ID, birth); !errors.Is(err, forge.ErrNotOwner) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrNotOwner: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrNotOwner.", success, testID)
		}

		testID = 3
		t.Logf("\tTest %d:\tWhen an input was already consumed.", testID)
		{
			r := newRegistry()
			blockA, _ := r.Create(acctA, 100, birth)
			blockB, _ := r.Create(acctA, 100, birth)
			blockC, _ := r.Create(acctA, 100, birth)

			if _, err := r.Merge(acctA, blockA.ID, blockB.ID, birth); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to merge the first pair: %v", failed, testID, err)
			}

			if _, err := r.Merge(acctA, blockA.ID, blockC.ID, birth); !errors.Is(err, forge.ErrInactive) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrInactive: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrInactive.", success, testID)
		}
	}
}

func Test_ForgeSnapshotRoundTrip(t *testing.T) {
	birth := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Log("Given the need to validate snapshot and restore.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen restoring a captured snapshot.", testID)
		{
			r := newRegistry()
			r.Create(acctA, 100, birth)
			r.Create(acctA, 100, birth)

			snap := r.TakeSnapshot()

			r2 := newRegistry()
			r2.Restore(snap)

			if blocks := r2.BlocksOf(acctA); len(blocks) != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould see both blocks after restore: got %d", failed, testID, len(blocks))
			}
			t.Logf("\t%s\tTest %d:\tShould see both blocks after restore.", success, testID)

			// The id sequence continues past the restored blocks.
			block, err := r2.Create(acctA, 100, birth)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to create after restore: %v", failed, testID, err)
			}
			if block.ID != 3 {
				t.Errorf("\t%s\tTest %d:\tShould see the id sequence continue at 3: got %d", failed, testID, block.ID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould see the id sequence continue at 3.", success, testID)
			}
		}
	}
}
