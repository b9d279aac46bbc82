package ledger

import (
	"math/rand/v2"
	"reflect"
	"testing"
	"time"
)

func TestGenerateHistoryBounds(t *testing.T) {
	history := GenerateHistory(rand.New(rand.NewPCG(42, 42)), fixedNow, 20)
	if len(history) != 20 {
		t.Fatalf("expected 20 transactions, got %d", len(history))
	}

	from := time.Date(2026, time.September, 18, 0, 0, 0, 0, time.UTC)
	ids := map[int64]bool{}
	for i, tx := range history {
		if tx.Timestamp.Before(from) || !tx.Timestamp.Before(fixedNow) {
			t.Fatalf("timestamp %s outside [%s, %s)", tx.Timestamp, from, fixedNow)
		}
		if tx.Amount.IntPart() < 1 || tx.Amount.IntPart() > 1000 || !tx.Amount.Equal(tx.Amount.Truncate(0)) {
			t.Fatalf("amount %s outside whole range 1..1000", tx.Amount)
		}
		if tx.Kind != KindDeposit && tx.Kind != KindWithdrawal {
			t.Fatalf("unexpected kind %q", tx.Kind)
		}
		if i > 0 && tx.Timestamp.After(history[i-1].Timestamp) {
			t.Fatalf("history not newest first at %d", i)
		}
		ids[tx.ID] = true
	}
	for id := int64(1); id <= 20; id++ {
		if !ids[id] {
			t.Fatalf("missing id %d", id)
		}
	}
}

func TestGenerateHistoryDeterministic(t *testing.T) {
	a := GenerateHistory(rand.New(rand.NewPCG(9, 9)), fixedNow, 20)
	b := GenerateHistory(rand.New(rand.NewPCG(9, 9)), fixedNow, 20)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical history for identical sources")
	}
}

func TestGenerateHistoryEmpty(t *testing.T) {
	if got := GenerateHistory(rand.New(rand.NewPCG(1, 1)), fixedNow, 0); len(got) != 0 {
		t.Fatalf("expected no transactions, got %d", len(got))
	}
}
