package ledger

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const maxSeedAmount = 1000

// GenerateHistory builds n synthetic transactions with ids 1..n, timestamps spread uniformly
// from midnight one calendar month before now up to now, a random kind and a whole amount in
// [1, 1000]. The result is sorted newest first.
func GenerateHistory(rng *rand.Rand, now time.Time, n int) []Transaction {
	if n <= 0 {
		return nil
	}

	y, m, d := now.Date()
	from := time.Date(y, m-1, d, 0, 0, 0, 0, now.Location())
	span := now.Sub(from)

	history := make([]Transaction, 0, n)
	for i := 0; i < n; i++ {
		var offset time.Duration
		if span > 0 {
			offset = time.Duration(rng.Int64N(int64(span)))
		}

		kind := KindWithdrawal
		if rng.Float64() > 0.5 {
			kind = KindDeposit
		}

		history = append(history, Transaction{
			ID:        int64(i + 1),
			Timestamp: from.Add(offset),
			Amount:    decimal.NewFromInt(rng.Int64N(maxSeedAmount) + 1),
			Kind:      kind,
		})
	}

	sortNewestFirst(history)
	return history
}

func sortNewestFirst(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}
