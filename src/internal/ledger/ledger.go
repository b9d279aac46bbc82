// Package ledger owns a session's balance and transaction history.
package ledger

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

// Ledger holds one balance and its history. Transactions are kept newest first.
// All methods are safe for concurrent use.
type Ledger struct {
	mu           sync.Mutex
	balance      decimal.Decimal
	transactions []Transaction
	lastID       int64
	now          func() time.Time
	location     *time.Location
}

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLocation sets the zone used for calendar-based periods.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		if loc != nil {
			l.location = loc
		}
	}
}

// New creates a ledger with the given opening balance and history. The history is copied
// and sorted newest first; new ids continue after the largest id in it.
func New(balance decimal.Decimal, history []Transaction, opts ...Option) *Ledger {
	l := &Ledger{
		balance:      balance,
		transactions: make([]Transaction, len(history)),
		now:          time.Now,
		location:     time.Local,
	}
	for _, opt := range opts {
		opt(l)
	}

	copy(l.transactions, history)
	sortNewestFirst(l.transactions)
	for _, tx := range l.transactions {
		if tx.ID > l.lastID {
			l.lastID = tx.ID
		}
	}

	return l
}

func (l *Ledger) Deposit(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, commons.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.balance = l.balance.Add(amount)
	return l.record(amount, KindDeposit), nil
}

// Withdraw debits amount. An amount above the balance is rejected; the check is
// amount <= balance, so the balance may reach exactly zero.
func (l *Ledger) Withdraw(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, commons.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.GreaterThan(l.balance) {
		return Transaction{}, commons.ErrInsufficientFunds
	}

	l.balance = l.balance.Sub(amount)
	return l.record(amount, KindWithdrawal), nil
}

func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

func (l *Ledger) Transactions() []Transaction {
	return l.TransactionsInPeriod(PeriodAll)
}

// TransactionsInPeriod returns a newest-first copy of the entries inside period, judged
// against the ledger clock at call time.
func (l *Ledger) TransactionsInPeriod(period Period) []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	out := make([]Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		if period.Contains(tx.Timestamp, now, l.location) {
			out = append(out, tx)
		}
	}
	return out
}

func (l *Ledger) Now() time.Time {
	return l.now()
}

func (l *Ledger) Location() *time.Location {
	return l.location
}

// record must be called with mu held.
func (l *Ledger) record(amount decimal.Decimal, kind Kind) Transaction {
	l.lastID++
	tx := Transaction{
		ID:        l.lastID,
		Timestamp: l.now(),
		Amount:    amount,
		Kind:      kind,
	}

	// ties go in front so the latest call is listed first
	i := sort.Search(len(l.transactions), func(i int) bool {
		return !l.transactions[i].Timestamp.After(tx.Timestamp)
	})
	l.transactions = slices.Insert(l.transactions, i, tx)

	return tx
}
