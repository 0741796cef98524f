package domain

import (
	"iter"

	"github.com/shopspring/decimal"
)

// BalanceHistoryEntry is one point in a party's running balance timeline.
type BalanceHistoryEntry struct {
	Transaction    Transaction     `json:"transaction"`
	Effect         decimal.Decimal `json:"effect"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// BalanceProjector replays a party's transactions in ascending timestamp
// order against the opening balance. It never mutates its inputs and
// produces identical output on every replay.
type BalanceProjector struct {
	OpeningBalance decimal.Decimal
	Transactions   []Transaction
}

// All yields one entry per transaction, lazily. The sequence is finite and
// restartable: ranging over it twice produces the same entries.
func (p BalanceProjector) All() iter.Seq[BalanceHistoryEntry] {
	return func(yield func(BalanceHistoryEntry) bool) {
		running := p.OpeningBalance
		for _, txn := range p.Transactions {
			effect := txn.BalanceEffect()
			running = running.Add(effect)
			if !yield(BalanceHistoryEntry{Transaction: txn, Effect: effect, RunningBalance: running}) {
				return
			}
		}
	}
}

// Project materializes the full history. An empty transaction list yields
// an empty (non-nil) slice.
func (p BalanceProjector) Project() []BalanceHistoryEntry {
	entries := make([]BalanceHistoryEntry, 0, len(p.Transactions))
	for e := range p.All() {
		entries = append(entries, e)
	}
	return entries
}

// ClosingBalance is the running balance after the last transaction, or the
// opening balance when there are none.
func (p BalanceProjector) ClosingBalance() decimal.Decimal {
	closing := p.OpeningBalance
	for _, txn := range p.Transactions {
		closing = closing.Add(txn.BalanceEffect())
	}
	return closing
}
