package papertrade

import (
	"slices"
	"time"
)

// Default caps of the bounded history logs.
const (
	DefaultEquityCap      = 120
	DefaultTransactionCap = 200
)

// EquityPoint is one (timestamp, total equity) sample.
type EquityPoint struct {
	Time  time.Time
	Value Money
}

// Transaction is one executed trade, immutable once recorded.
type Transaction struct {
	Time     time.Time
	Side     Side
	Asset    Asset
	Quantity Quantity
	// Price is the unit price the trade executed at.
	Price Money
	// USD is the net cash amount moved by the trade.
	USD Money
}

// History keeps the bounded, time-ordered logs of a session: equity
// samples and executed transactions. After each append entries beyond the
// cap are dropped oldest-first. Identical timestamps are permitted; the
// recorder never deduplicates.
type History struct {
	equity       []EquityPoint
	transactions []Transaction
	equityCap    int
	txCap        int
}

// NewHistory returns an empty history with the default caps.
func NewHistory() *History {
	return &History{equityCap: DefaultEquityCap, txCap: DefaultTransactionCap}
}

// RestoreHistory rebuilds a history from persisted logs, re-applying the
// caps in case the persisted values exceed them.
func RestoreHistory(equity []EquityPoint, transactions []Transaction) *History {
	h := NewHistory()
	h.equity = trim(slices.Clone(equity), h.equityCap)
	h.transactions = trim(slices.Clone(transactions), h.txCap)
	return h
}

func trim[T any](log []T, max int) []T {
	if len(log) <= max {
		return log
	}
	return slices.Delete(log, 0, len(log)-max)
}

// RecordEquity appends an equity sample and trims the log to its cap.
func (h *History) RecordEquity(t time.Time, v Money) {
	h.equity = trim(append(h.equity, EquityPoint{Time: t, Value: v}), h.equityCap)
}

// RecordTransaction appends a trade record and trims the log to its cap.
func (h *History) RecordTransaction(tx Transaction) {
	h.transactions = trim(append(h.transactions, tx), h.txCap)
}

// Equity returns a copy of the equity log, oldest first.
func (h *History) Equity() []EquityPoint { return slices.Clone(h.equity) }

// Transactions returns a copy of the transaction log, oldest first.
func (h *History) Transactions() []Transaction { return slices.Clone(h.transactions) }
