package papertrade

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Side tells whether a trade buys or sells an asset.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a trade side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	}
	return "", fmt.Errorf("unknown trade side %q", s)
}

// CostBasis accumulates the acquisition cost of one asset. TotalCost over
// TotalQty is the weighted average purchase price; partial sells write both
// fields down proportionally so the average survives the sell.
type CostBasis struct {
	TotalCost Money    `json:"totalCost"`
	TotalQty  Quantity `json:"totalQty"`
}

// AvgCost returns the weighted average purchase price per unit, and false
// when nothing was ever bought.
func (b CostBasis) AvgCost() (Money, bool) {
	if !b.TotalQty.IsPositive() {
		return Money{}, false
	}
	return b.TotalCost.Div(b.TotalQty), true
}

// Receipt describes a settled trade.
type Receipt struct {
	Side     Side
	Asset    Asset
	Quantity Quantity
	// UnitPrice is the price the trade executed at.
	UnitPrice Money
	// Gross is quantity times unit price.
	Gross Money
	// Fee is zero for buys.
	Fee Money
	// Net is the cash movement: debited on buys, credited on sells
	// (gross minus fee, possibly negative when the fee exceeds proceeds).
	Net Money
}

// Ledger holds the fiscal state of a session: the cash balance, the
// per-asset holdings and their cost basis. It is the only type allowed to
// mutate any of them, and every mutation is atomic: all checks run before
// the first write.
type Ledger struct {
	cash     Money
	holdings map[Asset]Quantity
	basis    map[Asset]CostBasis
}

// NewLedger returns a ledger seeded with an initial cash balance and no
// holdings.
func NewLedger(cash Money) *Ledger {
	return &Ledger{
		cash:     cash,
		holdings: make(map[Asset]Quantity),
		basis:    make(map[Asset]CostBasis),
	}
}

// RestoreLedger rebuilds a ledger from persisted state.
func RestoreLedger(cash Money, holdings map[Asset]Quantity, basis map[Asset]CostBasis) *Ledger {
	l := NewLedger(cash)
	for a, q := range holdings {
		l.holdings[a] = q
	}
	for a, b := range basis {
		l.basis[a] = b
	}
	return l
}

func (l *Ledger) Cash() Money { return l.cash }

// Holding returns the quantity held for the asset, zero if none.
func (l *Ledger) Holding(a Asset) Quantity { return l.holdings[a] }

// Basis returns the cost-basis accumulators for the asset.
func (l *Ledger) Basis(a Asset) CostBasis { return l.basis[a] }

// Holdings returns a copy of the non-zero holdings.
func (l *Ledger) Holdings() map[Asset]Quantity {
	out := make(map[Asset]Quantity, len(l.holdings))
	for a, q := range l.holdings {
		if !q.IsZero() {
			out[a] = q
		}
	}
	return out
}

// checkTrade validates the inputs common to both sides.
func checkTrade(qty Quantity, price Money) error {
	if !qty.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidAmount, qty)
	}
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be positive, got %s", ErrInvalidAmount, price)
	}
	return nil
}

// Buy settles a purchase of qty at the asset's current price. It fails with
// ErrInsufficientFunds when the cost exceeds the cash balance; there are no
// partial fills.
func (l *Ledger) Buy(a Asset, qty Quantity, prices PriceMap) (Receipt, error) {
	price := prices.Price(a)
	if err := checkTrade(qty, price); err != nil {
		return Receipt{}, err
	}
	cost := price.Mul(qty)
	if cost.GreaterThan(l.cash) {
		return Receipt{}, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, cost, l.cash)
	}

	l.cash = l.cash.Sub(cost)
	l.holdings[a] = l.holdings[a].Add(qty)
	b := l.basis[a]
	b.TotalCost = b.TotalCost.Add(cost)
	b.TotalQty = b.TotalQty.Add(qty)
	l.basis[a] = b

	return Receipt{Side: Buy, Asset: a, Quantity: qty, UnitPrice: price, Gross: cost, Net: cost}, nil
}

// Sell settles a sale of qty at the asset's current price, minus the fee
// supplied by the fee model. It fails with ErrInsufficientHoldings when qty
// exceeds the held quantity. The net proceeds may be negative when the fee
// exceeds the gross amount; the cash balance then decreases.
func (l *Ledger) Sell(a Asset, qty Quantity, prices PriceMap, fee Money) (Receipt, error) {
	price := prices.Price(a)
	if err := checkTrade(qty, price); err != nil {
		return Receipt{}, err
	}
	held := l.holdings[a]
	if qty.GreaterThan(held) {
		return Receipt{}, fmt.Errorf("%w: selling %s %s, holding %s", ErrInsufficientHoldings, qty, a.Info().Symbol, held)
	}
	gross := price.Mul(qty)
	net := gross.Sub(fee)

	l.cash = l.cash.Add(net)
	l.holdings[a] = held.Sub(qty)
	if b := l.basis[a]; b.TotalQty.IsPositive() {
		// proportional write-down: scaling cost and qty by the same factor
		// keeps the average cost per unit unchanged.
		factor := Q(decimal.NewFromInt(1)).Sub(qty.Div(b.TotalQty))
		if factor.IsNegative() {
			factor = Q(0)
		}
		b.TotalCost = b.TotalCost.Mul(factor)
		b.TotalQty = b.TotalQty.Mul(factor)
		l.basis[a] = b
	}

	return Receipt{Side: Sell, Asset: a, Quantity: qty, UnitPrice: price, Gross: gross, Fee: fee, Net: net}, nil
}

// TotalEquity values the ledger at the given prices: cash plus the market
// value of every holding. Pure, no side effects.
func (l *Ledger) TotalEquity(prices PriceMap) Money {
	total := l.cash
	for a, qty := range l.holdings {
		if qty.IsZero() {
			continue
		}
		total = total.Add(prices.Price(a).Mul(qty))
	}
	return total
}
