package papertrade

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// State is the lifecycle phase of a trading session.
type State int

const (
	StateUninitialized State = iota
	// StateAwaitingDeposit means no prior session exists; the user must
	// supply an initial USD amount before trading.
	StateAwaitingDeposit
	// StateActive means trading is open. The only way back is a full reset.
	StateActive
)

func (s State) String() string {
	switch s {
	case StateAwaitingDeposit:
		return "awaiting-deposit"
	case StateActive:
		return "active"
	default:
		return "uninitialized"
	}
}

// MaxInitialDeposit is the sanity ceiling on the starting cash amount.
const MaxInitialDeposit = 1_000_000

// Session owns all entities of one trading session: the ledger, the price
// feed, the history logs, the fee model and the persistence gateway. Every
// state-changing method runs to completion on the caller's goroutine; the
// session itself does no locking and expects callers to serialize access.
type Session struct {
	state   State
	initial Money
	ledger  *Ledger
	feed    *Feed
	history *History
	fees    FeeModel
	tier    Tier
	gw      *Gateway

	now func() time.Time
}

// Open loads a session from the gateway, or starts a fresh one awaiting an
// initial deposit when no prior session exists. A non-nil quoter puts the
// price feed in live mode.
func Open(gw *Gateway, quoter Quoter) *Session {
	s := &Session{gw: gw, tier: TierMedium, now: time.Now}

	prices := gw.LoadPrices()
	if quoter != nil {
		s.feed = NewLiveFeed(prices, quoter)
	} else {
		s.feed = NewSimFeed(prices)
	}

	if !gw.LoadInitialized() {
		s.state = StateAwaitingDeposit
		s.ledger = NewLedger(USD(0))
		s.history = NewHistory()
		return s
	}

	s.state = StateActive
	s.initial = gw.LoadInitial()
	s.ledger = RestoreLedger(gw.LoadCash(), gw.LoadHoldings(), gw.LoadCostBasis())
	s.history = RestoreHistory(gw.LoadEquity(), gw.LoadTransactions())
	return s
}

func (s *Session) State() State      { return s.state }
func (s *Session) Initial() Money    { return s.initial }
func (s *Session) Ledger() *Ledger   { return s.ledger }
func (s *Session) History() *History { return s.history }
func (s *Session) Prices() PriceMap  { return s.feed.Prices() }
func (s *Session) Tier() Tier        { return s.tier }
func (s *Session) SetTier(t Tier)    { s.tier = t }

// parseAmount turns user input into a positive decimal. Anything that is
// not a finite positive number is an ErrInvalidAmount.
func parseAmount(input string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, input)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q must be positive", ErrInvalidAmount, input)
	}
	return d, nil
}

// Deposit validates the initial USD amount and activates the session. It
// fails once the session is active; only a full reset reopens it.
func (s *Session) Deposit(amount string) error {
	if s.state == StateActive {
		return fmt.Errorf("session already active, reset it to start over")
	}
	d, err := parseAmount(amount)
	if err != nil {
		return err
	}
	m := USD(d)
	if m.GreaterThan(USD(MaxInitialDeposit)) {
		return fmt.Errorf("%w: deposit above the %s ceiling", ErrInvalidAmount, USD(MaxInitialDeposit))
	}

	s.initial = m
	s.ledger = NewLedger(m)
	s.history = NewHistory()
	s.state = StateActive

	s.gw.SaveInitial(m)
	s.gw.SaveCash(m)
	s.gw.SaveInitialized(true)
	return nil
}

// SubmitTrade validates and settles one trade. The price used for the fee
// and for execution comes from a single price snapshot taken here; a tick
// arriving after the snapshot does not affect this trade. On failure no
// state is mutated and the error carries the specific kind. On success the
// trade is recorded, state is persisted and a confirmation message is
// returned.
func (s *Session) SubmitTrade(side Side, asset Asset, amount string) (string, error) {
	if s.state != StateActive {
		return "", fmt.Errorf("%w: deposit first", ErrNotActive)
	}
	d, err := parseAmount(amount)
	if err != nil {
		return "", err
	}
	qty := Q(d)
	prices := s.feed.Prices()

	var receipt Receipt
	switch side {
	case Buy:
		receipt, err = s.ledger.Buy(asset, qty, prices)
	case Sell:
		fee := s.fees.FeeFor(asset, s.tier, prices)
		receipt, err = s.ledger.Sell(asset, qty, prices, fee)
	default:
		return "", fmt.Errorf("unknown trade side %q", side)
	}
	if err != nil {
		return "", err
	}

	now := s.now()
	s.history.RecordTransaction(Transaction{
		Time:     now,
		Side:     receipt.Side,
		Asset:    receipt.Asset,
		Quantity: receipt.Quantity,
		Price:    receipt.UnitPrice,
		USD:      receipt.Net,
	})

	s.gw.SaveCash(s.ledger.Cash())
	s.gw.SaveHoldings(s.ledger.Holdings())
	s.gw.SaveCostBasis(s.basisSnapshot())
	s.gw.SaveTransactions(s.history.Transactions())

	symbol := asset.Info().Symbol
	if side == Buy {
		return fmt.Sprintf("Bought %s %s for %s", receipt.Quantity, symbol, receipt.Gross), nil
	}
	return fmt.Sprintf("Sold %s %s for %s (fee %s, net %s)",
		receipt.Quantity, symbol, receipt.Gross, receipt.Fee, receipt.Net), nil
}

func (s *Session) basisSnapshot() map[Asset]CostBasis {
	out := make(map[Asset]CostBasis, len(AllAssets()))
	for _, a := range AllAssets() {
		out[a] = s.ledger.Basis(a)
	}
	return out
}

// Quote returns the sell fee the current tier would charge for the asset
// right now. Informational; the executed fee is computed from the trade's
// own price snapshot.
func (s *Session) Quote(asset Asset) Money {
	return s.fees.FeeFor(asset, s.tier, s.feed.Prices())
}

// ApplyTick advances the price feed once and persists the new map on
// success. A failed live tick keeps the previous prices; the error wraps
// ErrFeedUnavailable and is never fatal.
func (s *Session) ApplyTick(ctx context.Context) error {
	prices, err := s.feed.Tick(ctx)
	if err != nil {
		return err
	}
	s.gw.SavePrices(prices)
	return nil
}

// SnapshotEquity appends the current total equity to the history log and
// persists the log.
func (s *Session) SnapshotEquity() {
	if s.state != StateActive {
		return
	}
	s.history.RecordEquity(s.now(), s.ledger.TotalEquity(s.feed.Prices()))
	s.gw.SaveEquity(s.history.Equity())
}

// Reset clears all persisted entities and returns the session to
// StateAwaitingDeposit. Prices fall back to their seed values.
func (s *Session) Reset() error {
	if err := s.gw.Reset(); err != nil {
		return fmt.Errorf("could not clear persisted state: %w", err)
	}
	quoter := s.feed.quoter
	if quoter != nil {
		s.feed = NewLiveFeed(nil, quoter)
	} else {
		s.feed = NewSimFeed(nil)
	}
	s.state = StateAwaitingDeposit
	s.initial = Money{}
	s.ledger = NewLedger(USD(0))
	s.history = NewHistory()
	return nil
}
