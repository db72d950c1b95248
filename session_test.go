package papertrade

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func testSession(t *testing.T) (*Session, *Gateway) {
	t.Helper()
	g := testGateway(t)
	return Open(g, nil), g
}

func TestSession_FreshStoreAwaitsDeposit(t *testing.T) {
	s, _ := testSession(t)
	if s.State() != StateAwaitingDeposit {
		t.Fatalf("fresh session state = %s, want awaiting-deposit", s.State())
	}
	if _, err := s.SubmitTrade(Buy, BTC, "0.1"); !errors.Is(err, ErrNotActive) {
		t.Errorf("trade before deposit: err = %v, want ErrNotActive", err)
	}
}

func TestSession_DepositActivates(t *testing.T) {
	s, g := testSession(t)
	if err := s.Deposit("10000"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if s.State() != StateActive {
		t.Errorf("state after deposit = %s, want active", s.State())
	}
	if !s.Ledger().Cash().Equal(USD(10000)) {
		t.Errorf("cash after deposit = %s, want $10,000.00", s.Ledger().Cash())
	}
	if !g.LoadInitialized() || !g.LoadCash().Equal(USD(10000)) {
		t.Error("deposit should persist the initialized flag and cash")
	}
	// A second deposit is rejected; only reset reopens the session.
	if err := s.Deposit("500"); err == nil {
		t.Error("deposit on an active session should fail")
	}
}

func TestSession_DepositValidation(t *testing.T) {
	tests := []struct {
		amount  string
		invalid bool
	}{
		{"10000", false},
		{"1000000", false},
		{"0", true},
		{"-50", true},
		{"abc", true},
		{"", true},
		{"1000000.01", true},
	}
	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			s, _ := testSession(t)
			err := s.Deposit(tc.amount)
			if tc.invalid && !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("Deposit(%q) err = %v, want ErrInvalidAmount", tc.amount, err)
			}
			if !tc.invalid && err != nil {
				t.Errorf("Deposit(%q) failed: %v", tc.amount, err)
			}
		})
	}
}

func TestSession_SubmitTradePipeline(t *testing.T) {
	s, g := testSession(t)
	at := time.UnixMilli(1_700_000_000_000)
	s.now = func() time.Time { return at }
	if err := s.Deposit("10000"); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	msg, err := s.SubmitTrade(Buy, BTC, "0.1")
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if !strings.HasPrefix(msg, "Bought 0.100000 BTC for ") {
		t.Errorf("buy confirmation = %q", msg)
	}
	if !s.Ledger().Holding(BTC).Equal(Q(0.1)) {
		t.Errorf("btc holding = %s, want 0.1", s.Ledger().Holding(BTC))
	}

	msg, err = s.SubmitTrade(Sell, BTC, "0.05")
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if !strings.Contains(msg, "fee ") || !strings.Contains(msg, "net ") {
		t.Errorf("sell confirmation should report fee and net, got %q", msg)
	}

	txs := s.History().Transactions()
	if len(txs) != 2 {
		t.Fatalf("recorded %d transactions, want 2", len(txs))
	}
	if txs[0].Side != Buy || txs[1].Side != Sell {
		t.Errorf("transaction order = %s, %s", txs[0].Side, txs[1].Side)
	}
	if !txs[0].Time.Equal(at) {
		t.Errorf("transaction time = %v, want %v", txs[0].Time, at)
	}

	// Every successful trade persists the full ledger picture.
	if !g.LoadCash().Equal(s.Ledger().Cash()) {
		t.Error("persisted cash diverged from the ledger")
	}
	if !g.LoadHoldings()[BTC].Equal(s.Ledger().Holding(BTC)) {
		t.Error("persisted holdings diverged from the ledger")
	}
	if len(g.LoadTransactions()) != 2 {
		t.Error("persisted transaction log diverged from history")
	}
}

func TestSession_FailedTradeLeavesNoTrace(t *testing.T) {
	s, g := testSession(t)
	if err := s.Deposit("100"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := s.SubmitTrade(Buy, BTC, "1"); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if len(s.History().Transactions()) != 0 {
		t.Error("failed trade must not be recorded")
	}
	if !g.LoadCash().Equal(USD(100)) {
		t.Error("failed trade must not alter persisted cash")
	}
}

func TestSession_TickAndEquitySnapshot(t *testing.T) {
	s, g := testSession(t)
	if err := s.Deposit("10000"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := s.ApplyTick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if !g.LoadPrices().Price(BTC).Equal(s.Prices().Price(BTC)) {
		t.Error("tick should persist the new price map")
	}
	s.SnapshotEquity()
	if got := g.LoadEquity(); len(got) != 1 {
		t.Fatalf("persisted %d equity samples, want 1", len(got))
	}
}

func TestSession_SnapshotEquityInactiveIsNoop(t *testing.T) {
	s, g := testSession(t)
	s.SnapshotEquity()
	if len(s.History().Equity()) != 0 || len(g.LoadEquity()) != 0 {
		t.Error("equity snapshot before a deposit should do nothing")
	}
}

func TestSession_ReopenRestoresState(t *testing.T) {
	g := testGateway(t)
	s := Open(g, nil)
	if err := s.Deposit("10000"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := s.SubmitTrade(Buy, ETH, "2"); err != nil {
		t.Fatalf("buy: %v", err)
	}

	reopened := Open(g, nil)
	if reopened.State() != StateActive {
		t.Fatalf("reopened state = %s, want active", reopened.State())
	}
	if !reopened.Initial().Equal(USD(10000)) {
		t.Errorf("reopened initial = %s, want $10,000.00", reopened.Initial())
	}
	if !reopened.Ledger().Holding(ETH).Equal(Q(2)) {
		t.Errorf("reopened eth holding = %s, want 2", reopened.Ledger().Holding(ETH))
	}
	if len(reopened.History().Transactions()) != 1 {
		t.Errorf("reopened history has %d transactions, want 1", len(reopened.History().Transactions()))
	}
}

func TestSession_Reset(t *testing.T) {
	s, g := testSession(t)
	if err := s.Deposit("10000"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := s.SubmitTrade(Buy, BTC, "0.1"); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.State() != StateAwaitingDeposit {
		t.Errorf("state after reset = %s, want awaiting-deposit", s.State())
	}
	if !s.Ledger().Cash().IsZero() || !s.Ledger().Holding(BTC).IsZero() {
		t.Error("reset should clear the ledger")
	}
	if !s.Prices().Price(BTC).Equal(NewSeedPrices().Price(BTC)) {
		t.Error("reset should return prices to their seeds")
	}
	if g.LoadInitialized() {
		t.Error("reset should clear the persisted session")
	}
	if err := s.Deposit("500"); err != nil {
		t.Errorf("deposit after reset failed: %v", err)
	}
}

func TestSession_QuoteMatchesFeeModel(t *testing.T) {
	s, _ := testSession(t)
	s.SetTier(TierHigh)
	var fees FeeModel
	want := fees.FeeFor(ETH, TierHigh, s.Prices())
	if got := s.Quote(ETH); !got.Equal(want) {
		t.Errorf("quoted fee = %s, want %s", got, want)
	}
}
