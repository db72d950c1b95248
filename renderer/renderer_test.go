package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/papertrade"
)

func activeSession(t *testing.T) *papertrade.Session {
	t.Helper()
	store, err := papertrade.OpenDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDirStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	s := papertrade.Open(papertrade.NewGateway(store), nil)
	if err := s.Deposit("10000"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	return s
}

func TestSummaryMarkdown(t *testing.T) {
	s := activeSession(t)
	if _, err := s.SubmitTrade(papertrade.Buy, papertrade.BTC, "0.1"); err != nil {
		t.Fatalf("buy: %v", err)
	}

	got := SummaryMarkdown(NewSummary(s))
	for _, want := range []string{
		"# Trading Summary",
		"fee tier **medium**",
		"BTC (Bitcoin)",
		"Cash: $5,680.00",
		"Total equity: **$10,000.00**",
		"+0.00% since inception",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_NoPositions(t *testing.T) {
	got := SummaryMarkdown(NewSummary(activeSession(t)))
	if !strings.Contains(got, "No open positions.") {
		t.Errorf("flat summary should say so:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	txs := []papertrade.Transaction{{
		Time: at, Side: papertrade.Buy, Asset: papertrade.ETH,
		Quantity: papertrade.Q(2), Price: papertrade.USD(2280), USD: papertrade.USD(4560),
	}}
	got := TransactionsMarkdown(txs)
	for _, want := range []string{"# Transactions", "Mar 14 09:26:53", "buy", "ETH", "$2,280.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("transactions missing %q:\n%s", want, got)
		}
	}
	if got := TransactionsMarkdown(nil); !strings.Contains(got, "No transactions yet.") {
		t.Errorf("empty log should say so:\n%s", got)
	}
}

func TestEquityMarkdown(t *testing.T) {
	points := []papertrade.EquityPoint{
		{Time: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC), Value: papertrade.USD(10210)},
	}
	got := EquityMarkdown(points)
	for _, want := range []string{"# Equity History", "$10,210.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("equity history missing %q:\n%s", want, got)
		}
	}
}

func TestQuotesMarkdown(t *testing.T) {
	got := QuotesMarkdown(papertrade.NewSeedPrices(), papertrade.TierHigh)
	for _, want := range []string{"# Market Prices", "Sell Fee (high)", "BTC (Bitcoin)", "DOGE (Dogecoin)", "$0.0820"} {
		if !strings.Contains(got, want) {
			t.Errorf("quotes missing %q:\n%s", want, got)
		}
	}
}
