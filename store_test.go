package papertrade

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	dir, err := OpenDirStore(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("OpenDirStore: %v", err)
	}
	db, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	t.Cleanup(func() { dir.Close(); db.Close() })
	return map[string]Store{"dir": dir, "sqlite": db}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get(keyCash); !errors.Is(err, ErrKeyNotFound) {
				t.Fatalf("get of absent key: err = %v, want ErrKeyNotFound", err)
			}
			if err := s.Put(keyCash, []byte("10000")); err != nil {
				t.Fatalf("put: %v", err)
			}
			got, err := s.Get(keyCash)
			if err != nil || string(got) != "10000" {
				t.Fatalf("get = %q, %v; want \"10000\", nil", got, err)
			}
			// Overwrite wins.
			if err := s.Put(keyCash, []byte("5680")); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			if got, _ := s.Get(keyCash); string(got) != "5680" {
				t.Fatalf("get after overwrite = %q, want \"5680\"", got)
			}
			if err := s.Reset(); err != nil {
				t.Fatalf("reset: %v", err)
			}
			if _, err := s.Get(keyCash); !errors.Is(err, ErrKeyNotFound) {
				t.Fatalf("get after reset: err = %v, want ErrKeyNotFound", err)
			}
		})
	}
}

func testGateway(t *testing.T) *Gateway {
	t.Helper()
	s, err := OpenDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDirStore: %v", err)
	}
	return NewGateway(s)
}

func TestGateway_FreshStoreYieldsDefaults(t *testing.T) {
	g := testGateway(t)
	if !g.LoadCash().IsZero() {
		t.Errorf("cash default = %s, want $0.00", g.LoadCash())
	}
	if g.LoadInitialized() {
		t.Error("initialized default should be false")
	}
	holdings := g.LoadHoldings()
	for _, a := range AllAssets() {
		if !holdings[a].IsZero() {
			t.Errorf("%s holding default = %s, want 0", a, holdings[a])
		}
	}
	seeds := NewSeedPrices()
	prices := g.LoadPrices()
	for _, a := range AllAssets() {
		if !prices.Price(a).Equal(seeds.Price(a)) {
			t.Errorf("%s price default = %s, want seed %s", a, prices.Price(a), seeds.Price(a))
		}
	}
	if len(g.LoadEquity()) != 0 || len(g.LoadTransactions()) != 0 {
		t.Error("history defaults should be empty")
	}
}

func TestGateway_CorruptedValueFallsBackToDefault(t *testing.T) {
	s, err := OpenDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDirStore: %v", err)
	}
	g := NewGateway(s)
	s.Put(keyCash, []byte("not a number"))
	s.Put(keyHoldings, []byte("{broken json"))
	s.Put(keyInitialized, []byte("maybe"))

	if !g.LoadCash().IsZero() {
		t.Errorf("corrupted cash should load as $0.00, got %s", g.LoadCash())
	}
	if !g.LoadHoldings()[BTC].IsZero() {
		t.Error("corrupted holdings should load zero-filled")
	}
	if g.LoadInitialized() {
		t.Error("corrupted flag should load as false")
	}
}

func TestGateway_RoundTrips(t *testing.T) {
	g := testGateway(t)

	g.SaveCash(USD(5680))
	if !g.LoadCash().Equal(USD(5680)) {
		t.Errorf("cash round-trip = %s, want $5,680.00", g.LoadCash())
	}

	g.SaveInitialized(true)
	if !g.LoadInitialized() {
		t.Error("initialized flag round-trip lost")
	}

	g.SaveHoldings(map[Asset]Quantity{BTC: Q(0.1)})
	holdings := g.LoadHoldings()
	if !holdings[BTC].Equal(Q(0.1)) || !holdings[ETH].IsZero() {
		t.Errorf("holdings round-trip = %v", holdings)
	}

	g.SaveCostBasis(map[Asset]CostBasis{BTC: {TotalCost: USD(4320), TotalQty: Q(0.1)}})
	basis := g.LoadCostBasis()
	if !basis[BTC].TotalCost.Equal(USD(4320)) {
		t.Errorf("cost basis round-trip = %v", basis[BTC])
	}

	// Persisted non-positive prices are ignored in favor of seeds.
	g.SavePrices(PriceMap{BTC: USD(44000), ETH: USD(0)})
	prices := g.LoadPrices()
	if !prices.Price(BTC).Equal(USD(44000)) {
		t.Errorf("btc price round-trip = %s", prices.Price(BTC))
	}
	if !prices.Price(ETH).Equal(NewSeedPrices().Price(ETH)) {
		t.Errorf("non-positive eth price should fall back to seed, got %s", prices.Price(ETH))
	}

	at := time.UnixMilli(1_700_000_123_456)
	g.SaveEquity([]EquityPoint{{Time: at, Value: USD(10210)}})
	equity := g.LoadEquity()
	if len(equity) != 1 || !equity[0].Time.Equal(at) || !equity[0].Value.Equal(USD(10210)) {
		t.Errorf("equity round-trip = %v", equity)
	}

	g.SaveTransactions([]Transaction{{
		Time: at, Side: Sell, Asset: ETH,
		Quantity: Q(1.5), Price: USD(2280), USD: USD(3418.08),
	}})
	txs := g.LoadTransactions()
	if len(txs) != 1 || txs[0].Side != Sell || !txs[0].Quantity.Equal(Q(1.5)) {
		t.Errorf("transaction round-trip = %v", txs)
	}
	if !txs[0].Time.Equal(at) {
		t.Errorf("transaction time = %v, want %v (millisecond precision)", txs[0].Time, at)
	}
}
