package papertrade

import (
	"context"
	"errors"
	"testing"
)

// stubQuoter is a Quoter returning canned quotes or a canned error.
type stubQuoter struct {
	quotes map[Asset]float64
	err    error
}

func (s stubQuoter) Quotes(context.Context) (map[Asset]float64, error) {
	return s.quotes, s.err
}

func TestFeed_WalkStaysBounded(t *testing.T) {
	f := NewSimFeed(nil)
	prev := f.Prices()
	for i := 0; i < 500; i++ {
		next, err := f.Tick(context.Background())
		if err != nil {
			t.Fatalf("simulation tick returned error: %v", err)
		}
		for _, a := range AllAssets() {
			p, q := prev.Price(a).AsFloat(), next.Price(a).AsFloat()
			if q <= 0 {
				t.Fatalf("tick %d: %s price %v is not positive", i, a, q)
			}
			lo := p * (1 - DefaultVolatility)
			if floor := p * 0.5; lo < floor {
				lo = floor
			}
			hi := p * (1 + DefaultVolatility)
			const eps = 1e-9
			if q < lo*(1-eps) || q > hi*(1+eps) {
				t.Fatalf("tick %d: %s moved %v -> %v, outside [%v, %v]", i, a, p, q, lo, hi)
			}
		}
		prev = next
	}
}

func TestFeed_StartPricesMergeOverSeeds(t *testing.T) {
	f := NewSimFeed(PriceMap{BTC: USD(50000)})
	got := f.Prices()
	if !got.Price(BTC).Equal(USD(50000)) {
		t.Errorf("btc start price = %s, want $50,000.00", got.Price(BTC))
	}
	if !got.Price(ETH).Equal(NewSeedPrices().Price(ETH)) {
		t.Errorf("eth should fall back to its seed price, got %s", got.Price(ETH))
	}
}

func TestFeed_LiveTickReplacesWholeMap(t *testing.T) {
	q := stubQuoter{quotes: map[Asset]float64{BTC: 44000, ETH: 2300, SOL: 101, DOGE: 0.09}}
	f := NewLiveFeed(nil, q)
	got, err := f.Tick(context.Background())
	if err != nil {
		t.Fatalf("live tick failed: %v", err)
	}
	if !got.Price(SOL).Equal(USD(101)) {
		t.Errorf("sol price = %s, want $101.00", got.Price(SOL))
	}
}

func TestFeed_LiveFailureKeepsPreviousMap(t *testing.T) {
	tests := []struct {
		name string
		q    Quoter
	}{
		{"fetch error", stubQuoter{err: errors.New("gateway timeout")}},
		{"missing asset", stubQuoter{quotes: map[Asset]float64{BTC: 44000}}},
		{"non-positive price", stubQuoter{quotes: map[Asset]float64{BTC: 44000, ETH: 0, SOL: 101, DOGE: 0.09}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewLiveFeed(nil, tc.q)
			before := f.Prices()
			got, err := f.Tick(context.Background())
			if !errors.Is(err, ErrFeedUnavailable) {
				t.Fatalf("err = %v, want ErrFeedUnavailable", err)
			}
			for _, a := range AllAssets() {
				if !got.Price(a).Equal(before.Price(a)) {
					t.Errorf("%s price changed on a failed tick: %s -> %s", a, before.Price(a), got.Price(a))
				}
			}
		})
	}
}
