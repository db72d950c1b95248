package papertrade

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// DefaultVolatility is the per-tick proportional step of the random walk.
const DefaultVolatility = 0.002

// A Quoter fetches the current USD price of every tracked asset in one
// batched call. The result must cover all assets with positive prices;
// anything less is an error and the whole tick is discarded.
type Quoter interface {
	Quotes(ctx context.Context) (map[Asset]float64, error)
}

// Feed produces price ticks, either by a bounded random walk or by polling
// a Quoter. A failed live tick keeps the previous map unchanged: callers
// always observe the most recently completed tick.
type Feed struct {
	prices     PriceMap
	volatility float64
	quoter     Quoter // nil means simulation mode
}

// NewSimFeed returns a feed in simulation mode starting from the given
// prices (nil starts from the seed prices).
func NewSimFeed(start PriceMap) *Feed {
	return &Feed{prices: startPrices(start), volatility: DefaultVolatility}
}

// NewLiveFeed returns a feed polling q for quotes, starting from the given
// prices until a first successful tick.
func NewLiveFeed(start PriceMap, q Quoter) *Feed {
	return &Feed{prices: startPrices(start), volatility: DefaultVolatility, quoter: q}
}

func startPrices(start PriceMap) PriceMap {
	prices := NewSeedPrices()
	for a := range prices {
		if p, ok := start[a]; ok && p.IsPositive() {
			prices[a] = p
		}
	}
	return prices
}

// Prices returns a snapshot of the most recently completed tick.
func (f *Feed) Prices() PriceMap { return f.prices.Clone() }

// Tick advances the feed once and returns the new price map. In live mode
// a failed fetch returns the previous map together with an error wrapping
// ErrFeedUnavailable; no partial update ever happens.
func (f *Feed) Tick(ctx context.Context) (PriceMap, error) {
	if f.quoter == nil {
		f.prices = f.walk()
		return f.Prices(), nil
	}

	quotes, err := f.quoter.Quotes(ctx)
	if err != nil {
		return f.Prices(), fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}
	next := make(PriceMap, len(quotes))
	for _, a := range AllAssets() {
		p, ok := quotes[a]
		if !ok || p <= 0 {
			return f.Prices(), fmt.Errorf("%w: no usable price for %s", ErrFeedUnavailable, a)
		}
		next[a] = USD(p)
	}
	f.prices = next
	return f.Prices(), nil
}

// walk applies one bounded random-walk step to every asset: the price moves
// by up to ±volatility of itself and never drops below half its previous
// value in a single step.
func (f *Feed) walk() PriceMap {
	next := make(PriceMap, len(f.prices))
	for a, p := range f.prices {
		prev := p.AsFloat()
		step := prev + (rand.Float64()*2-1)*f.volatility*prev
		if floor := prev * 0.5; step < floor {
			step = floor
		}
		next[a] = USD(step)
	}
	return next
}
