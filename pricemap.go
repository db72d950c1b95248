package papertrade

import "maps"

// PriceMap maps every tracked asset to its current USD price. Lookups for a
// missing entry fall back to the seed price, so a price is never absent.
type PriceMap map[Asset]Money

// NewSeedPrices returns a price map filled with the seed values.
func NewSeedPrices() PriceMap {
	m := make(PriceMap, len(seedPrices))
	for a, p := range seedPrices {
		m[a] = USD(p)
	}
	return m
}

// Price returns the price of the asset, or its seed value if the map has no
// entry for it.
func (m PriceMap) Price(a Asset) Money {
	if p, ok := m[a]; ok && p.IsPositive() {
		return p
	}
	return USD(seedPrices[a])
}

// Clone returns an independent copy of the map.
func (m PriceMap) Clone() PriceMap {
	out := make(PriceMap, len(m))
	maps.Copy(out, m)
	return out
}
