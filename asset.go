package papertrade

import (
	"fmt"
	"strings"
)

// Asset identifies one of the tracked coins. The set is fixed at process
// start; there is no way to declare new assets at runtime.
type Asset string

const (
	BTC  Asset = "btc"
	ETH  Asset = "eth"
	SOL  Asset = "sol"
	DOGE Asset = "doge"
)

// AssetInfo carries the display metadata of an asset.
type AssetInfo struct {
	Symbol  string // short display symbol, e.g. "BTC"
	Name    string // human readable name, e.g. "Bitcoin"
	QuoteID string // id used by the quote provider, e.g. "bitcoin"
}

var assetInfos = map[Asset]AssetInfo{
	BTC:  {Symbol: "BTC", Name: "Bitcoin", QuoteID: "bitcoin"},
	ETH:  {Symbol: "ETH", Name: "Ethereum", QuoteID: "ethereum"},
	SOL:  {Symbol: "SOL", Name: "Solana", QuoteID: "solana"},
	DOGE: {Symbol: "DOGE", Name: "Dogecoin", QuoteID: "dogecoin"},
}

// seed prices used before a first tick, and as the fallback value for a
// price map missing an entry.
var seedPrices = map[Asset]float64{
	BTC:  43200,
	ETH:  2280,
	SOL:  98,
	DOGE: 0.082,
}

// AllAssets returns the tracked assets in display order.
func AllAssets() []Asset { return []Asset{BTC, ETH, SOL, DOGE} }

// Info returns the display metadata of the asset.
func (a Asset) Info() AssetInfo { return assetInfos[a] }

func (a Asset) String() string { return string(a) }

// ParseAsset resolves a user-typed asset name: the short id ("btc"), the
// display symbol ("BTC") or the quote id ("bitcoin"), case-insensitive.
func ParseAsset(s string) (Asset, error) {
	q := strings.ToLower(strings.TrimSpace(s))
	for a, info := range assetInfos {
		if q == string(a) || q == strings.ToLower(info.Symbol) || q == info.QuoteID {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown asset %q", s)
}
