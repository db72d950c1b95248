package papertrade

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is the user-selected priority level for a sell. Higher tiers pay
// the network faster and cost more.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseTier parses a string into a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "low":
		return TierLow, nil
	case "medium":
		return TierMedium, nil
	case "high":
		return TierHigh, nil
	default:
		return 0, fmt.Errorf("unknown fee tier %q", s)
	}
}

// Fee schedule constants. Each asset is fee-denominated in its own native
// unit and converted to USD at the live price when the fee is computed.
const (
	ethGasUnits = 21000 // gas of a plain transfer
	btcTxVBytes = 140   // virtual size of a typical 1-in 2-out transaction
)

// gwei per gas by tier.
var ethGasPrice = map[Tier]float64{TierLow: 25, TierMedium: 40, TierHigh: 60}

// satoshi per virtual byte by tier.
var btcSatPerVByte = map[Tier]float64{TierLow: 8, TierMedium: 20, TierHigh: 45}

// flat native-unit fees, tier-independent.
var flatFees = map[Asset]float64{
	SOL:  0.000005, // one signature
	DOGE: 0.01,
}

// FeeModel computes the USD transaction fee charged on a sell.
//
// The fee is taken at the live price of the asset at execution time, so the
// amount can differ from a quote displayed before a tick. That drift is
// accepted; prices are not locked between quote and execution.
type FeeModel struct{}

// FeeFor returns the sell fee for the asset at the given tier and prices.
func (FeeModel) FeeFor(a Asset, tier Tier, prices PriceMap) Money {
	price := prices.Price(a)
	switch a {
	case ETH:
		// gas × gwei, gwei is 1e-9 ETH.
		gwei := decimal.NewFromFloat(ethGasPrice[tier]).Mul(decimal.NewFromInt(ethGasUnits))
		return price.Mul(Q(gwei.Shift(-9)))
	case BTC:
		// vbytes × sat/vB, 1e8 satoshi per BTC.
		sat := decimal.NewFromFloat(btcSatPerVByte[tier]).Mul(decimal.NewFromInt(btcTxVBytes))
		return price.Mul(Q(sat.Shift(-8)))
	default:
		return price.Mul(Q(decimal.NewFromFloat(flatFees[a])))
	}
}
