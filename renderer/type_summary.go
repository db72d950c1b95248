package renderer

import (
	"fmt"

	"github.com/etnz/papertrade"
)

// Position is one asset row of the summary report.
type Position struct {
	Symbol   string
	Name     string
	Quantity papertrade.Quantity
	Price    papertrade.Money
	Value    papertrade.Money
	// AvgCost is the average acquisition cost, "-" when the position is flat.
	AvgCost string
}

// Summary is the data behind the summary report.
type Summary struct {
	State       string
	FeeTier     string
	Initial     papertrade.Money
	Cash        papertrade.Money
	Positions   []Position
	TotalEquity papertrade.Money
	PnL         string
	ReturnPct   string
}

// NewSummary captures a session's current state into a Summary.
func NewSummary(s *papertrade.Session) *Summary {
	prices := s.Prices()
	ledger := s.Ledger()

	sum := &Summary{
		State:       s.State().String(),
		FeeTier:     s.Tier().String(),
		Initial:     s.Initial(),
		Cash:        ledger.Cash(),
		TotalEquity: ledger.TotalEquity(prices),
	}

	for _, a := range papertrade.AllAssets() {
		qty := ledger.Holding(a)
		if qty.IsZero() {
			continue
		}
		info := a.Info()
		price := prices.Price(a)
		avg := "-"
		if c, ok := ledger.Basis(a).AvgCost(); ok {
			avg = c.String()
		}
		sum.Positions = append(sum.Positions, Position{
			Symbol:   info.Symbol,
			Name:     info.Name,
			Quantity: qty,
			Price:    price,
			Value:    price.Mul(qty),
			AvgCost:  avg,
		})
	}

	pnl := sum.TotalEquity.Sub(sum.Initial)
	sum.PnL = pnl.SignedString()
	if sum.Initial.IsPositive() {
		sum.ReturnPct = fmt.Sprintf("%+.2f%%", pnl.AsFloat()/sum.Initial.AsFloat()*100)
	} else {
		sum.ReturnPct = "-"
	}
	return sum
}

// SummaryMarkdown renders the Summary struct to a markdown string.
func SummaryMarkdown(s *Summary) string {
	partials := map[string]string{
		"summary_title":     "summary_title.md",
		"summary_positions": "summary_positions.md",
		"summary_footer":    "summary_footer.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
