package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/papertrade"
	md "github.com/nao1215/markdown"
)

// QuotesMarkdown renders the current price of every asset, with the sell
// fee the given tier would charge right now.
func QuotesMarkdown(prices papertrade.PriceMap, tier papertrade.Tier) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Prices")

	var fees papertrade.FeeModel
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Price", fmt.Sprintf("Sell Fee (%s)", tier)},
		Rows:   [][]string{},
	}
	for _, a := range papertrade.AllAssets() {
		info := a.Info()
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%s (%s)", info.Symbol, info.Name),
			prices.Price(a).String(),
			fees.FeeFor(a, tier, prices).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
