package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/papertrade"
	md "github.com/nao1215/markdown"
)

// timeFormat keeps timestamps short, history rows are recent by construction.
const timeFormat = "Jan 02 15:04:05"

// TransactionsMarkdown renders the transaction log as a markdown table,
// newest last.
func TransactionsMarkdown(txs []papertrade.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Time", "Type", "Asset", "Amount", "Price", "USD"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Time.Format(timeFormat),
			string(tx.Side),
			tx.Asset.Info().Symbol,
			tx.Quantity.String(),
			tx.Price.String(),
			tx.USD.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// EquityMarkdown renders the equity log as a markdown table, newest last.
func EquityMarkdown(points []papertrade.EquityPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Equity History")
	if len(points) == 0 {
		doc.PlainText("No equity samples yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Time", "Equity"},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Time.Format(timeFormat),
			p.Value.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Transaction renders a single transaction to a one line string.
func Transaction(tx papertrade.Transaction) string {
	symbol := tx.Asset.Info().Symbol
	switch tx.Side {
	case papertrade.Buy:
		return fmt.Sprintf("%s Bought %s %s at %s", tx.Time.Format(time.Kitchen), tx.Quantity, symbol, tx.Price)
	case papertrade.Sell:
		return fmt.Sprintf("%s Sold %s %s at %s for %s net", tx.Time.Format(time.Kitchen), tx.Quantity, symbol, tx.Price, tx.USD)
	default:
		return fmt.Sprintf("%s %s %s %s", tx.Time.Format(time.Kitchen), tx.Side, tx.Quantity, symbol)
	}
}
