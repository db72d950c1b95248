package cmd

import (
	"context"
	"flag"

	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	equity bool
	tail   int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recorded transactions or equity samples" }
func (*historyCmd) Usage() string {
	return `pt history [-equity] [-tail <n>]

  Lists the recorded transactions, oldest first. With -equity, lists the
  equity samples instead. Both logs are bounded; old entries roll off.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.equity, "equity", false, "show the equity log instead of transactions")
	f.IntVar(&c.tail, "tail", 0, "show only the last N entries")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, store, err := OpenSession()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if c.equity {
		points := session.History().Equity()
		if c.tail > 0 && c.tail < len(points) {
			points = points[len(points)-c.tail:]
		}
		printMarkdown(renderer.EquityMarkdown(points))
		return subcommands.ExitSuccess
	}

	txs := session.History().Transactions()
	if c.tail > 0 && c.tail < len(txs) {
		txs = txs[len(txs)-c.tail:]
	}
	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
