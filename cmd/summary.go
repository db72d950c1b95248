package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	tick bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display cash, positions and total equity" }
func (*summaryCmd) Usage() string {
	return `pt summary [-tick]

  Displays the session summary: cash, open positions at current prices and
  total equity against the initial deposit.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.tick, "tick", false, "advance prices once before reporting")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, store, err := OpenSession()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if session.State() != papertrade.StateActive {
		fmt.Println("No session yet. Run 'pt deposit <amount>' to start one.")
		return subcommands.ExitSuccess
	}

	if c.tick {
		if err := session.ApplyTick(ctx); err != nil {
			fmt.Println("warning, price update failed, using last known prices")
		}
		session.SnapshotEquity()
	}

	printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(session)))
	return subcommands.ExitSuccess
}
