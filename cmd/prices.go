package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	fetch bool
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display current asset prices and sell fees" }
func (*pricesCmd) Usage() string {
	return `pt prices [-fetch]

  Displays the current price of every asset together with the sell fee the
  configured tier would charge. With -fetch, advances prices once first
  (a simulated step, or a live quote with -live).
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.fetch, "fetch", false, "advance prices once before reporting")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, store, err := OpenSession()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if c.fetch {
		if err := session.ApplyTick(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning, %v, using last known prices\n", err)
		}
	}

	printMarkdown(renderer.QuotesMarkdown(session.Prices(), session.Tier()))
	return subcommands.ExitSuccess
}
