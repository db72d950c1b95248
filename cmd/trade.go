package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/papertrade"
	"github.com/google/subcommands"
)

// tradeCmd is the shared implementation of the 'buy' and 'sell' subcommands.
type tradeCmd struct {
	side papertrade.Side
	tier string
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	if c.side == papertrade.Sell {
		f.StringVar(&c.tier, "tier", "", "fee tier for this sell (low, medium, high); overrides PT_FEE_TIER")
	}
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: %s takes an asset and an amount.\n", c.side)
		return subcommands.ExitUsageError
	}
	asset, err := papertrade.ParseAsset(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	session, store, err := OpenSession()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if c.tier != "" {
		tier, err := papertrade.ParseTier(c.tier)
		if err != nil {
			return fail(err)
		}
		session.SetTier(tier)
	}

	msg, err := session.SubmitTrade(c.side, asset, f.Arg(1))
	if err != nil {
		return fail(err)
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}

type buyCmd struct{ tradeCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy an amount of an asset at the current price" }
func (*buyCmd) Usage() string {
	return `pt buy <asset> <amount>

  Buys the given amount of an asset at its current price. Buys carry no fee.

Usage Examples:
$ pt buy btc 0.1
`
}
func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.side = papertrade.Buy
	c.tradeCmd.SetFlags(f)
}

type sellCmd struct{ tradeCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell an amount of an asset at the current price" }
func (*sellCmd) Usage() string {
	return `pt sell [-tier <tier>] <asset> <amount>

  Sells the given amount of an asset at its current price. A network fee for
  the selected tier is deducted from the proceeds.

Usage Examples:
$ pt sell eth 1.5
$ pt sell -tier high btc 0.05
`
}
func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	c.side = papertrade.Sell
	c.tradeCmd.SetFlags(f)
}
