package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct{}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "start a session with an initial USD deposit" }
func (*depositCmd) Usage() string {
	return `pt deposit <amount>

  Starts a new trading session funded with the given USD amount. A session
  can only be funded once; use 'pt reset' to start over.

Usage Examples:
$ pt deposit 10000
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: deposit takes exactly one amount argument.")
		return subcommands.ExitUsageError
	}

	session, store, err := OpenSession()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := session.Deposit(f.Arg(0)); err != nil {
		return fail(err)
	}
	fmt.Printf("Session funded with %s. Happy trading!\n", session.Initial())
	return subcommands.ExitSuccess
}
