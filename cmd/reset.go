package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// resetCmd holds the flags for the 'reset' subcommand.
type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "wipe the session and start over" }
func (*resetCmd) Usage() string {
	return `pt reset [-f]

  Clears all persisted state: cash, positions, cost basis, prices and
  history. The next deposit starts a fresh session.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "do not ask for confirmation")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Print("This wipes the whole session. Type 'yes' to confirm: ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	session, store, err := OpenSession()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := session.Reset(); err != nil {
		return fail(err)
	}
	fmt.Println("Session reset. Run 'pt deposit <amount>' to start over.")
	return subcommands.ExitSuccess
}
