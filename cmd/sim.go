package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	tickStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))
)

// simCmd holds the flags for the 'sim' subcommand.
type simCmd struct {
	interval time.Duration
	quiet    bool
}

func (*simCmd) Name() string     { return "sim" }
func (*simCmd) Synopsis() string { return "run the interactive trading desk" }
func (*simCmd) Usage() string {
	return `pt sim [-interval <d>] [-quiet]

  Runs the trading desk: prices tick on an interval (simulated walk, or
  live quotes with -live) while an interactive prompt accepts commands:

    deposit <amount>        fund a fresh session
    buy <asset> <amount>    buy at the current price
    sell <asset> <amount>   sell at the current price, minus the fee
    tier <low|medium|high>  change the sell fee tier
    prices | summary | history [equity] | reset | help | quit
`
}

func (c *simCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "interval", 3*time.Second, "price tick interval")
	f.BoolVar(&c.quiet, "quiet", false, "do not print a line on every tick")
}

func (c *simCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, store, err := OpenSession()
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	fmt.Println("Welcome to the trading desk. Type 'help' for commands, 'quit' to leave.")
	if session.State() != papertrade.StateActive {
		fmt.Println("No session yet: start with 'deposit <amount>'.")
	}

	// Reading stdin blocks, so it gets its own goroutine feeding the loop.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	fmt.Print(promptStyle.Render("pt> "))
	for {
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess

		case <-ticker.C:
			if err := session.ApplyTick(ctx); err != nil {
				fmt.Println(errStyle.Render(fmt.Sprintf("tick failed: %v", err)))
			} else if !c.quiet {
				fmt.Println(tickStyle.Render(tickLine(session)))
			}
			session.SnapshotEquity()
			fmt.Print(promptStyle.Render("pt> "))

		case line, ok := <-lines:
			if !ok {
				return subcommands.ExitSuccess // Ctrl+D
			}
			if quit := c.dispatch(session, line); quit {
				return subcommands.ExitSuccess
			}
			fmt.Print(promptStyle.Render("pt> "))
		}
	}
}

// dispatch executes one prompt line and reports whether the loop must end.
func (c *simCmd) dispatch(session *papertrade.Session, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit", "bye":
		fmt.Println("Goodbye.")
		return true

	case "help":
		fmt.Print(c.Usage())

	case "deposit":
		if len(fields) != 2 {
			fmt.Println(errStyle.Render("usage: deposit <amount>"))
			return false
		}
		if err := session.Deposit(fields[1]); err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			return false
		}
		fmt.Printf("Session funded with %s. Happy trading!\n", session.Initial())

	case "buy", "sell":
		c.trade(session, fields)

	case "tier":
		if len(fields) != 2 {
			fmt.Printf("Fee tier is %s.\n", session.Tier())
			return false
		}
		tier, err := papertrade.ParseTier(fields[1])
		if err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			return false
		}
		session.SetTier(tier)
		fmt.Printf("Fee tier set to %s.\n", tier)

	case "prices":
		printMarkdown(renderer.QuotesMarkdown(session.Prices(), session.Tier()))

	case "summary":
		printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(session)))

	case "history":
		if len(fields) > 1 && fields[1] == "equity" {
			printMarkdown(renderer.EquityMarkdown(session.History().Equity()))
		} else {
			printMarkdown(renderer.TransactionsMarkdown(session.History().Transactions()))
		}

	case "reset":
		if err := session.Reset(); err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			return false
		}
		fmt.Println("Session reset: start again with 'deposit <amount>'.")

	default:
		fmt.Println(errStyle.Render(fmt.Sprintf("unknown command %q, try 'help'", fields[0])))
	}
	return false
}

func (c *simCmd) trade(session *papertrade.Session, fields []string) {
	if len(fields) != 3 {
		fmt.Println(errStyle.Render(fmt.Sprintf("usage: %s <asset> <amount>", fields[0])))
		return
	}
	side, err := papertrade.ParseSide(fields[0])
	if err != nil {
		fmt.Println(errStyle.Render(err.Error()))
		return
	}
	asset, err := papertrade.ParseAsset(fields[1])
	if err != nil {
		fmt.Println(errStyle.Render(err.Error()))
		return
	}
	msg, err := session.SubmitTrade(side, asset, fields[2])
	if err != nil {
		fmt.Println(errStyle.Render(err.Error()))
		return
	}
	fmt.Println(msg)
}

// tickLine is the one line status printed after each price tick.
func tickLine(session *papertrade.Session) string {
	var b strings.Builder
	prices := session.Prices()
	for i, a := range papertrade.AllAssets() {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s %s", a.Info().Symbol, prices.Price(a))
	}
	if session.State() == papertrade.StateActive {
		fmt.Fprintf(&b, "  |  equity %s", session.Ledger().TotalEquity(prices))
	}
	return b.String()
}
