// Package cmd implements the CLI application to run a paper trading desk.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/papertrade"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&depositCmd{}, "session")
	c.Register(&resetCmd{}, "session")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&simCmd{}, "trading")

	c.Register(&pricesCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&chatCmd{}, "assist")
	c.Register(&topicCmd{}, "assist")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeKind = flag.String("store", "", `state store backend, "dir" or "sqlite" (overrides PT_STORE)`)
var storePath = flag.String("store-path", "", "state store location (overrides PT_STORE_PATH)")
var live = flag.Bool("live", false, "tick from live CoinGecko quotes instead of the simulated walk")

// appEnv is the configuration read from the environment. A .env file in the
// working directory is honored before parsing.
type appEnv struct {
	Store        string `env:"PT_STORE" envDefault:"dir"`
	StorePath    string `env:"PT_STORE_PATH" envDefault:".papertrade"`
	FeeTier      string `env:"PT_FEE_TIER" envDefault:"medium"`
	CoinGeckoKey string `env:"COINGECKO_API_KEY"`
	GeminiKey    string `env:"GEMINI_API_KEY"`
}

func loadEnv() (appEnv, error) {
	var e appEnv
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	if *storeKind != "" {
		e.Store = *storeKind
	}
	if *storePath != "" {
		e.StorePath = *storePath
	}
	return e, nil
}

// OpenStore is the central function to open the configured state store.
func OpenStore() (papertrade.Store, error) {
	e, err := loadEnv()
	if err != nil {
		return nil, err
	}
	switch e.Store {
	case "dir":
		return papertrade.OpenDirStore(e.StorePath)
	case "sqlite":
		return papertrade.OpenSQLiteStore(e.StorePath)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want \"dir\" or \"sqlite\")", e.Store)
	}
}

// OpenSession opens the store and loads the trading session from it. The
// caller owns the returned store and must Close it.
func OpenSession() (*papertrade.Session, papertrade.Store, error) {
	e, err := loadEnv()
	if err != nil {
		return nil, nil, err
	}
	store, err := OpenStore()
	if err != nil {
		return nil, nil, err
	}

	var quoter papertrade.Quoter
	if *live {
		quoter = papertrade.NewCoinGecko(e.CoinGeckoKey)
	}

	s := papertrade.Open(papertrade.NewGateway(store), quoter)
	if tier, err := papertrade.ParseTier(e.FeeTier); err != nil {
		log.Printf("warning, %v, keeping %s", err, s.Tier())
	} else {
		s.SetTier(tier)
	}
	return s, store, nil
}

// printMarkdown renders markdown for the terminal, or falls back to the raw
// text when the renderer cannot be built.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
