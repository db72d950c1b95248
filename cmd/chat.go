package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/etnz/papertrade/chatbot"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// chatCmd is the subcommand for the crypto education chatbot.
type chatCmd struct{}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "start an interactive crypto education chat" }
func (*chatCmd) Usage() string {
	return `pt chat [question...]

  Starts an interactive chat that explains crypto basics: Bitcoin, wallets,
  DeFi, staking, NFTs, safety. Keyword rules answer known topics; with
  GEMINI_API_KEY set, an AI fallback handles everything else.
`
}

func (*chatCmd) SetFlags(_ *flag.FlagSet) {}

func (c *chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = []string{strings.Join(f.Args(), " ")}
	}

	assistant := chatbot.NewAssistant()

	// The AI fallback is optional: without a key the rules still answer.
	e, err := loadEnv()
	if err != nil {
		return fail(err)
	}
	if e.GeminiKey != "" {
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			log.Printf("warning, Gemini client unavailable, keyword rules only: %v", err)
		} else if err := assistant.Start(ctx, client); err != nil {
			log.Printf("warning, Gemini chat unavailable, keyword rules only: %v", err)
		}
	}

	bot := chatbot.New(os.Stdout, os.Stdin, assistant)
	if err := bot.Run(ctx, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Chat failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
