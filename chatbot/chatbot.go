// Package chatbot implements the crypto education assistant: keyword-rule
// answers with an optional Gemini fallback.
package chatbot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))
)

const prompt = "learn> "

// Chatbot is the interactive chat session around an Assistant.
type Chatbot struct {
	w         io.Writer
	r         *bufio.Reader
	Assistant *Assistant
}

// New creates a new Chatbot writing to w and reading user input from r.
func New(w io.Writer, r io.Reader, assistant *Assistant) *Chatbot {
	return &Chatbot{w: w, r: bufio.NewReader(r), Assistant: assistant}
}

// Run starts the interactive REPL session for the chatbot.
func (c *Chatbot) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(c.w, Landing)
	fmt.Fprintln(c.w, "Type 'bye' to exit.")

	for {
		fmt.Fprint(c.w, promptStyle.Render(prompt))
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(c.w, input)
		} else {
			var err error
			input, err = c.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		fmt.Fprintln(c.w, answerStyle.Render(c.Assistant.Reply(ctx, input)))
	}
}
