package chatbot

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const modelName = "gemini-2.0-flash"

const systemPrompt = `You are a friendly crypto education assistant for beginners. Answer concisely and clearly in plain language. Focus on: what things are, how they work, and practical tips (e.g. security, not your keys not your coins). Keep answers to 2-4 short paragraphs. Do not give financial advice or price predictions.

If the user's question is not at all about cryptocurrency, blockchain, or related topics (e.g. investing in crypto, wallets, DeFi, NFTs, tokens), you must respond with exactly and only this line, with no other text: ` + offTopicSentinel

// Assistant answers crypto education questions. Keyword rules answer first;
// a Gemini chat, when available, handles everything the rules miss.
type Assistant struct {
	chat *genai.Chat
}

// NewAssistant returns an assistant without an AI fallback; unmatched
// questions get the static fallback response.
func NewAssistant() *Assistant { return &Assistant{} }

// Start creates the Gemini chat used as the fallback.
func (a *Assistant) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	chat, err := client.Chats.Create(ctx, modelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Reply answers one user message. Matching keyword rules are combined into a
// single message; otherwise the AI fallback is asked, and a detected
// off-topic question gets the standard redirect.
func (a *Assistant) Reply(ctx context.Context, input string) string {
	if matches := matchResponses(input); len(matches) > 0 {
		return combine(matches)
	}
	if answer, err := a.ask(ctx, input); err == nil && answer != "" {
		if strings.Contains(answer, offTopicSentinel) {
			return offTopicResponse
		}
		return answer
	}
	return fallbackNoMatch
}

func (a *Assistant) ask(ctx context.Context, input string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("no AI fallback configured")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: strings.TrimSpace(input)})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from the assistant")
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}
