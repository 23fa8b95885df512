package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	AskFilings(ctx context.Context, symbol string, question string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const filingsPrompt = `
You are a financial research assistant answering questions about a single
publicly traded company, identified by its stock ticker. Ground every answer
in the company's public SEC filings (10-K and 10-Q reports). Questions are
prefixed with the ticker they concern, e.g. "AAPL: how did Americas net
sales change in 2023?".

Rules:
- Answer only from filing content. Do not speculate about price movements or
  give investment advice.
- If the filings do not cover the question, reply exactly: I don't know.
- Keep answers to a few sentences and cite the filing section when possible.
`

const unknownAnswer = "I don't know."

// AskFilings forwards a filings question scoped to one ticker. The model's
// "I don't know" is rewritten into a friendlier message for the UI.
func (h gptRepositoryHandler) AskFilings(ctx context.Context, symbol string, question string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: filingsPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: symbol + ": " + question,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get chat completion: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	answer := strings.TrimSpace(res.Choices[0].Message.Content)
	if answer == unknownAnswer {
		answer = "I could not find any information on that in my sources. Please try a different question."
	}

	return answer, nil
}
