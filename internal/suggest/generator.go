package suggest

import (
	"context"

	"gitscribe/internal/llm"
)

// ClientGenerator adapts an llm.Client to the engine's Generator contract.
type ClientGenerator struct {
	Client llm.Client
	Model  string
}

func (g ClientGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.Client.Chat(ctx, llm.ChatRequest{
		Model:       g.Model,
		Temperature: 0.3,
		Messages: []llm.Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
