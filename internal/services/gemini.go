package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"resumelens/resume-evaluator/internal/config"
)

// ModelClient is the single remote collaborator of the pipeline: one prompt
// in, one text completion out. Model name and sampling temperature come from
// configuration. Transport and auth errors propagate to the caller; there is
// no retry or backoff here.
type ModelClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiClient(cfg config.LLMConfig) (ModelClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateText implements ModelClient.
func (g *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	generationConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), generationConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
