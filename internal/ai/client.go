package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/meagherphilip/blogsmith/internal/config"
)

// Client is the hosted model behind the generation pipeline. A single
// prompt in, the model's text out.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// GeminiClient talks to the Gemini API
type GeminiClient struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// NewGemini creates a Gemini-backed client. A missing API key is not an
// error here; the first Complete call fails instead.
func NewGemini(ctx context.Context, cfg *config.AIConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		model:     cfg.Model,
		maxTokens: int32(cfg.MaxTokens),
	}, nil
}

// Complete sends one prompt and returns the model's text response
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			// slightly higher temperature for more personality
			Temperature:     genai.Ptr[float32](0.75),
			MaxOutputTokens: c.maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("model returned empty response")
	}
	return text, nil
}

// Model returns the configured model name
func (c *GeminiClient) Model() string {
	return c.model
}
