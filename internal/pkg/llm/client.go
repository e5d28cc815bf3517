package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("llm client not configured")

type Client struct {
	Model   string
	BaseURL string
	client  *openai.Client
}

// NewClient talks to any OpenAI-compatible endpoint. An empty apiKey yields a
// client whose calls fail with ErrNotConfigured.
func NewClient(apiKey string, model string, baseURL string) *Client {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	c := &Client{
		Model:   model,
		BaseURL: baseURL,
	}
	if apiKey == "" {
		return c
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	c.client = openai.NewClientWithConfig(config)
	return c
}

func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Chat returns the assistant's plain-text reply to messages.
func (c *Client) Chat(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.Model,
			Messages:    messages,
			Temperature: 0.5,
			TopP:        0.95,
			MaxTokens:   800,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("openai returned empty response")
	}

	return text, nil
}
