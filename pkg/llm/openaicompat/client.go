package openaicompat

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"ai-resume-backend/pkg/apperror"
	"ai-resume-backend/pkg/llm"
)

// Client talks to any OpenAI-compatible chat completions endpoint.
// By default it points at Gemini's compatibility layer.
type Client struct {
	client *openai.Client
	Model  string
}

func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		Model:  model,
	}
}

// Complete performs a single chat completion. No retries: provider errors
// propagate to the caller unmodified.
func (c *Client) Complete(ctx context.Context, messages []llm.Message, maxTokens int) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.Model,
		Messages:  msgs,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", apperror.Wrap(apperror.Model, "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperror.New(apperror.Model, "no choices returned by model")
	}
	if resp.Choices[0].Message.Content == "" {
		return "", apperror.New(apperror.Model, "empty content returned by model")
	}
	return resp.Choices[0].Message.Content, nil
}
