// Package llm provides the chat-completions client used for metadata
// extraction. Only the Groq OpenAI-compatible API is implemented; everything
// downstream depends on the Client interface so tests can inject fakes.
package llm

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/postprep/postprep/internal/config"
	"github.com/postprep/postprep/internal/model"
)

// Client completes a single-turn prompt and returns the assistant text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Groq talks to the Groq chat-completions endpoint.
type Groq struct {
	client *resty.Client
	model  string
}

// NewGroq builds a client from config. The API key is sent as a bearer token.
func NewGroq(cfg config.Config) *Groq {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return &Groq{client: c, model: cfg.Model}
}

// Complete sends the prompt as a single user message. Non-2xx responses are
// returned as errors carrying the HTTP status and the API error message, so
// callers can classify them for retry.
func (g *Groq) Complete(ctx context.Context, prompt string) (string, error) {
	req := model.ChatRequest{
		Model: g.model,
		Messages: []model.ChatMessage{
			{Role: "user", Content: prompt},
		},
	}

	var out model.ChatResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}

	if resp.IsError() {
		msg := string(resp.Body())
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("chat completion: %s: %s", resp.Status(), msg)
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completion: response has no choices")
	}

	return out.Choices[0].Message.Content, nil
}
