// Package metadata extracts per-post metadata (line count, language, topic
// tags) from raw LinkedIn post text. The primary path asks an LLM and parses
// JSON out of its reply; transient API failures and malformed replies are
// retried with exponential backoff, and a heuristic fallback guarantees that
// every post ends up with usable metadata.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/postprep/postprep/internal/llm"
	"github.com/postprep/postprep/internal/logger"
	"github.com/postprep/postprep/internal/model"
)

// ErrNoJSON is returned when no JSON object can be found in the LLM reply.
var ErrNoJSON = errors.New("no valid JSON found in response")

// ErrInvalidMetadata is returned when the reply parses but violates the
// metadata contract (unknown language, bad line count).
var ErrInvalidMetadata = errors.New("invalid metadata in response")

const (
	maxTags        = 2
	maxPromptRunes = 1000

	defaultAttempts  = 3
	defaultBaseDelay = 5 * time.Second
)

const promptTemplate = `Extract the following information from this LinkedIn post:
- line_count: number of lines
- language: either "English" or "French"
- tags: array of maximum two relevant tags

CRITICAL: Return ONLY a valid JSON object. No explanations, no markdown, no additional text.

Post: %s

JSON:`

// Extractor asks an LLM to classify posts.
type Extractor struct {
	llm  llm.Client
	lggr logger.Logger

	attempts  uint
	baseDelay time.Duration
}

type Option func(*Extractor)

// WithAttempts overrides how many times a retryable failure is attempted.
func WithAttempts(n uint) Option {
	return func(e *Extractor) { e.attempts = n }
}

// WithBaseDelay overrides the first backoff delay (doubles each attempt).
func WithBaseDelay(d time.Duration) Option {
	return func(e *Extractor) { e.baseDelay = d }
}

func New(client llm.Client, lggr logger.Logger, opts ...Option) *Extractor {
	e := &Extractor{
		llm:       client,
		lggr:      lggr,
		attempts:  defaultAttempts,
		baseDelay: defaultBaseDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract performs a single LLM round trip and parses the reply.
func (e *Extractor) Extract(ctx context.Context, text string) (model.Metadata, error) {
	reply, err := e.llm.Complete(ctx, buildPrompt(text))
	if err != nil {
		return model.Metadata{}, err
	}

	raw := extractJSON(strings.TrimSpace(reply))
	if raw == "" {
		return model.Metadata{}, ErrNoJSON
	}

	var md model.Metadata
	if err := json.Unmarshal([]byte(raw), &md); err != nil {
		return model.Metadata{}, fmt.Errorf("%w: %s", ErrNoJSON, err)
	}

	if err := validate(md); err != nil {
		return model.Metadata{}, err
	}

	if len(md.Tags) > maxTags {
		md.Tags = md.Tags[:maxTags]
	}
	if md.Tags == nil {
		md.Tags = []string{}
	}

	return md, nil
}

// ExtractWithFallback retries Extract on transient failures and falls back to
// heuristics when every attempt fails. It never returns an error: the
// pipeline must enrich every post.
func (e *Extractor) ExtractWithFallback(ctx context.Context, text string) model.Metadata {
	md, err := retry.DoWithData(
		func() (model.Metadata, error) {
			return e.Extract(ctx, text)
		},
		retry.Context(ctx),
		retry.Attempts(e.attempts),
		retry.Delay(e.baseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(attempt uint, err error) {
			e.lggr.Warnw("metadata extraction failed, retrying",
				"attempt", attempt+1, "maxAttempts", e.attempts, "error", err)
		}),
	)
	if err != nil {
		e.lggr.Warnw("metadata extraction failed, using heuristic fallback", "error", err)
		return Fallback(text)
	}
	return md
}

// retryable reports whether the failure is worth another attempt: API
// unavailability or a malformed reply. Everything else (auth failures, bad
// requests) fails fast.
func retryable(err error) bool {
	if errors.Is(err, ErrNoJSON) || errors.Is(err, ErrInvalidMetadata) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, hint := range []string{"503", "service unavailable", "context too big", "request too large"} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

// buildPrompt truncates overlong posts (by runes) before templating, to stay
// inside the model context window.
func buildPrompt(text string) string {
	if runes := []rune(text); len(runes) > maxPromptRunes {
		text = string(runes[:maxPromptRunes]) + "..."
	}
	return fmt.Sprintf(promptTemplate, text)
}

func validate(md model.Metadata) error {
	if md.Language != "English" && md.Language != "French" {
		return fmt.Errorf("%w: language %q", ErrInvalidMetadata, md.Language)
	}
	if md.LineCount < 1 {
		return fmt.Errorf("%w: line_count %d", ErrInvalidMetadata, md.LineCount)
	}
	return nil
}
