// Package explain asks a text-generation service (Gemini) for a short
// explanation of the current figure. Failures never reach the caller as
// errors; they become fixed fallback messages.
package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("explain: API key not configured")

// ClientOptions configures NewClient. BaseURL is empty in production.
type ClientOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client wraps the Gemini generateContent call.
type Client struct {
	model string
	genai *genai.Client
}

// NewClient creates a client for opts.Model. Returns nil, nil if the API
// key is empty.
func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.APIKey == "" {
		return nil, nil
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: opts.Timeout},
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = opts.BaseURL
	}

	gc, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{model: opts.Model, genai: gc}, nil
}

// Enabled returns true if the client has an API key.
func (c *Client) Enabled() bool {
	return c != nil && c.genai != nil
}

// Generate sends prompt and returns the text of the first candidate.
// An empty reply is not an error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if u := resp.UsageMetadata; u != nil {
		slog.Debug("gemini call",
			"model", c.model,
			"prompt_tokens", u.PromptTokenCount,
			"output_tokens", u.CandidatesTokenCount,
		)
	}
	return resp.Text(), nil
}
