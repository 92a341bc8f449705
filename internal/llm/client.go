package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	kitllm "github.com/anatolykoptev/go-kit/llm"

	"github.com/JT6820/TutorialTube/internal/metrics"
)

// Completer turns a prompt into a text completion. The output is untrusted
// text and must be decoded by the caller.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to the Completer interface
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Options configures the OpenAI-compatible completion client
type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Client calls an OpenAI-compatible chat completion API (Groq, OpenAI, Ollama)
type Client struct {
	model    string
	complete func(ctx context.Context, prompt string) (string, error)
}

// NewClient creates a completion client
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	c := kitllm.NewClient(opts.BaseURL, opts.APIKey, opts.Model,
		kitllm.WithMaxTokens(opts.MaxTokens),
		kitllm.WithTemperature(opts.Temperature),
		kitllm.WithHTTPClient(&http.Client{Timeout: timeout}),
	)

	return &Client{
		model: opts.Model,
		complete: func(ctx context.Context, prompt string) (string, error) {
			return c.Complete(ctx, "", prompt)
		},
	}
}

// Complete sends one prompt and returns the raw completion text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	metrics.IncrLLMCall()
	start := time.Now()

	text, err := c.complete(ctx, prompt)
	if err != nil {
		metrics.IncrLLMError()
		return "", fmt.Errorf("completion (%s): %w", c.model, err)
	}

	slog.Debug("completion finished",
		slog.String("model", c.model),
		slog.Int("chars", len(text)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}
