package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JT6820/TutorialTube/internal/types"
)

// Client calls a Tutorial Tube server. It satisfies session.Backend.
type Client struct {
	baseURL string
	timeout time.Duration
}

// New creates a client for the server at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Transcribe posts the URL to /api/transcribe
func (c *Client) Transcribe(ctx context.Context, url string) (*types.TranscriptionResult, error) {
	var result types.TranscriptionResult
	if err := c.post(ctx, "/api/transcribe", fiber.Map{"url": url}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateTutorial posts the transcription to /api/generate-tutorial
func (c *Client) GenerateTutorial(ctx context.Context, req types.TutorialRequest) (*types.TutorialResponse, error) {
	var resp types.TutorialResponse
	if err := c.post(ctx, "/api/generate-tutorial", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post sends body as JSON and decodes a 200 response into out. Any other
// status becomes an error carrying the server's message.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	agent := fiber.Post(c.baseURL + path).JSON(body)
	if c.timeout > 0 {
		agent.Timeout(c.timeout)
	}

	status, data, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("post %s: %w", path, errors.Join(errs...))
	}

	if status != fiber.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("post %s: unexpected status %d", path, status)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
