package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JT6820/TutorialTube/internal/session"
	"github.com/JT6820/TutorialTube/internal/types"
)

var _ session.Backend = (*Client)(nil)

// serve starts app on a loopback listener and returns its base URL
func serve(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestClientRoundTrip(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/api/transcribe", func(c *fiber.Ctx) error {
		var req struct {
			URL string `json:"url"`
		}
		require.NoError(t, c.BodyParser(&req))
		assert.Equal(t, "https://youtu.be/abc", req.URL)
		return c.JSON(types.TranscriptionResult{
			VideoInfo:  types.VideoInfo{Title: "How to Build a React App"},
			Summary:    "s",
			KeyTopics:  []string{"React"},
			Transcript: "t",
			Source:     types.SourceLive,
		})
	})
	app.Post("/api/generate-tutorial", func(c *fiber.Ctx) error {
		var req types.TutorialRequest
		require.NoError(t, c.BodyParser(&req))
		assert.Equal(t, "t", req.Transcript)
		assert.Equal(t, "How to Build a React App", req.VideoTitle)
		return c.JSON(types.TutorialResponse{
			Tutorial: types.Tutorial{Title: "Tutorial", Steps: []types.Step{{StepNumber: 1, Title: "a", Description: "b"}}},
			Source:   types.SourceFallback,
		})
	})

	c := New(serve(t, app)+"/", 5*time.Second)
	s := session.New(c)

	require.NoError(t, s.Transcribe(context.Background(), "https://youtu.be/abc"))
	require.NoError(t, s.GenerateTutorial(context.Background()))

	v := s.View()
	assert.Equal(t, session.StateTutorialReady, v.State)
	assert.Equal(t, "Tutorial", v.Tutorial.Title)
	assert.Equal(t, types.SourceFallback, v.TutorialSource)
}

func TestClientCarriesServerMessage(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/api/transcribe", func(c *fiber.Ctx) error {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid YouTube URL", "code": "ERR_INVALID_URL"})
	})
	app.Post("/api/generate-tutorial", func(c *fiber.Ctx) error {
		return c.Status(502).SendString("bad gateway")
	})

	c := New(serve(t, app), 5*time.Second)

	_, err := c.Transcribe(context.Background(), "https://example.com")
	require.EqualError(t, err, "Invalid YouTube URL")

	_, err = c.GenerateTutorial(context.Background(), types.TutorialRequest{Transcript: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestClientCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("http://127.0.0.1:1", time.Second).Transcribe(ctx, "https://youtu.be/abc")
	assert.ErrorIs(t, err, context.Canceled)
}
