package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/JT6820/TutorialTube/internal/metrics"
	"github.com/JT6820/TutorialTube/internal/session"
	"github.com/JT6820/TutorialTube/internal/tutorial"
	"github.com/JT6820/TutorialTube/internal/types"
)

// firstFrameTimeout bounds how long a client may wait before sending its URL
const firstFrameTimeout = 30 * time.Second

// StreamHandler drives one session per WebSocket connection and pushes
// every state change to the client
type StreamHandler struct {
	svc *tutorial.Service
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(svc *tutorial.Service) *StreamHandler {
	return &StreamHandler{
		svc: svc,
	}
}

// StreamRequest is the optional JSON form of the first frame
type StreamRequest struct {
	URL string `json:"url"`
}

// Handle processes WebSocket connections
func (h *StreamHandler) Handle(c *websocket.Conn) {
	defer c.Close()

	id := uuid.NewString()
	log := slog.With(slog.String("session_id", id))
	metrics.IncrStreamSession()

	_ = c.SetReadDeadline(time.Now().Add(firstFrameTimeout))
	messageType, message, err := c.ReadMessage()
	if err != nil {
		log.Warn("stream closed before a url was sent", slog.Any("error", err))
		return
	}
	if messageType != websocket.TextMessage {
		h.send(c, log, session.View{State: session.StateError, Error: "Expected a text frame with the URL"})
		return
	}

	url := parseStreamURL(message)
	log.Info("stream session started", slog.String("url", url))

	sess := session.New(serviceBackend{h.svc}, session.WithOnChange(func(v session.View) {
		h.send(c, log, v)
	}))

	ctx := context.Background()
	if err := sess.Transcribe(ctx, url); err != nil {
		if errors.Is(err, session.ErrEmptyURL) {
			h.send(c, log, session.View{State: session.StateError, Error: "URL is required"})
		}
		return
	}
	if err := sess.GenerateTutorial(ctx); err != nil {
		return
	}

	log.Info("stream session finished", slog.String("source", sess.View().TutorialSource))
}

func (h *StreamHandler) send(c *websocket.Conn, log *slog.Logger, v session.View) {
	if err := c.WriteJSON(v); err != nil {
		log.Warn("stream write failed", slog.Any("error", err))
	}
}

// parseStreamURL accepts either the bare URL or {"url": "..."}
func parseStreamURL(message []byte) string {
	text := strings.TrimSpace(string(message))
	if strings.HasPrefix(text, "{") {
		var req StreamRequest
		if err := json.Unmarshal([]byte(text), &req); err == nil {
			return req.URL
		}
	}
	return text
}

// serviceBackend runs a session against the in-process pipeline. Errors
// carry the same messages the HTTP endpoints return.
type serviceBackend struct {
	svc *tutorial.Service
}

func (b serviceBackend) Transcribe(ctx context.Context, url string) (*types.TranscriptionResult, error) {
	result, err := b.svc.Transcribe(ctx, url)
	if err != nil {
		return nil, publicError(err, "Failed to transcribe video")
	}
	return result, nil
}

func (b serviceBackend) GenerateTutorial(ctx context.Context, req types.TutorialRequest) (*types.TutorialResponse, error) {
	resp, err := b.svc.Generate(ctx, req)
	if err != nil {
		return nil, publicError(err, "Failed to generate tutorial")
	}
	return resp, nil
}
