package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JT6820/TutorialTube/internal/metrics"
	"github.com/JT6820/TutorialTube/internal/tutorial"
)

// TranscribeHandler serves POST /api/transcribe
type TranscribeHandler struct {
	svc *tutorial.Service
}

// NewTranscribeHandler creates a new transcribe handler
func NewTranscribeHandler(svc *tutorial.Service) *TranscribeHandler {
	return &TranscribeHandler{
		svc: svc,
	}
}

// TranscribeRequest represents the request body
type TranscribeRequest struct {
	URL string `json:"url"`
}

// Handle validates the URL and returns the analysed transcript
func (h *TranscribeHandler) Handle(c *fiber.Ctx) error {
	metrics.IncrTranscribe()

	var req TranscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", "ERR_INVALID_BODY")
	}

	result, err := h.svc.Transcribe(c.UserContext(), req.URL)
	if err != nil {
		return fail(c, err, "Failed to transcribe video", "ERR_TRANSCRIBE")
	}

	return c.JSON(result)
}
