package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/JT6820/TutorialTube/internal/metrics"
	"github.com/JT6820/TutorialTube/internal/tutorial"
	"github.com/JT6820/TutorialTube/internal/types"
)

// ConvertHandler serves POST /api/convert-youtube, the single-call shape
// that runs both stages and returns flattened steps
type ConvertHandler struct {
	svc *tutorial.Service
}

// NewConvertHandler creates a new convert handler
func NewConvertHandler(svc *tutorial.Service) *ConvertHandler {
	return &ConvertHandler{
		svc: svc,
	}
}

// Handle processes convert requests
func (h *ConvertHandler) Handle(c *fiber.Ctx) error {
	metrics.IncrConvert()

	var req types.ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", "ERR_INVALID_BODY")
	}

	if strings.TrimSpace(req.YouTubeURL) == "" {
		return badRequest(c, "YouTube URL is required", "ERR_NO_URL")
	}

	resp, err := h.svc.Convert(c.UserContext(), req.YouTubeURL)
	if err != nil {
		return fail(c, err, "Failed to convert video", "ERR_CONVERT")
	}

	return c.JSON(resp)
}
