package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JT6820/TutorialTube/internal/metrics"
	"github.com/JT6820/TutorialTube/internal/tutorial"
	"github.com/JT6820/TutorialTube/internal/types"
)

// TutorialHandler serves POST /api/generate-tutorial
type TutorialHandler struct {
	svc *tutorial.Service
}

// NewTutorialHandler creates a new tutorial handler
func NewTutorialHandler(svc *tutorial.Service) *TutorialHandler {
	return &TutorialHandler{
		svc: svc,
	}
}

// Handle builds a tutorial from a transcript
func (h *TutorialHandler) Handle(c *fiber.Ctx) error {
	metrics.IncrTutorial()

	var req types.TutorialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", "ERR_INVALID_BODY")
	}

	resp, err := h.svc.Generate(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "Failed to generate tutorial", "ERR_GENERATE")
	}

	return c.JSON(resp)
}
