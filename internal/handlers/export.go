package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JT6820/TutorialTube/internal/export"
	"github.com/JT6820/TutorialTube/internal/types"
)

// ExportRequest represents the request body
type ExportRequest struct {
	Tutorial *types.Tutorial `json:"tutorial"`
}

// HandleExport renders a tutorial as the Markdown a user would copy
func HandleExport(c *fiber.Ctx) error {
	var req ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", "ERR_INVALID_BODY")
	}

	if req.Tutorial == nil || req.Tutorial.Title == "" {
		return badRequest(c, "Tutorial is required", "ERR_NO_TUTORIAL")
	}

	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return c.SendString(export.Markdown(*req.Tutorial))
}
