package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/JT6820/TutorialTube/internal/tutorial"
)

// inputError maps a caller mistake to the message and code the front-end
// shows. ok is false for internal failures.
func inputError(err error) (msg, code string, ok bool) {
	switch {
	case errors.Is(err, tutorial.ErrURLRequired):
		return "URL is required", "ERR_NO_URL", true
	case errors.Is(err, tutorial.ErrInvalidURL):
		return "Invalid YouTube URL", "ERR_INVALID_URL", true
	case errors.Is(err, tutorial.ErrTranscriptRequired):
		return "Transcript is required", "ERR_NO_TRANSCRIPT", true
	}
	return "", "", false
}

// fail answers 400 for input errors and a generic 500 for everything else.
// The underlying error is only logged.
func fail(c *fiber.Ctx, err error, failMsg, failCode string) error {
	if msg, code, ok := inputError(err); ok {
		return badRequest(c, msg, code)
	}

	slog.Error(failMsg,
		slog.Any("error", err),
		slog.String("path", c.Path()),
		slog.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": failMsg,
		"code":  failCode,
	})
}

func badRequest(c *fiber.Ctx, msg, code string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
		"code":  code,
	})
}

// publicError is fail for transports that carry a single message, such as
// the progress stream
func publicError(err error, failMsg string) error {
	if msg, _, ok := inputError(err); ok {
		return errors.New(msg)
	}
	slog.Error(failMsg, slog.Any("error", err))
	return errors.New(failMsg)
}
