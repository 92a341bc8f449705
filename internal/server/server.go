package server

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/JT6820/TutorialTube/internal/handlers"
	"github.com/JT6820/TutorialTube/internal/logging"
	"github.com/JT6820/TutorialTube/internal/metrics"
	"github.com/JT6820/TutorialTube/internal/tutorial"
	"github.com/JT6820/TutorialTube/web"
)

// Options configures the HTTP app
type Options struct {
	Version     string
	BodyLimitKB int
	Logs        *logging.LogBuffer
	LogOutput   io.Writer
}

// New builds the Fiber app with middleware and all routes registered
func New(svc *tutorial.Service, opts Options) *fiber.App {
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Logs == nil {
		opts.Logs = logging.NewLogBuffer(0)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Tutorial Tube",
		BodyLimit:             opts.BodyLimitKB * 1024,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: opts.LogOutput,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Client-Info, Apikey",
	}))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(web.Index)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": opts.Version,
		})
	})

	app.Get("/logs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"logs": opts.Logs.GetLogs(),
		})
	})

	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendString(metrics.Format())
	})

	api := app.Group("/api")
	api.Post("/transcribe", handlers.NewTranscribeHandler(svc).Handle)
	api.Post("/generate-tutorial", handlers.NewTutorialHandler(svc).Handle)
	api.Post("/convert-youtube", handlers.NewConvertHandler(svc).Handle)
	api.Post("/export", handlers.HandleExport)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/convert", websocket.New(handlers.NewStreamHandler(svc).Handle))

	return app
}
