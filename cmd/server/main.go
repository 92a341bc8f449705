package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JT6820/TutorialTube/internal/config"
	"github.com/JT6820/TutorialTube/internal/llm"
	"github.com/JT6820/TutorialTube/internal/logging"
	"github.com/JT6820/TutorialTube/internal/server"
	"github.com/JT6820/TutorialTube/internal/tutorial"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Logging to stderr and the in-memory buffer behind /logs
	logBuffer := logging.NewLogBuffer(cfg.Logging.BufferLines)
	logger, logOutput := logging.Setup(cfg.Logging.Level, cfg.Logging.Color, logBuffer)

	if cfg.LLM.APIKey == "" && cfg.LLM.Provider != "ollama" {
		logger.Warn("no LLM API key set, completions will fail",
			slog.String("provider", cfg.LLM.Provider))
	}

	// Initialize components
	client := llm.NewClient(llm.Options{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLMTimeout(),
	})
	svc := tutorial.NewService(client, cfg.LLM.StrictDecode)

	app := server.New(svc, server.Options{
		Version:     cfg.Server.Version,
		BodyLimitKB: cfg.Server.BodyLimitKB,
		Logs:        logBuffer,
		LogOutput:   logOutput,
	})

	addr := cfg.Addr()
	logger.Info("server starting",
		slog.String("addr", addr),
		slog.String("provider", cfg.LLM.Provider),
		slog.String("model", cfg.LLM.Model),
		slog.Bool("strict_decode", cfg.LLM.StrictDecode),
	)
	logger.Info("endpoints",
		slog.Any("routes", []string{
			"GET  /                        - Web UI",
			"POST /api/transcribe          - Analyse a YouTube video",
			"POST /api/generate-tutorial   - Build a tutorial from a transcript",
			"POST /api/convert-youtube     - Both stages in one call",
			"POST /api/export              - Tutorial as Markdown",
			"GET  /ws/convert              - Progress stream",
			"GET  /logs                    - View server logs",
			"GET  /metrics                 - Counters",
			"GET  /health                  - Health check",
		}),
	)

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("shutting down gracefully")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", slog.Any("error", err))
		}
	}()

	if err := app.Listen(addr); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
