package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"telecom-assistant/config"
	_ "telecom-assistant/docs" // Swagger docs
	"telecom-assistant/internal/assistant/classifier"
	assistantHTTP "telecom-assistant/internal/assistant/delivery/http"
	"telecom-assistant/internal/assistant/design"
	"telecom-assistant/internal/assistant/orchestrator"
	"telecom-assistant/internal/assistant/retriever"
	"telecom-assistant/internal/httpserver"
	"telecom-assistant/internal/middleware"
	"telecom-assistant/pkg/log"
	"telecom-assistant/pkg/openai"
)

// @title       Telecom Assistant API
// @description Two-agent intent classification and data retrieval API for telecom services.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Telecom Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data API URL: %s", cfg.DataAPI.URL)

	// 3. Assistant domain
	llm, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	cls := classifier.New(logger, llm)
	ret := retriever.New(logger, retriever.Config{APIURL: cfg.DataAPI.URL})
	orch := orchestrator.New(logger, cls, ret, cfg.DataAPI.URL)
	designer := design.New(logger, design.Config{APIURL: cfg.DesignAPI.URL})

	handler := assistantHTTP.New(logger, orch, cls, designer)
	mw := middleware.New(logger, cfg.RateLimit.PerMin)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AssistantHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
