package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/sergiogarciaj/bartulos/internal/assistant"
	"github.com/sergiogarciaj/bartulos/internal/assistant/claude"
	"github.com/sergiogarciaj/bartulos/internal/config"
	"github.com/sergiogarciaj/bartulos/internal/db"
	"github.com/sergiogarciaj/bartulos/internal/logging"
	"github.com/sergiogarciaj/bartulos/internal/service"
	"github.com/sergiogarciaj/bartulos/internal/store"
	"github.com/sergiogarciaj/bartulos/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	st := store.New(database, logger)
	gateway := assistant.NewGateway(newAssistantProvider(cfg, logger), logger)
	svc := service.NewInventoryService(st, gateway, logger)

	if err := svc.Bootstrap(context.Background()); err != nil {
		logger.Error("failed to bootstrap inventory", "error", err)
		return
	}

	server := web.NewServer(svc, logger)
	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}

func newAssistantProvider(cfg *config.Config, logger *slog.Logger) assistant.Provider {
	switch cfg.AssistantBackend {
	case "claude":
		if cfg.AnthropicAPIKey == "" {
			logger.Warn("ANTHROPIC_API_KEY is empty, falling back to the stub assistant")
			return assistant.Stub{}
		}
		logger.Info("using Claude assistant backend", "model", cfg.AnthropicModel)
		return claude.New(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		logger.Info("using stub assistant backend")
		return assistant.Stub{}
	}
}
