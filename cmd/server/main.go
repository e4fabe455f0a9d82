package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/todmy/req-analyzer/internal/api"
	"github.com/todmy/req-analyzer/internal/config"
	"github.com/todmy/req-analyzer/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	processor, err := pipeline.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create pipeline", zap.Error(err))
	}

	server := api.NewServer(api.ServerConfig{
		Processor:      processor,
		Logger:         logger,
		MaxUploadBytes: cfg.MaxUploadBytes,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	logger.Info("Starting req-analyzer server", zap.String("port", cfg.Port))
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
