package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/todmy/req-analyzer/internal/api"
	"github.com/todmy/req-analyzer/internal/config"
	"github.com/todmy/req-analyzer/internal/pipeline"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.Port = port
			}

			server, err := newServer(cfg)
			if err != nil {
				return err
			}

			logger.Info("Starting req-analyzer server", zap.String("port", cfg.Port))
			return server.Run(":" + cfg.Port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port, overrides REQGEN_PORT and PORT")

	return cmd
}

func newServer(cfg *config.Config) (*api.Server, error) {
	processor, err := pipeline.NewFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}

	return api.NewServer(api.ServerConfig{
		Processor:      processor,
		Logger:         logger,
		MaxUploadBytes: cfg.MaxUploadBytes,
		AllowedOrigins: cfg.AllowedOrigins,
	}), nil
}
