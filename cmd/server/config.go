package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/socialmedia-api/internal/config"
	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
	"github.com/phrazzld/socialmedia-api/internal/platform/postgres"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger configures the process-wide logger from the server settings
// and logs the loaded configuration.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(logger.LoggerConfig{
		Level: cfg.Server.LogLevel,
		File:  cfg.Server.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	l.Debug("Database configuration", "url", postgres.MaskURL(cfg.Database.URL))

	return l, nil
}
