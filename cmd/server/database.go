package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/socialmedia-api/internal/config"
	"github.com/phrazzld/socialmedia-api/internal/platform/postgres"
)

// connectTimeout bounds the initial connection and ping.
const connectTimeout = 10 * time.Second

// setupAppDatabase establishes a connection to the database and configures connection pools.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", postgres.MaskURL(cfg.Database.URL), err)
	}

	logger.Info("Database connection established",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns)
	return db, nil
}
