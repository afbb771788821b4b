package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/socialmedia-api/internal/config"
	"github.com/phrazzld/socialmedia-api/internal/platform/postgres"
	"github.com/phrazzld/socialmedia-api/internal/service"
	"github.com/phrazzld/socialmedia-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	postStore    store.PostStore
	commentStore store.CommentStore
	transactor   store.Transactor

	userService service.UserService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be open and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.postStore = postgres.NewPostgresPostStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)
	app.transactor = store.NewSQLTransactor(db)

	var err error
	app.userService, err = service.NewUserService(
		app.userStore,
		app.postStore,
		app.commentStore,
		app.transactor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
