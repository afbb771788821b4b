package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/socialmedia-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running the root command without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "socialmedia-api",
		Short:         "Social media API: users, posts and comments over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run pending migrations and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	migrateCmd := &cobra.Command{
		Use:       fmt.Sprintf("migrate [%s]", strings.Join(postgres.MigrationCommands, "|")),
		Short:     "Run a database migration command",
		ValidArgs: postgres.MigrationCommands,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE:      runMigrate,
	}

	rootCmd.AddCommand(serveCmd, migrateCmd)
	return rootCmd
}

// runServe loads configuration, prepares the database and serves HTTP until
// SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if err := postgres.Migrate(ctx, db, "up", logger); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// runMigrate executes a single goose command against the configured database.
func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	logger.Info("Executing migrations", "command", args[0])
	if err := postgres.Migrate(ctx, db, args[0], logger); err != nil {
		return fmt.Errorf("migration %s failed: %w", args[0], err)
	}
	return nil
}
