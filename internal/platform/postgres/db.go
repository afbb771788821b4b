package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/phrazzld/socialmedia-api/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// DriverName is the database/sql driver used for every connection.
const DriverName = "pgx"

// Open establishes a connection pool to the database and configures it from cfg.
// The pool is pinged before it is returned.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(DriverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database at %s: %w", MaskURL(cfg.URL), err)
	}

	return db, nil
}

// MaskURL replaces the password in a database URL for safe logging.
func MaskURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	if parsed.User != nil {
		if _, ok := parsed.User.Password(); ok {
			parsed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
		}
	}
	return parsed.String()
}
