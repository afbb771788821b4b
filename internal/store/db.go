package store

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the postgres user, post and comment stores run
// on. Both a pool and an open transaction satisfy it, so WithTx only swaps
// the handle.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
