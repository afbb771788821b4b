package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
)

// TxFn is a unit of work run inside a transaction.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction runs fn inside a transaction on db. The transaction
// commits when fn returns nil and rolls back when fn fails or panics.
// fn's error is returned as is so callers can match store sentinels; begin
// and commit failures wrap ErrTransactionFailed.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction after panic",
				slog.String("error", rbErr.Error()),
				slog.Any("panic", p))
		}
		// ALLOW-PANIC: Propagating caught panic from transaction
		panic(p)
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		log.Debug("rolled back transaction", slog.String("error", err.Error()))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, err)
	}

	return nil
}

// Transactor runs a unit of work atomically. Services depend on this
// interface rather than on *sql.DB so they can be exercised without a database.
type Transactor interface {
	// WithinTx runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise; fn's error is returned unchanged.
	WithinTx(ctx context.Context, fn TxFn) error
}

// SQLTransactor is a Transactor backed by a database/sql connection pool.
type SQLTransactor struct {
	db *sql.DB
}

// NewSQLTransactor creates a Transactor that opens transactions on db.
func NewSQLTransactor(db *sql.DB) *SQLTransactor {
	return &SQLTransactor{db: db}
}

// WithinTx implements Transactor using RunInTransaction.
func (t *SQLTransactor) WithinTx(ctx context.Context, fn TxFn) error {
	return RunInTransaction(ctx, t.db, fn)
}
