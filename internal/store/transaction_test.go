package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRunInTransaction(t *testing.T) {
	fnErr := errors.New("attach failed")

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		fn        TxFn
		wantErrIs []error
		contains  string
	}{
		{
			name: "commits when fn succeeds",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx *sql.Tx) error { return nil },
		},
		{
			name: "rolls back and returns fn error unchanged",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:        func(ctx context.Context, tx *sql.Tx) error { return fnErr },
			wantErrIs: []error{fnErr},
		},
		{
			name: "begin failure is a transaction failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			fn:        func(ctx context.Context, tx *sql.Tx) error { return nil },
			wantErrIs: []error{ErrTransactionFailed},
			contains:  "begin",
		},
		{
			name: "commit failure is a transaction failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn:        func(ctx context.Context, tx *sql.Tx) error { return nil },
			wantErrIs: []error{ErrTransactionFailed},
			contains:  "commit",
		},
		{
			name: "rollback failure keeps the original error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("rollback failed"))
			},
			fn:        func(ctx context.Context, tx *sql.Tx) error { return fnErr },
			wantErrIs: []error{fnErr},
			contains:  "rollback failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			err := RunInTransaction(context.Background(), db, tc.fn)

			if len(tc.wantErrIs) == 0 {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				for _, target := range tc.wantErrIs {
					assert.ErrorIs(t, err, target)
				}
			}
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransaction_PanicRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTransactor_WithinTx(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE posts SET user_id").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var sawTx bool
	err := NewSQLTransactor(db).WithinTx(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		sawTx = tx != nil
		_, err := tx.ExecContext(ctx, "UPDATE posts SET user_id = $1 WHERE id = $2", 1, 1)
		return err
	})

	require.NoError(t, err)
	assert.True(t, sawTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}
