package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/socialmedia-api/internal/domain"
	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
	"github.com/phrazzld/socialmedia-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// The generated ID and timestamps are written back onto user.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, user.Name, user.Email).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already registered during create")
			return store.ErrEmailExists
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return MapStoreError("user", "create", err)
	}

	log.Info("user created successfully", slog.Int64("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving user by ID", slog.Int64("user_id", id))

	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapStoreError("user", "get", err)
	}

	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, MapStoreError("user", "get by email", err)
	}

	return user, nil
}

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapStoreError("user", "list", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// Update implements store.UserStore.Update
// The updated_at column is maintained by a trigger; its new value is
// scanned back into user.UpdatedAt.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return err
	}

	query := `
		UPDATE users
		SET name = $1, email = $2
		WHERE id = $3
		RETURNING updated_at
	`
	err := s.db.QueryRowContext(ctx, query, user.Name, user.Email, user.ID).Scan(&user.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			log.Debug("user not found for update", slog.Int64("user_id", user.ID))
			return store.ErrUserNotFound
		case IsUniqueViolation(err):
			log.Debug("email already registered during update", slog.Int64("user_id", user.ID))
			return store.ErrEmailExists
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return MapStoreError("user", "update", err)
	}

	log.Info("user updated successfully", slog.Int64("user_id", user.ID))
	return nil
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return MapStoreError("user", "delete", err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Info("user deleted successfully", slog.Int64("user_id", id))
	return nil
}

// AttachPost implements store.UserStore.AttachPost
func (s *PostgresUserStore) AttachPost(ctx context.Context, userID, postID int64) error {
	return s.attach(ctx, `UPDATE posts SET user_id = $1 WHERE id = $2`, userID, postID, store.ErrPostNotFound)
}

// AttachComment implements store.UserStore.AttachComment
func (s *PostgresUserStore) AttachComment(ctx context.Context, userID, commentID int64) error {
	return s.attach(ctx, `UPDATE comments SET user_id = $1 WHERE id = $2`, userID, commentID, store.ErrCommentNotFound)
}

func (s *PostgresUserStore) attach(ctx context.Context, query string, userID, childID int64, childNotFound error) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, query, userID, childID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("user not found for attach", slog.Int64("user_id", userID))
			return store.ErrUserNotFound
		}
		log.Error("failed to attach to user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("child_id", childID))
		return MapStoreError("user", "attach", err)
	}

	if err := CheckRowsAffected(result, childNotFound); err != nil {
		return err
	}

	log.Debug("attached to user collection",
		slog.Int64("user_id", userID),
		slog.Int64("child_id", childID))
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}
