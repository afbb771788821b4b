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

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// WithTx implements store.CommentStore.WithTx
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CommentStore.Create
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO comments (content)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		log.Error("failed to create comment", slog.String("error", err.Error()))
		return MapStoreError("comment", "create", err)
	}

	log.Info("comment created successfully", slog.Int64("comment_id", comment.ID))
	return nil
}

// GetByID implements store.CommentStore.GetByID
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, content, created_at, updated_at
		FROM comments
		WHERE id = $1
	`
	comment, err := scanComment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment by ID",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return nil, MapStoreError("comment", "get", err)
	}

	return comment, nil
}

// ListByUser implements store.CommentStore.ListByUser
func (s *PostgresCommentStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Comment, error) {
	return s.list(ctx, `
		SELECT id, content, created_at, updated_at
		FROM comments
		WHERE user_id = $1
		ORDER BY id
	`, userID)
}

// ListByPost implements store.CommentStore.ListByPost
func (s *PostgresCommentStore) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	return s.list(ctx, `
		SELECT id, content, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`, postID)
}

func (s *PostgresCommentStore) list(ctx context.Context, query string, ownerID int64) ([]*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to query comments",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return nil, MapStoreError("comment", "list", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func scanComment(row rowScanner) (*domain.Comment, error) {
	var comment domain.Comment
	if err := row.Scan(&comment.ID, &comment.Content, &comment.CreatedAt, &comment.UpdatedAt); err != nil {
		return nil, err
	}
	return &comment, nil
}
