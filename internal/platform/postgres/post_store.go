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

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// WithTx implements store.PostStore.WithTx
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.PostStore.Create
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO posts (title, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, post.Title, post.Content).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		log.Error("failed to create post", slog.String("error", err.Error()))
		return MapStoreError("post", "create", err)
	}

	log.Info("post created successfully", slog.Int64("post_id", post.ID))
	return nil
}

// GetByID implements store.PostStore.GetByID
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, created_at, updated_at
		FROM posts
		WHERE id = $1
	`
	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, MapStoreError("post", "get", err)
	}

	return post, nil
}

// ListByUser implements store.PostStore.ListByUser
func (s *PostgresPostStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, created_at, updated_at
		FROM posts
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query posts by user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapStoreError("post", "list", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// AttachComment implements store.PostStore.AttachComment
func (s *PostgresPostStore) AttachComment(ctx context.Context, postID, commentID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE comments SET post_id = $1 WHERE id = $2`, postID, commentID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("post not found for attach", slog.Int64("post_id", postID))
			return store.ErrPostNotFound
		}
		log.Error("failed to attach comment to post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID),
			slog.Int64("comment_id", commentID))
		return MapStoreError("post", "attach", err)
	}

	return CheckRowsAffected(result, store.ErrCommentNotFound)
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	if err := row.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return nil, err
	}
	return &post, nil
}
