package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/socialmedia-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new, unowned comment and fills in its ID and timestamps.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// ListByUser returns the comments in the user's collection, oldest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Comment, error)

	// ListByPost returns the comments in the post's collection, oldest first.
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)

	// WithTx returns a CommentStore that runs its statements on tx.
	WithTx(tx *sql.Tx) CommentStore
}
