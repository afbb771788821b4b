package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/socialmedia-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new, unowned post and fills in its ID and timestamps.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its ID regardless of which user owns it.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// ListByUser returns the posts in the user's collection, oldest first.
	// Never returns nil.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error)

	// AttachComment appends the comment to the post's comment collection.
	// Returns ErrPostNotFound or ErrCommentNotFound when either side is missing.
	AttachComment(ctx context.Context, postID, commentID int64) error

	// WithTx returns a PostStore that runs its statements on tx.
	WithTx(tx *sql.Tx) PostStore
}
