package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/socialmedia-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and fills in its ID and timestamps.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by its ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no user owns the email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns every user ordered by ID. Never returns nil.
	List(ctx context.Context) ([]*domain.User, error)

	// Update persists the user's name and email and refreshes UpdatedAt
	// on the passed object from the stored row.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if the email belongs to another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes the user record. Posts and comments the user owned
	// are kept but no longer linked to any user.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// AttachPost appends the post to the user's post collection.
	// Returns ErrUserNotFound or ErrPostNotFound when either side is missing.
	AttachPost(ctx context.Context, userID, postID int64) error

	// AttachComment appends the comment to the user's comment collection.
	// Returns ErrUserNotFound or ErrCommentNotFound when either side is missing.
	AttachComment(ctx context.Context, userID, commentID int64) error

	// WithTx returns a UserStore that runs its statements on tx.
	WithTx(tx *sql.Tx) UserStore
}
