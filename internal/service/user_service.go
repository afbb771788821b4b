package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/socialmedia-api/internal/domain"
	"github.com/phrazzld/socialmedia-api/internal/platform/logger"
	"github.com/phrazzld/socialmedia-api/internal/store"
)

// UserService provides user, post and comment operations.
type UserService interface {
	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]UserDTO, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID int64) (UserDTO, error)

	// CreateUser registers a new user. The email must not belong to anyone.
	CreateUser(ctx context.Context, input UserInput) (UserDTO, error)

	// UpdateUser replaces the name and email of an existing user.
	// Keeping the current email is allowed.
	UpdateUser(ctx context.Context, userID int64, input UserInput) (UserDTO, error)

	// DeleteUser removes a user. Their posts and comments are kept with the
	// owner cleared (ON DELETE SET NULL) rather than deleted along with the user.
	DeleteUser(ctx context.Context, userID int64) error

	// ListPosts returns the posts owned by a user.
	ListPosts(ctx context.Context, userID int64) ([]PostDTO, error)

	// CreatePost creates a post and adds it to the user's posts.
	CreatePost(ctx context.Context, userID int64, input PostInput) (PostDTO, error)

	// ListComments returns the comments authored by a user, on any post.
	ListComments(ctx context.Context, userID int64) ([]CommentDTO, error)

	// CreateComment creates a comment and adds it to both the user's and the
	// post's comments. The post is looked up on its own and need not belong
	// to the user.
	CreateComment(ctx context.Context, userID, postID int64, input CommentInput) (CommentDTO, error)

	// ListPostComments returns the comments attached to a post.
	ListPostComments(ctx context.Context, postID int64) ([]CommentDTO, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore    store.UserStore
	postStore    store.PostStore
	commentStore store.CommentStore
	tx           store.Transactor
	logger       *slog.Logger
}

// NewUserService creates a new UserService
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	postStore store.PostStore,
	commentStore store.CommentStore,
	transactor store.Transactor,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if postStore == nil {
		return nil, domain.NewValidationError("postStore", "cannot be nil", domain.ErrValidation)
	}
	if commentStore == nil {
		return nil, domain.NewValidationError("commentStore", "cannot be nil", domain.ErrValidation)
	}
	if transactor == nil {
		return nil, domain.NewValidationError("transactor", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:    userStore,
		postStore:    postStore,
		commentStore: commentStore,
		tx:           transactor,
		logger:       logger.With(slog.String("component", "user_service")),
	}, nil
}

// ListUsers implements UserService.ListUsers
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]UserDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, s.fail(log, "list_users", "failed to list users", err)
	}

	return toUserDTOs(users), nil
}

// GetUser implements UserService.GetUser
func (s *userServiceImpl) GetUser(ctx context.Context, userID int64) (UserDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return UserDTO{}, s.fail(log, "get_user", "failed to retrieve user", err, slog.Int64("user_id", userID))
	}

	log.Debug("retrieved user successfully", slog.Int64("user_id", userID))
	return ToUserDTO(user), nil
}

// CreateUser implements UserService.CreateUser
func (s *userServiceImpl) CreateUser(ctx context.Context, input UserInput) (UserDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user *domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.userStore.WithTx(tx)

		if err := ensureEmailUnique(ctx, users, input.Email, 0); err != nil {
			return err
		}

		var err error
		user, err = domain.NewUser(input.Name, input.Email)
		if err != nil {
			return err
		}

		return users.Create(ctx, user)
	})
	if err != nil {
		return UserDTO{}, s.fail(log, "create_user", "failed to create user", err)
	}

	log.Info("user created successfully", slog.Int64("user_id", user.ID))
	return ToUserDTO(user), nil
}

// UpdateUser implements UserService.UpdateUser
// The returned projection is built from the same object passed to the store,
// whose UpdatedAt the store refreshes on write.
func (s *userServiceImpl) UpdateUser(ctx context.Context, userID int64, input UserInput) (UserDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user *domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.userStore.WithTx(tx)

		var err error
		user, err = users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		input.ID = userID
		if err := ensureEmailUnique(ctx, users, input.Email, input.ID); err != nil {
			return err
		}

		if err := user.Rename(input.Name, input.Email); err != nil {
			return err
		}

		return users.Update(ctx, user)
	})
	if err != nil {
		return UserDTO{}, s.fail(log, "update_user", "failed to update user", err, slog.Int64("user_id", userID))
	}

	log.Info("user updated successfully", slog.Int64("user_id", userID))
	return ToUserDTO(user), nil
}

// DeleteUser implements UserService.DeleteUser
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.userStore.WithTx(tx)

		if _, err := users.GetByID(ctx, userID); err != nil {
			return err
		}
		return users.Delete(ctx, userID)
	})
	if err != nil {
		return s.fail(log, "delete_user", "failed to delete user", err, slog.Int64("user_id", userID))
	}

	log.Info("user deleted successfully", slog.Int64("user_id", userID))
	return nil
}

// ListPosts implements UserService.ListPosts
func (s *userServiceImpl) ListPosts(ctx context.Context, userID int64) ([]PostDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, s.fail(log, "list_posts", "failed to retrieve user", err, slog.Int64("user_id", userID))
	}

	posts, err := s.postStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.fail(log, "list_posts", "failed to list posts", err, slog.Int64("user_id", userID))
	}

	return toPostDTOs(posts), nil
}

// CreatePost implements UserService.CreatePost
// Creating the post and linking it to the user commit or roll back together.
func (s *userServiceImpl) CreatePost(ctx context.Context, userID int64, input PostInput) (PostDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var post *domain.Post
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.userStore.WithTx(tx)
		posts := s.postStore.WithTx(tx)

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		post, err = domain.NewPost(input.Title, input.Content)
		if err != nil {
			return err
		}

		if err := posts.Create(ctx, post); err != nil {
			return err
		}
		return users.AttachPost(ctx, user.ID, post.ID)
	})
	if err != nil {
		return PostDTO{}, s.fail(log, "create_post", "failed to create post", err, slog.Int64("user_id", userID))
	}

	log.Info("post created successfully",
		slog.Int64("user_id", userID),
		slog.Int64("post_id", post.ID))
	return ToPostDTO(post), nil
}

// ListComments implements UserService.ListComments
func (s *userServiceImpl) ListComments(ctx context.Context, userID int64) ([]CommentDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, s.fail(log, "list_comments", "failed to retrieve user", err, slog.Int64("user_id", userID))
	}

	comments, err := s.commentStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.fail(log, "list_comments", "failed to list comments", err, slog.Int64("user_id", userID))
	}

	return toCommentDTOs(comments), nil
}

// CreateComment implements UserService.CreateComment
// The comment is created and attached to both owners in one unit of work.
func (s *userServiceImpl) CreateComment(
	ctx context.Context,
	userID, postID int64,
	input CommentInput,
) (CommentDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var comment *domain.Comment
	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		users := s.userStore.WithTx(tx)
		posts := s.postStore.WithTx(tx)
		comments := s.commentStore.WithTx(tx)

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		post, err := posts.GetByID(ctx, postID)
		if err != nil {
			return err
		}

		comment, err = domain.NewComment(input.Content)
		if err != nil {
			return err
		}

		if err := comments.Create(ctx, comment); err != nil {
			return err
		}
		if err := users.AttachComment(ctx, user.ID, comment.ID); err != nil {
			return err
		}
		return posts.AttachComment(ctx, post.ID, comment.ID)
	})
	if err != nil {
		return CommentDTO{}, s.fail(log, "create_comment", "failed to create comment", err,
			slog.Int64("user_id", userID),
			slog.Int64("post_id", postID))
	}

	log.Info("comment created successfully",
		slog.Int64("user_id", userID),
		slog.Int64("post_id", postID),
		slog.Int64("comment_id", comment.ID))
	return ToCommentDTO(comment), nil
}

// ListPostComments implements UserService.ListPostComments
func (s *userServiceImpl) ListPostComments(ctx context.Context, postID int64) ([]CommentDTO, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.postStore.GetByID(ctx, postID); err != nil {
		return nil, s.fail(log, "list_post_comments", "failed to retrieve post", err, slog.Int64("post_id", postID))
	}

	comments, err := s.commentStore.ListByPost(ctx, postID)
	if err != nil {
		return nil, s.fail(log, "list_post_comments", "failed to list comments", err, slog.Int64("post_id", postID))
	}

	return toCommentDTOs(comments), nil
}

// ensureEmailUnique returns store.ErrEmailExists when email belongs to a
// user other than candidateID. Pass 0 for a user that does not exist yet.
func ensureEmailUnique(ctx context.Context, users store.UserStore, email string, candidateID int64) error {
	found, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}

	if found.ID != candidateID {
		return store.ErrEmailExists
	}
	return nil
}

// fail logs err at a level matching its kind and wraps it for the caller.
// Client errors keep their sentinel chain; anything else becomes a
// UserServiceError.
func (s *userServiceImpl) fail(log *slog.Logger, op, msg string, err error, attrs ...any) error {
	if isClientError(err) {
		log.Debug(msg, append(attrs, slog.String("error", err.Error()))...)
		return fmt.Errorf("%s: %w", msg, err)
	}

	log.Error(msg, append(attrs, slog.String("error", err.Error()))...)
	return NewUserServiceError(op, msg, err)
}

func isClientError(err error) bool {
	return store.IsNotFoundError(err) ||
		errors.Is(err, store.ErrEmailExists) ||
		errors.Is(err, domain.ErrValidation)
}
