package mocks

import (
	"context"

	"github.com/phrazzld/socialmedia-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserService is a mock of service.UserService for use with testify/mock
type TestifyMockUserService struct {
	mock.Mock
}

var _ service.UserService = (*TestifyMockUserService)(nil)

// ListUsers is a mock implementation of service.UserService.ListUsers
func (m *TestifyMockUserService) ListUsers(ctx context.Context) ([]service.UserDTO, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]service.UserDTO)
	return users, args.Error(1)
}

// GetUser is a mock implementation of service.UserService.GetUser
func (m *TestifyMockUserService) GetUser(ctx context.Context, userID int64) (service.UserDTO, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(service.UserDTO)
	return user, args.Error(1)
}

// CreateUser is a mock implementation of service.UserService.CreateUser
func (m *TestifyMockUserService) CreateUser(ctx context.Context, input service.UserInput) (service.UserDTO, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(service.UserDTO)
	return user, args.Error(1)
}

// UpdateUser is a mock implementation of service.UserService.UpdateUser
func (m *TestifyMockUserService) UpdateUser(
	ctx context.Context,
	userID int64,
	input service.UserInput,
) (service.UserDTO, error) {
	args := m.Called(ctx, userID, input)
	user, _ := args.Get(0).(service.UserDTO)
	return user, args.Error(1)
}

// DeleteUser is a mock implementation of service.UserService.DeleteUser
func (m *TestifyMockUserService) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// ListPosts is a mock implementation of service.UserService.ListPosts
func (m *TestifyMockUserService) ListPosts(ctx context.Context, userID int64) ([]service.PostDTO, error) {
	args := m.Called(ctx, userID)
	posts, _ := args.Get(0).([]service.PostDTO)
	return posts, args.Error(1)
}

// CreatePost is a mock implementation of service.UserService.CreatePost
func (m *TestifyMockUserService) CreatePost(
	ctx context.Context,
	userID int64,
	input service.PostInput,
) (service.PostDTO, error) {
	args := m.Called(ctx, userID, input)
	post, _ := args.Get(0).(service.PostDTO)
	return post, args.Error(1)
}

// ListComments is a mock implementation of service.UserService.ListComments
func (m *TestifyMockUserService) ListComments(ctx context.Context, userID int64) ([]service.CommentDTO, error) {
	args := m.Called(ctx, userID)
	comments, _ := args.Get(0).([]service.CommentDTO)
	return comments, args.Error(1)
}

// CreateComment is a mock implementation of service.UserService.CreateComment
func (m *TestifyMockUserService) CreateComment(
	ctx context.Context,
	userID, postID int64,
	input service.CommentInput,
) (service.CommentDTO, error) {
	args := m.Called(ctx, userID, postID, input)
	comment, _ := args.Get(0).(service.CommentDTO)
	return comment, args.Error(1)
}

// ListPostComments is a mock implementation of service.UserService.ListPostComments
func (m *TestifyMockUserService) ListPostComments(ctx context.Context, postID int64) ([]service.CommentDTO, error) {
	args := m.Called(ctx, postID)
	comments, _ := args.Get(0).([]service.CommentDTO)
	return comments, args.Error(1)
}
