package mocks

import (
	"context"
	"database/sql"
	"slices"

	"github.com/phrazzld/socialmedia-api/internal/domain"
	"github.com/phrazzld/socialmedia-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]*domain.User, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error
	DeleteFn        func(ctx context.Context, id int64) error
	AttachPostFn    func(ctx context.Context, userID, postID int64) error
	AttachCommentFn func(ctx context.Context, userID, commentID int64) error

	// UpdateCalls counts calls to Update, including those served by UpdateFn.
	UpdateCalls int

	mem *Memory
}

// NewMockUserStore creates a user store backed by mem.
func NewMockUserStore(mem *Memory) *MockUserStore {
	return &MockUserStore{mem: mem}
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if err := user.Validate(); err != nil {
		return err
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	for _, u := range m.mem.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	m.mem.nextUserID++
	now := m.mem.Now()
	user.ID = m.mem.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	m.mem.users[user.ID] = *user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	u, ok := m.mem.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	for _, u := range m.mem.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	ids := make([]int64, 0, len(m.mem.users))
	for id := range m.mem.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		u := m.mem.users[id]
		users = append(users, &u)
	}
	return users, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	if err := user.Validate(); err != nil {
		return err
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	existing, ok := m.mem.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	for id, u := range m.mem.users {
		if id != user.ID && u.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = m.mem.Now()
	m.mem.users[user.ID] = *user
	return nil
}

// Delete implements the UserStore interface
// Owned posts and comments are unlinked, not removed.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	if _, ok := m.mem.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.mem.users, id)
	for postID, owner := range m.mem.postOwner {
		if owner == id {
			delete(m.mem.postOwner, postID)
		}
	}
	for commentID, owner := range m.mem.commentOwner {
		if owner == id {
			delete(m.mem.commentOwner, commentID)
		}
	}
	return nil
}

// AttachPost implements the UserStore interface
func (m *MockUserStore) AttachPost(ctx context.Context, userID, postID int64) error {
	if m.AttachPostFn != nil {
		return m.AttachPostFn(ctx, userID, postID)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	if _, ok := m.mem.users[userID]; !ok {
		return store.ErrUserNotFound
	}
	if _, ok := m.mem.posts[postID]; !ok {
		return store.ErrPostNotFound
	}
	m.mem.postOwner[postID] = userID
	return nil
}

// AttachComment implements the UserStore interface
func (m *MockUserStore) AttachComment(ctx context.Context, userID, commentID int64) error {
	if m.AttachCommentFn != nil {
		return m.AttachCommentFn(ctx, userID, commentID)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	if _, ok := m.mem.users[userID]; !ok {
		return store.ErrUserNotFound
	}
	if _, ok := m.mem.comments[commentID]; !ok {
		return store.ErrCommentNotFound
	}
	m.mem.commentOwner[commentID] = userID
	return nil
}

// WithTx implements the UserStore interface.
// The mock has no transaction of its own and returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
