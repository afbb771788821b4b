package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/socialmedia-api/internal/domain"
	"github.com/phrazzld/socialmedia-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	CreateFn        func(ctx context.Context, post *domain.Post) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.Post, error)
	ListByUserFn    func(ctx context.Context, userID int64) ([]*domain.Post, error)
	AttachCommentFn func(ctx context.Context, postID, commentID int64) error

	mem *Memory
}

// NewMockPostStore creates a post store backed by mem.
func NewMockPostStore(mem *Memory) *MockPostStore {
	return &MockPostStore{mem: mem}
}

// Ensure MockPostStore implements store.PostStore interface
var _ store.PostStore = (*MockPostStore)(nil)

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	if err := post.Validate(); err != nil {
		return err
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	m.mem.nextPostID++
	now := m.mem.Now()
	post.ID = m.mem.nextPostID
	post.CreatedAt = now
	post.UpdatedAt = now
	m.mem.posts[post.ID] = *post
	return nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	p, ok := m.mem.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return &p, nil
}

// ListByUser implements the PostStore interface
func (m *MockPostStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	posts := make([]*domain.Post, 0)
	for _, id := range ownedBy(m.mem.postOwner, userID) {
		p := m.mem.posts[id]
		posts = append(posts, &p)
	}
	return posts, nil
}

// AttachComment implements the PostStore interface
func (m *MockPostStore) AttachComment(ctx context.Context, postID, commentID int64) error {
	if m.AttachCommentFn != nil {
		return m.AttachCommentFn(ctx, postID, commentID)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	if _, ok := m.mem.posts[postID]; !ok {
		return store.ErrPostNotFound
	}
	if _, ok := m.mem.comments[commentID]; !ok {
		return store.ErrCommentNotFound
	}
	m.mem.commentPost[commentID] = postID
	return nil
}

// WithTx implements the PostStore interface
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}
