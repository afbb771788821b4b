package mocks

import (
	"context"
	"database/sql"
	"slices"

	"github.com/phrazzld/socialmedia-api/internal/domain"
	"github.com/phrazzld/socialmedia-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	CreateFn     func(ctx context.Context, comment *domain.Comment) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Comment, error)
	ListByUserFn func(ctx context.Context, userID int64) ([]*domain.Comment, error)
	ListByPostFn func(ctx context.Context, postID int64) ([]*domain.Comment, error)

	mem *Memory
}

// NewMockCommentStore creates a comment store backed by mem.
func NewMockCommentStore(mem *Memory) *MockCommentStore {
	return &MockCommentStore{mem: mem}
}

// Ensure MockCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*MockCommentStore)(nil)

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	if err := comment.Validate(); err != nil {
		return err
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	m.mem.nextCommentID++
	now := m.mem.Now()
	comment.ID = m.mem.nextCommentID
	comment.CreatedAt = now
	comment.UpdatedAt = now
	m.mem.comments[comment.ID] = *comment
	return nil
}

// GetByID implements the CommentStore interface
func (m *MockCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	c, ok := m.mem.comments[id]
	if !ok {
		return nil, store.ErrCommentNotFound
	}
	return &c, nil
}

// ListByUser implements the CommentStore interface
func (m *MockCommentStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Comment, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.list(func(mem *Memory) map[int64]int64 { return mem.commentOwner }, userID), nil
}

// ListByPost implements the CommentStore interface
func (m *MockCommentStore) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID)
	}
	return m.list(func(mem *Memory) map[int64]int64 { return mem.commentPost }, postID), nil
}

func (m *MockCommentStore) list(owners func(*Memory) map[int64]int64, ownerID int64) []*domain.Comment {
	m.mem.mu.Lock()
	defer m.mem.mu.Unlock()

	comments := make([]*domain.Comment, 0)
	for _, id := range ownedBy(owners(m.mem), ownerID) {
		c := m.mem.comments[id]
		comments = append(comments, &c)
	}
	return comments
}

// WithTx implements the CommentStore interface
func (m *MockCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return m
}

// ownedBy returns the child IDs mapped to ownerID, in ascending order.
func ownedBy(owners map[int64]int64, ownerID int64) []int64 {
	var ids []int64
	for child, owner := range owners {
		if owner == ownerID {
			ids = append(ids, child)
		}
	}
	slices.Sort(ids)
	return ids
}
