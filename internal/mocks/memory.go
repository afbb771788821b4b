package mocks

import (
	"sync"
	"time"

	"github.com/phrazzld/socialmedia-api/internal/domain"
)

// Memory is the shared in-memory state behind the mock stores.
// IDs start at 1 per entity kind and increase monotonically.
type Memory struct {
	mu sync.Mutex

	// Now supplies timestamps. Defaults to the current UTC time.
	Now func() time.Time

	users    map[int64]domain.User
	posts    map[int64]domain.Post
	comments map[int64]domain.Comment

	postOwner    map[int64]int64 // post ID -> user ID
	commentOwner map[int64]int64 // comment ID -> user ID
	commentPost  map[int64]int64 // comment ID -> post ID

	nextUserID    int64
	nextPostID    int64
	nextCommentID int64
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{
		Now:          func() time.Time { return time.Now().UTC() },
		users:        make(map[int64]domain.User),
		posts:        make(map[int64]domain.Post),
		comments:     make(map[int64]domain.Comment),
		postOwner:    make(map[int64]int64),
		commentOwner: make(map[int64]int64),
		commentPost:  make(map[int64]int64),
	}
}

// UserCount returns the number of stored users.
func (m *Memory) UserCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// PostCount returns the number of stored posts, linked or not.
func (m *Memory) PostCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts)
}

// CommentCount returns the number of stored comments, linked or not.
func (m *Memory) CommentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.comments)
}

func (m *Memory) snapshot() *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &Memory{
		Now:           m.Now,
		users:         cloneMap(m.users),
		posts:         cloneMap(m.posts),
		comments:      cloneMap(m.comments),
		postOwner:     cloneMap(m.postOwner),
		commentOwner:  cloneMap(m.commentOwner),
		commentPost:   cloneMap(m.commentPost),
		nextUserID:    m.nextUserID,
		nextPostID:    m.nextPostID,
		nextCommentID: m.nextCommentID,
	}
}

func (m *Memory) restore(s *Memory) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = s.users
	m.posts = s.posts
	m.comments = s.comments
	m.postOwner = s.postOwner
	m.commentOwner = s.commentOwner
	m.commentPost = s.commentPost
	m.nextUserID = s.nextUserID
	m.nextPostID = s.nextPostID
	m.nextCommentID = s.nextCommentID
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
