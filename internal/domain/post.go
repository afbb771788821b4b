package domain

import (
	"strings"
	"time"
)

// Post is a piece of content published by a user. Comments attached to the
// post are tracked by the store, not on the entity.
type Post struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost builds an unsaved Post from a title and content.
func NewPost(title, content string) (*Post, error) {
	post := &Post{
		Title:   title,
		Content: content,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks that title and content are present.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title", "must not be blank", ErrEmptyContent)
	}
	if strings.TrimSpace(p.Content) == "" {
		return NewValidationError("content", "must not be blank", ErrEmptyContent)
	}
	return nil
}
