package domain

import (
	"strings"
	"time"
)

// Comment is a short text left on a post. A comment has no reference to its
// author or its post; both associations are kept by the owners' collections.
type Comment struct {
	ID        int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewComment builds an unsaved Comment.
func NewComment(content string) (*Comment, error) {
	comment := &Comment{Content: content}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks that the comment has content.
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return NewValidationError("content", "must not be blank", ErrEmptyContent)
	}
	return nil
}
