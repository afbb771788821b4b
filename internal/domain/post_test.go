package domain

import (
	"errors"
	"testing"
)

func TestNewPost(t *testing.T) {
	post, err := NewPost("t", "c")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if post.Title != "t" || post.Content != "c" {
		t.Errorf("Unexpected post: %+v", post)
	}

	_, err = NewPost("", "c")
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "title" {
		t.Errorf("Expected title validation error, got %v", err)
	}

	_, err = NewPost("t", " \t")
	if !errors.As(err, &vErr) || vErr.Field != "content" {
		t.Errorf("Expected content validation error, got %v", err)
	}
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("Expected ErrEmptyContent, got %v", err)
	}
}

func TestNewComment(t *testing.T) {
	comment, err := NewComment("hi")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if comment.Content != "hi" {
		t.Errorf("Expected content %q, got %q", "hi", comment.Content)
	}

	if _, err := NewComment(""); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for empty comment, got %v", err)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("email", "must be a valid format", nil)
	if err.Error() != "invalid email: must be a valid format" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("Expected nil cause to unwrap to ErrValidation")
	}
}
