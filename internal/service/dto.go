package service

import (
	"time"

	"github.com/phrazzld/socialmedia-api/internal/domain"
)

// UserInput carries the fields a client may set on a user.
// ID is never read from the wire; the service fills it in on update.
type UserInput struct {
	ID    int64  `json:"-"`
	Name  string `json:"name"  validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
}

// PostInput carries the fields of a new post.
type PostInput struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CommentInput carries the content of a new comment.
type CommentInput struct {
	Content string `json:"content" validate:"required"`
}

// UserDTO is the public shape of a user. Collections are not included.
type UserDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostDTO is the public shape of a post.
type PostDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentDTO is the public shape of a comment.
type CommentDTO struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserDTO projects a user onto its public shape.
func ToUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToPostDTO projects a post onto its public shape.
func ToPostDTO(p *domain.Post) PostDTO {
	return PostDTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToCommentDTO projects a comment onto its public shape.
func ToCommentDTO(c *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toUserDTOs(users []*domain.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

func toPostDTOs(posts []*domain.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToPostDTO(p))
	}
	return out
}

func toCommentDTOs(comments []*domain.Comment) []CommentDTO {
	out := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentDTO(c))
	}
	return out
}
