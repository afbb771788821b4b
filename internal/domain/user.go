package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MinNameLength is the shortest name a user may register with.
const MinNameLength = 3

var emailValidator = validator.New()

// User represents a registered member of the social network.
// Posts and comments owned by the user are tracked by the store through
// owner keys on the child rows; they are not loaded onto the entity.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds an unsaved User carrying only a name and an email.
// The ID and timestamps are assigned by the store on Create.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:  name,
		Email: email,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the mutable fields of the user.
func (u *User) Validate() error {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return NewValidationError("name", "must not be blank", ErrValidation)
	}
	if len([]rune(name)) < MinNameLength {
		return NewValidationError("name", "must have at least 3 characters", ErrValidation)
	}

	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email", "must not be blank", ErrValidation)
	}
	if !ValidEmail(u.Email) {
		return NewValidationError("email", "must be a valid format", ErrInvalidEmail)
	}

	return nil
}

// Rename replaces the user's name and email in place after validating them.
// The user is left untouched when validation fails.
func (u *User) Rename(name, email string) error {
	candidate := User{Name: name, Email: email}
	if err := candidate.Validate(); err != nil {
		return err
	}

	u.Name = name
	u.Email = email
	return nil
}

// ValidEmail reports whether s is a syntactically valid email address.
func ValidEmail(s string) bool {
	return emailValidator.Var(s, "required,email") == nil
}
