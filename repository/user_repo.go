package repository

import (
	"errors"

	"lightbnb/models"
)

// ErrDuplicateEmail is returned by CreateUser when the email is
// already taken. The insert itself is the final guard; the lookup
// beforehand only exists to produce this error early.
var ErrDuplicateEmail = errors.New("user with this email already exists")

// UserRepository defines the interface for user operations.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	CreateUser(user *models.User) error
}
