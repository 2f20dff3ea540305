package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError is a caller-fixable input problem. The reason is safe to
// show to the end user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalid(reason string) error { return &ValidationError{Reason: reason} }

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations must enforce email uniqueness themselves (unique index):
// a race between two inserts with the same email yields exactly one success
// and one ErrUserAlreadyExists.
type UserRepository interface {
	// Create inserts a new user and returns the stored row with the
	// store-assigned id and creation timestamp.
	Create(ctx context.Context, email, passwordHash string) (User, error)
	// GetByEmail looks a user up by normalized email; ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (User, error)
}
