package store

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user's plaintext Password
	// is hashed internally; the plaintext is never persisted.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains the password hash but never a plaintext password.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdatePassword replaces the stored password digest for the user with
	// the given email, hashing the provided plaintext internally.
	// Returns ErrUserNotFound if no such user exists.
	UpdatePassword(ctx context.Context, email, newPassword string) (*domain.User, error)
}
