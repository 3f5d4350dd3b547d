package mocks

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// The in-memory default keeps the plaintext password as the "digest" so
// tests can pair it with MockPasswordVerifier's plain comparison.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, user *domain.User) error
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	UpdatePasswordFn func(ctx context.Context, email, newPassword string) (*domain.User, error)

	// Data for default implementation
	Users map[string]*domain.User

	CreateError         error
	GetByEmailError     error
	UpdatePasswordError error
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	stored := *user
	stored.HashedPassword = user.Password
	stored.Password = ""
	m.Users[user.Email] = &stored

	user.HashedPassword = stored.HashedPassword
	user.Password = ""
	return nil
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// UpdatePassword implements the UserStore interface.
func (m *MockUserStore) UpdatePassword(
	ctx context.Context,
	email, newPassword string,
) (*domain.User, error) {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, email, newPassword)
	}
	if m.UpdatePasswordError != nil {
		return nil, m.UpdatePasswordError
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	user.HashedPassword = newPassword
	return user, nil
}
