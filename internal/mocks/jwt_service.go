package mocks

import (
	"context"
	"time"

	"github.com/tasknest/tasknest-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil.
	Token string
	// Err is returned by both methods when set.
	Err error
	// ValidateFn overrides ValidateToken entirely when set.
	ValidateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Ensure MockJWTService implements auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)

// IdentityValidateFn builds a ValidateFn that maps each listed token string
// to its own identity, for tests exercising more than one caller.
func IdentityValidateFn(identities map[string]string) func(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return func(ctx context.Context, tokenString string) (*auth.Claims, error) {
		email, ok := identities[tokenString]
		if !ok {
			return nil, auth.ErrInvalidToken
		}
		now := time.Now().UTC()
		return &auth.Claims{
			Email:     email,
			Subject:   email,
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
		}, nil
	}
}

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, email string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements the JWTService interface.
// The default treats the mock's Token as the single valid credential and
// maps it to the email "user@example.com".
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if tokenString != m.Token {
		return nil, auth.ErrInvalidToken
	}

	now := time.Now().UTC()
	return &auth.Claims{
		Email:     "user@example.com",
		Subject:   "user@example.com",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}, nil
}
