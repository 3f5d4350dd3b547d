package mocks

import "github.com/tasknest/tasknest-api/internal/service/auth"

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
// With PlainCompare set it succeeds when hash and password are equal, which
// pairs with MockUserStore storing plaintext as the digest; otherwise
// ShouldSucceed decides the outcome unconditionally.
type MockPasswordVerifier struct {
	ShouldSucceed bool
	PlainCompare  bool
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier interface
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.PlainCompare {
		if hashedPassword == password {
			return nil
		}
		return auth.ErrInvalidCredentials
	}
	if m.ShouldSucceed {
		return nil
	}
	return auth.ErrInvalidCredentials
}
