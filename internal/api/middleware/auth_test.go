package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/mocks"
	"github.com/tasknest/tasknest-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		jwtErr     error
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid bearer token",
			header:     "Bearer good-token",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			header:     "Basic good-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer good-token",
			jwtErr:     auth.ErrExpiredToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected validation failure",
			header:     "Bearer good-token",
			jwtErr:     errors.New("key store unavailable"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{Token: "good-token", Err: tt.jwtErr}
			middleware := NewAuthMiddleware(jwtService)

			var nextCalled bool
			var seenEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seenEmail, _ = shared.UserEmail(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			middleware.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, "user@example.com", seenEmail,
					"the verified identity must be placed in the context")
			}
		})
	}
}

func TestAuthenticateDoesNotLeakFailureKind(t *testing.T) {
	t.Parallel()

	// Expired and invalid tokens both answer 401; only the message differs
	// and neither reveals whether the email exists.
	expired := &mocks.MockJWTService{
		ValidateFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return nil, auth.ErrExpiredToken
		},
	}
	invalid := &mocks.MockJWTService{
		ValidateFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return nil, auth.ErrInvalidToken
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for a rejected token")
	})

	for _, svc := range []*mocks.MockJWTService{expired, invalid} {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		NewAuthMiddleware(svc).Authenticate(next).ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
