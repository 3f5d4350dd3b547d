package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest-api/internal/cache"
	"github.com/tasknest/tasknest-api/internal/config"
	"github.com/tasknest/tasknest-api/internal/mocks"
	"github.com/tasknest/tasknest-api/internal/service"
	"github.com/tasknest/tasknest-api/internal/service/auth"
)

// newTestApplication assembles the full router with real JWT signing and
// bcrypt verification over in-memory stores, so requests exercise the same
// middleware chain and handlers as production.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:            "router-test-secret-of-sufficient-length",
			TokenLifetimeMinutes: 60,
			BcryptCost:           4,
		},
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	responseCache := cache.New()
	taskService, err := service.NewTaskService(mocks.NewMockTaskStore(), responseCache, nil)
	require.NoError(t, err)

	// The mock user store keeps plaintext as the digest, so login must use a
	// verifier that compares plaintext too.
	return &application{
		config:           cfg,
		logger:           slog.Default(),
		userStore:        mocks.NewMockUserStore(),
		responseCache:    responseCache,
		jwtService:       jwtService,
		passwordVerifier: &mocks.MockPasswordVerifier{PlainCompare: true},
		taskService:      taskService,
		mailer:           &mocks.MockMailer{},
	}
}

func doJSON(
	t *testing.T,
	router http.Handler,
	method, target, token string,
	payload interface{},
) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSignUpLoginTaskRoundTrip(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	creds := map[string]string{
		"email":    "user@example.com",
		"password": "password123",
	}

	// Sign up
	rec := doJSON(t, router, http.MethodPost, "/signUp", "", creds)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Log in and receive a signed token
	rec = doJSON(t, router, http.MethodPost, "/login", "", creds)
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// The token is verifiable and carries the identity it was issued for.
	claims, err := app.jwtService.ValidateToken(context.Background(), login.Token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)

	// The token authorizes task operations end to end.
	rec = doJSON(t, router, http.MethodPost, "/tasks", login.Token,
		map[string]string{"title": "first task"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/tasks", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "first task")

	// Without the token, the same route is rejected.
	rec = doJSON(t, router, http.MethodGet, "/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A token signed by someone else is rejected too.
	rec = doJSON(t, router, http.MethodGet, "/tasks", "forged.token.value", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublicEndpoints(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tasknest API", rec.Body.String())
}
