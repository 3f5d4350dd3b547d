package api

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/cache"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/platform/mail"
	"github.com/tasknest/tasknest-api/internal/redact"
	"github.com/tasknest/tasknest-api/internal/service/auth"
	"github.com/tasknest/tasknest-api/internal/store"
)

// tempPasswordBytes is the entropy of a generated recovery password.
// 20 random bytes hex-encode to a 40-character temporary password.
const tempPasswordBytes = 20

// AuthHandler handles authentication-related API requests: login, sign-up,
// and the two password reset flows.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	mailer           mail.Mailer
	responseCache    *cache.Cache
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	mailer mail.Mailer,
	responseCache *cache.Cache,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		mailer:           mailer,
		responseCache:    responseCache,
		validator:        validator.New(),
	}
}

// SignUp handles POST /signUp.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	// The store hashes the plaintext password internally.
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		slog.Error("failed to create user", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email and password are required")
		return
	}

	if err := h.validateCredentials(r, req.Email, req.Password); err != nil {
		h.respondCredentialFailure(w, r, err)
		return
	}

	// A fresh session may follow stale cached reads for this identity.
	h.responseCache.Invalidate(cache.TaskListKey(req.Email))

	token, err := h.jwtService.GenerateToken(r.Context(), req.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", redact.Error(err))
		shared.RespondWithError(
			w,
			r,
			http.StatusInternalServerError,
			"Failed to generate authentication token",
		)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// RecoverPassword handles PUT /recover-password.
//
// The temporary password is committed before the mail is attempted: a send
// failure returns a 500 with the new digest already stored. The endpoint is
// at-least-once-changed, at-most-once-notified.
func (h *AuthHandler) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	var req RecoverPasswordRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email is required")
		return
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		slog.Error("failed to generate temporary password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	if _, err := h.userStore.UpdatePassword(r.Context(), req.Email, tempPassword); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("failed to store temporary password", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	body := fmt.Sprintf(
		"Your temporary password is: %s\n\nUse it to log in and then change it right away.\n",
		tempPassword)
	if err := h.mailer.Send(r.Context(), req.Email, "Reset password", body); err != nil {
		slog.Error("failed to send recovery email", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to send email")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RecoverPasswordResponse{
		Email:   req.Email,
		Message: fmt.Sprintf("Temporary password sent to %s.", req.Email),
	})
}

// ResetPassword handles PUT /reset-password.
// The current password is re-verified through the same path as login before
// the new one is stored; a failed check leaves the stored digest unchanged.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.validateCredentials(r, req.Email, req.CurrentPassword); err != nil {
		h.respondCredentialFailure(w, r, err)
		return
	}

	user, err := h.userStore.UpdatePassword(r.Context(), req.Email, req.NewPassword)
	if err != nil {
		slog.Error("failed to update password", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update password")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// validateCredentials looks up the user and compares the password digest.
// Returns auth.ErrInvalidCredentials for both an unknown email and a
// mismatch so callers cannot probe which of the two failed.
func (h *AuthHandler) validateCredentials(r *http.Request, email, password string) error {
	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return auth.ErrInvalidCredentials
		}
		return err
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		return auth.ErrInvalidCredentials
	}

	return nil
}

// respondCredentialFailure maps a validateCredentials error to a response:
// 401 for bad credentials, 500 for an underlying store failure.
func (h *AuthHandler) respondCredentialFailure(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, auth.ErrInvalidCredentials) {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	slog.Error("failed to validate credentials", "error", redact.Error(err))
	shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
}

// generateTempPassword returns a hex-encoded random password.
func generateTempPassword() (string, error) {
	b := make([]byte, tempPasswordBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
