package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/domain"
)

// ownerFromContext extracts the authenticated email placed in the context by
// the authentication middleware. If it is absent the request never passed
// the middleware; an error response is written and false returned.
func ownerFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := shared.UserEmail(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return email, true
}

// pathTaskID extracts the numeric task ID from the URL path.
// Returns a domain.ErrInvalidID-wrapped error for missing or non-numeric
// values so the caller can map it to a 400.
func pathTaskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, fmt.Errorf("%w: id is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}
