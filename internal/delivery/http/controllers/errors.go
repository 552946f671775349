package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventpoll/internal/delivery/http/helpers"
	"eventpoll/internal/delivery/http/middleware"
	"eventpoll/internal/domain"
)

// userIDOrUnauthorized returns the authenticated user ID, writing 401 when it is missing.
func userIDOrUnauthorized(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}

// writeServiceError maps domain errors to the error envelope. Anything unrecognised is logged and
// reported as a persistence failure.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, msg)
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "you are not allowed to perform this action")
	case errors.Is(err, domain.ErrNoVote):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "No vote found to remove")
	case errors.Is(err, domain.ErrUserNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFound)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}
