package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventpoll/internal/delivery/http/helpers"
	"eventpoll/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

var (
	errMissingHeader = errors.New("missing authorization header")
	errNotBearer     = errors.New("authorization scheme must be Bearer")
	errEmptyToken    = errors.New("missing token")
)

// SetUserID returns a context carrying the authenticated user ID.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// bearerToken extracts the token from an Authorization header. The scheme is case-insensitive.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// RequireAuth returns a wrapper that verifies the bearer token and stores the user ID in the
// request context. Requests without a valid token get 401 and never reach next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				unauthorized(w, "", err.Error())
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				if errors.Is(err, domain.ErrTokenExpired) {
					unauthorized(w, "invalid_token", "token expired")
					return
				}
				unauthorized(w, "invalid_token", "invalid token")
				return
			}
			next(w, r.WithContext(SetUserID(r.Context(), userID)))
		}
	}
}

// unauthorized writes 401 with a Bearer challenge; oauthErr is the RFC 6750 error code, if any.
func unauthorized(w http.ResponseWriter, oauthErr, message string) {
	challenge := `Bearer realm="eventpoll"`
	if oauthErr != "" {
		challenge += `, error="` + oauthErr + `"`
	}
	w.Header().Set("WWW-Authenticate", challenge)
	h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, message)
}
