package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
	"github.com/api-sage/mock-bank-portal/src/internal/logger"
)

const SessionHeader = "X-Session-Token"

type sessionKey struct{}

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (domain.Session, error)
}

// Session resolves the X-Session-Token header and stores the session in the request
// context. Requests without a live session get 401.
func Session(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(SessionHeader))
			if token == "" {
				writeError(w, http.StatusUnauthorized, "session token is required")
				return
			}

			session, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, commons.ErrSessionNotFound) {
					logger.Info("session middleware rejected request", logger.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
					})
					writeError(w, http.StatusUnauthorized, "session not found or expired")
					return
				}
				logger.Error("session middleware resolve failed", err, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				writeError(w, http.StatusInternalServerError, "unable to verify session right now")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(domain.Session)
	return session, ok
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(commons.ErrorResponse[struct{}](message))
}
