package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps a service error to the HTTP status the front-end expects.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commons.ErrMalformedInput),
		errors.Is(err, commons.ErrInvalidAmount),
		errors.Is(err, commons.ErrInvalidPeriod):
		return http.StatusBadRequest
	case errors.Is(err, commons.ErrAuthenticationFailed),
		errors.Is(err, commons.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, commons.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes the JSON body into dst, writing a 400 response on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, start time.Time) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[struct{}]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return false
	}
	return true
}

func methodNotAllowed[T any](w http.ResponseWriter, r *http.Request, allowed string, start time.Time) {
	w.Header().Set("Allow", allowed)
	response := commons.ErrorResponse[T]("method not allowed")
	writeJSON(w, http.StatusMethodNotAllowed, response)
	logResponse(r, http.StatusMethodNotAllowed, response, start)
}

func wrap(handler http.HandlerFunc, middleware func(http.Handler) http.Handler) http.Handler {
	if middleware == nil {
		return handler
	}
	return middleware(handler)
}

// respond writes response with successStatus, or with the status mapped from err.
func respond[T any](w http.ResponseWriter, r *http.Request, response commons.Response[T], err error, successStatus int, start time.Time) {
	status := successStatus
	if err != nil {
		status = statusFor(err)
		if status >= http.StatusInternalServerError {
			logError(r, err, nil)
		}
	}
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

// requireSession returns the session stored by the session middleware, writing 401 when absent.
func requireSession[T any](w http.ResponseWriter, r *http.Request, start time.Time) (domain.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response := commons.ErrorResponse[T]("session not found or expired")
		writeJSON(w, http.StatusUnauthorized, response)
		logResponse(r, http.StatusUnauthorized, response, start)
		return domain.Session{}, false
	}
	return session, true
}
