package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/mock-bank-portal/src/internal/logger"
)

// requestFields identifies the request and, when present, the session's card.
// The logger masks cardNumber down to its last four digits.
func requestFields(r *http.Request) logger.Fields {
	fields := logger.Fields{
		"method": r.Method,
		"route":  r.URL.Path,
	}
	if session, ok := middleware.SessionFromContext(r.Context()); ok {
		fields["cardNumber"] = session.CardNumber
	}
	return fields
}

func logRequest(r *http.Request, payload any) {
	fields := requestFields(r)
	if r.URL.RawQuery != "" {
		fields["query"] = r.URL.RawQuery
	}
	if payload != nil {
		fields["payload"] = logger.SanitizePayload(payload)
	}
	logger.Info("portal request received", fields)
}

func logResponse(r *http.Request, status int, payload any, start time.Time) {
	fields := requestFields(r)
	fields["status"] = status
	fields["elapsedMs"] = time.Since(start).Milliseconds()
	fields["body"] = logger.SanitizePayload(payload)
	logger.Info("portal response sent", fields)
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := requestFields(r)
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("portal handler failed", err, fields)
}
