package domain

import (
	"context"
	"time"

	"github.com/api-sage/mock-bank-portal/src/internal/ledger"
)

// Session is one authenticated visit. It owns its ledger, which is discarded with it.
type Session struct {
	Token          string
	CardNumber     string
	HolderName     string
	ExpirationDate string
	FaceIDEnrolled bool
	CreatedAt      time.Time
	ExpiresAt      time.Time
	Ledger         *ledger.Ledger
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type SessionRepository interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
	// DeleteExpired drops every session expired at now and reports how many went.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
