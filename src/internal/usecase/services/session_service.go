package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
	"github.com/api-sage/mock-bank-portal/src/internal/ledger"
	"github.com/api-sage/mock-bank-portal/src/internal/logger"
	"github.com/api-sage/mock-bank-portal/src/internal/usecase/service_interfaces"
)

type SessionConfig struct {
	TTL              time.Duration
	SeedBalance      decimal.Decimal
	SeedTransactions int
	Location         *time.Location
	// Clock and RandSource default to time.Now and a randomly seeded PCG.
	Clock      func() time.Time
	RandSource func() *rand.Rand
}

var _ service_interfaces.SessionService = (*SessionService)(nil)

type SessionService struct {
	sessionRepo domain.SessionRepository
	cfg         SessionConfig
	newToken    func() string
}

func NewSessionService(sessionRepo domain.SessionRepository, cfg SessionConfig) *SessionService {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.RandSource == nil {
		cfg.RandSource = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	return &SessionService{
		sessionRepo: sessionRepo,
		cfg:         cfg,
		newToken:    func() string { return uuid.NewString() },
	}
}

// Open starts a session for credential with a freshly seeded ledger. Sessions that
// expired without a logout are swept first.
func (s *SessionService) Open(ctx context.Context, credential domain.Credential) (domain.Session, error) {
	now := s.cfg.Clock()
	s.sweepExpired(ctx, now)

	history := ledger.GenerateHistory(s.cfg.RandSource(), now.In(s.cfg.Location), s.cfg.SeedTransactions)

	session := domain.Session{
		Token:          s.newToken(),
		CardNumber:     credential.CardNumber,
		HolderName:     credential.HolderName,
		ExpirationDate: credential.ExpirationDate,
		FaceIDEnrolled: credential.FaceID != "",
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.cfg.TTL),
		Ledger: ledger.New(
			s.cfg.SeedBalance,
			history,
			ledger.WithClock(s.cfg.Clock),
			ledger.WithLocation(s.cfg.Location),
		),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("open session: %w", err)
	}

	logger.Info("session service opened session", logger.Fields{
		"cardNumber":       session.CardNumber,
		"seedTransactions": len(history),
		"expiresAt":        session.ExpiresAt.Format(time.RFC3339),
	})

	return session, nil
}

func (s *SessionService) sweepExpired(ctx context.Context, now time.Time) {
	removed, err := s.sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("session service sweep expired sessions failed", err, nil)
		return
	}
	if removed > 0 {
		logger.Info("session service swept expired sessions", logger.Fields{
			"removed": removed,
		})
	}
}

// Resolve returns the live session for token. Unknown and expired tokens both yield
// commons.ErrSessionNotFound; expired sessions are dropped.
func (s *SessionService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	session, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Session{}, commons.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("resolve session: %w", err)
	}

	if session.Expired(s.cfg.Clock()) {
		if err := s.sessionRepo.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
			logger.Error("session service drop expired session failed", err, nil)
		}
		logger.Info("session service session expired", logger.Fields{
			"cardNumber": session.CardNumber,
		})
		return domain.Session{}, commons.ErrSessionNotFound
	}

	return session, nil
}

func (s *SessionService) Close(ctx context.Context, token string) error {
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrSessionNotFound
		}
		return fmt.Errorf("close session: %w", err)
	}

	logger.Info("session service closed session", nil)
	return nil
}
