package services_test

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/repository/memory"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
	"github.com/api-sage/mock-bank-portal/src/internal/usecase/services"
)

var baseTime = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newSessionService(t *testing.T, clock *fakeClock) *services.SessionService {
	t.Helper()
	return newSessionServiceWithRepo(t, clock, memory.NewSessionRepository())
}

func newSessionServiceWithRepo(t *testing.T, clock *fakeClock, repo domain.SessionRepository) *services.SessionService {
	t.Helper()
	return services.NewSessionService(repo, services.SessionConfig{
		TTL:              30 * time.Minute,
		SeedBalance:      decimal.RequireFromString("3560.00"),
		SeedTransactions: 20,
		Location:         time.UTC,
		Clock:            clock.Now,
		RandSource: func() *rand.Rand {
			return rand.New(rand.NewPCG(1, 2))
		},
	})
}

func newAuthService(t *testing.T, sessions *services.SessionService) *services.AuthService {
	t.Helper()
	repo, err := memory.NewCredentialRepositoryWithCost(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to build credential repository: %v", err)
	}
	return services.NewAuthService(repo, sessions)
}

func newAuthServiceWithRepo(repo domain.CredentialRepository) *services.AuthService {
	return services.NewAuthService(repo, nil)
}
