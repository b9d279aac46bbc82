package service_interfaces

import (
	"context"

	"github.com/api-sage/mock-bank-portal/src/internal/domain"
)

type SessionService interface {
	Open(ctx context.Context, credential domain.Credential) (domain.Session, error)
	Resolve(ctx context.Context, token string) (domain.Session, error)
	Close(ctx context.Context, token string) error
}
