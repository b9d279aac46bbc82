package service_interfaces

import (
	"context"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

type AuthService interface {
	Authenticate(ctx context.Context, cardNumber string, pin string) bool
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	Logout(ctx context.Context, token string) (commons.Response[models.LogoutResponse], error)
}
