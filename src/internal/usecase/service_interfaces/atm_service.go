package service_interfaces

import (
	"context"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

type ATMService interface {
	FindNearby(ctx context.Context) (commons.Response[[]models.ATMResponse], error)
}
