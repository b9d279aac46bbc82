package service_interfaces

import (
	"context"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
)

type TransferService interface {
	SendMoney(ctx context.Context, session domain.Session, req models.SendMoneyRequest) (commons.Response[models.SendMoneyResponse], error)
}
