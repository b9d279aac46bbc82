package service_interfaces

import (
	"context"
	"io"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
)

type LedgerService interface {
	GetAccount(ctx context.Context, session domain.Session) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, session domain.Session, req models.AmountRequest) (commons.Response[models.LedgerOperationResponse], error)
	Withdraw(ctx context.Context, session domain.Session, req models.AmountRequest) (commons.Response[models.LedgerOperationResponse], error)
	GetTransactions(ctx context.Context, session domain.Session, rawPeriod string) (commons.Response[models.TransactionsResponse], error)
	ExportStatement(ctx context.Context, session domain.Session, rawPeriod string, includeHeader bool, out io.Writer) error
}
