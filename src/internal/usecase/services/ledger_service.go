package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
	"github.com/api-sage/mock-bank-portal/src/internal/ledger"
	"github.com/api-sage/mock-bank-portal/src/internal/logger"
	"github.com/api-sage/mock-bank-portal/src/internal/statement"
	"github.com/api-sage/mock-bank-portal/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.LedgerService = (*LedgerService)(nil)

// LedgerService drives the ledger owned by an authenticated session.
type LedgerService struct{}

func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

func (s *LedgerService) GetAccount(_ context.Context, session domain.Session) (commons.Response[models.AccountResponse], error) {
	response := models.AccountResponse{
		HolderName:     session.HolderName,
		CardNumber:     commons.MaskCardNumber(session.CardNumber),
		ExpirationDate: session.ExpirationDate,
		FaceIDEnrolled: session.FaceIDEnrolled,
		Balance:        session.Ledger.Balance(),
	}

	return commons.SuccessResponse("account fetched successfully", response), nil
}

func (s *LedgerService) Deposit(_ context.Context, session domain.Session, req models.AmountRequest) (commons.Response[models.LedgerOperationResponse], error) {
	return s.apply(session, req, ledger.KindDeposit, session.Ledger.Deposit)
}

func (s *LedgerService) Withdraw(_ context.Context, session domain.Session, req models.AmountRequest) (commons.Response[models.LedgerOperationResponse], error) {
	return s.apply(session, req, ledger.KindWithdrawal, session.Ledger.Withdraw)
}

func (s *LedgerService) apply(
	session domain.Session,
	req models.AmountRequest,
	kind ledger.Kind,
	op func(decimal.Decimal) (ledger.Transaction, error),
) (commons.Response[models.LedgerOperationResponse], error) {
	logger.Info("ledger service request", logger.Fields{
		"kind":    kind,
		"payload": logger.SanitizePayload(req),
	})

	amount, err := req.ParseAmount()
	if err != nil {
		return commons.FailureResponse[models.LedgerOperationResponse]("validation failed", err), err
	}

	tx, err := op(amount)
	if err != nil {
		logger.Info("ledger service operation rejected", logger.Fields{
			"kind":   kind,
			"amount": amount.String(),
			"reason": err.Error(),
		})
		switch {
		case errors.Is(err, commons.ErrInvalidAmount):
			return commons.FailureResponse[models.LedgerOperationResponse]("validation failed", err), err
		case errors.Is(err, commons.ErrInsufficientFunds):
			return commons.ErrorResponse[models.LedgerOperationResponse]("Insufficient funds"), err
		default:
			return commons.ErrorResponse[models.LedgerOperationResponse]("failed to apply transaction", "Unable to update balance right now"), err
		}
	}

	response := models.LedgerOperationResponse{
		Transaction: toTransactionResponse(tx),
		Balance:     session.Ledger.Balance(),
	}

	logger.Info("ledger service operation success", logger.Fields{
		"kind":          kind,
		"transactionId": tx.ID,
		"amount":        tx.Amount.String(),
		"balance":       response.Balance.String(),
	})

	message := "deposit successful"
	if kind == ledger.KindWithdrawal {
		message = "withdrawal successful"
	}
	return commons.SuccessResponse(message, response), nil
}

func (s *LedgerService) GetTransactions(_ context.Context, session domain.Session, rawPeriod string) (commons.Response[models.TransactionsResponse], error) {
	period, err := ledger.ParsePeriod(rawPeriod)
	if err != nil {
		return commons.FailureResponse[models.TransactionsResponse]("validation failed", err), err
	}

	txs := session.Ledger.TransactionsInPeriod(period)
	response := models.TransactionsResponse{
		Period:         string(period),
		Count:          len(txs),
		TotalDeposits:  decimal.Zero,
		TotalWithdrawn: decimal.Zero,
		Transactions:   make([]models.TransactionResponse, 0, len(txs)),
	}
	for _, tx := range txs {
		switch tx.Kind {
		case ledger.KindDeposit:
			response.TotalDeposits = response.TotalDeposits.Add(tx.Amount)
		case ledger.KindWithdrawal:
			response.TotalWithdrawn = response.TotalWithdrawn.Add(tx.Amount)
		}
		response.Transactions = append(response.Transactions, toTransactionResponse(tx))
	}

	return commons.SuccessResponse("transactions fetched successfully", response), nil
}

// ExportStatement writes the period's transactions to out as CSV.
func (s *LedgerService) ExportStatement(_ context.Context, session domain.Session, rawPeriod string, includeHeader bool, out io.Writer) error {
	period, err := ledger.ParsePeriod(rawPeriod)
	if err != nil {
		return err
	}

	w := &statement.CSVWriter{IncludeHeader: includeHeader}
	err = w.Write(out, statement.Statement{
		HolderName:   session.HolderName,
		CardNumber:   commons.MaskCardNumber(session.CardNumber),
		Period:       period,
		GeneratedAt:  session.Ledger.Now(),
		Balance:      session.Ledger.Balance(),
		Transactions: session.Ledger.TransactionsInPeriod(period),
	})
	if err != nil {
		return fmt.Errorf("export statement: %w", err)
	}
	return nil
}

func toTransactionResponse(tx ledger.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		ID:        tx.ID,
		Timestamp: tx.Timestamp.Format(time.RFC3339),
		Kind:      string(tx.Kind),
		Amount:    tx.Amount,
	}
}
