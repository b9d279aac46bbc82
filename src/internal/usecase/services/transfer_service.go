package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
	"github.com/api-sage/mock-bank-portal/src/internal/logger"
	"github.com/api-sage/mock-bank-portal/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.TransferService = (*TransferService)(nil)

// TransferService simulates sending money to another card. It never touches a ledger.
type TransferService struct {
	delay        Delay
	now          func() time.Time
	newReference func() string
}

func NewTransferService(delay Delay) *TransferService {
	if delay == nil {
		delay = NoDelay
	}
	return &TransferService{
		delay:        delay,
		now:          time.Now,
		newReference: func() string { return uuid.NewString() },
	}
}

func (s *TransferService) SendMoney(ctx context.Context, session domain.Session, req models.SendMoneyRequest) (commons.Response[models.SendMoneyResponse], error) {
	req = req.Normalize()
	logger.Info("transfer service send money request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.FailureResponse[models.SendMoneyResponse]("validation failed", err), err
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return commons.FailureResponse[models.SendMoneyResponse]("validation failed", err), err
	}

	if err := s.delay(ctx); err != nil {
		logger.Info("transfer service send money abandoned", logger.Fields{
			"reason": err.Error(),
		})
		return commons.ErrorResponse[models.SendMoneyResponse]("transfer cancelled", "Failed to send money. Please try again."), err
	}

	receipt := domain.TransferReceipt{
		Reference:           s.newReference(),
		RecipientCardNumber: req.RecipientCardNumber,
		Amount:              amount,
		Status:              domain.TransferStatusSuccess,
		CompletedAt:         s.now(),
	}

	response := models.SendMoneyResponse{
		Reference:           receipt.Reference,
		RecipientCardNumber: commons.MaskCardNumber(receipt.RecipientCardNumber),
		Amount:              receipt.Amount,
		Status:              string(receipt.Status),
		CompletedAt:         receipt.CompletedAt.Format(time.RFC3339),
	}

	logger.Info("transfer service send money success", logger.Fields{
		"reference":           receipt.Reference,
		"senderCardNumber":    commons.MaskCardNumber(session.CardNumber),
		"recipientCardNumber": receipt.RecipientCardNumber,
		"amount":              receipt.Amount.String(),
	})

	return commons.SuccessResponse("money sent successfully", response), nil
}
