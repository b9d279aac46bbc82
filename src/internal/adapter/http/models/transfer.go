package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

type SendMoneyRequest struct {
	RecipientCardNumber string `json:"recipientCardNumber"`
	Amount              string `json:"amount"`
}

func (r SendMoneyRequest) Normalize() SendMoneyRequest {
	return SendMoneyRequest{
		RecipientCardNumber: commons.NormalizeRecipientCard(r.RecipientCardNumber),
		Amount:              strings.TrimSpace(r.Amount),
	}
}

// Validate checks presence only. Recipient existence is never checked.
func (r SendMoneyRequest) Validate() error {
	var errs []string

	if r.RecipientCardNumber == "" {
		errs = append(errs, "recipientCardNumber is required")
	}
	if r.Amount == "" {
		errs = append(errs, "amount is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", commons.ErrMalformedInput, strings.Join(errs, "; "))
	}
	return nil
}

type SendMoneyResponse struct {
	Reference           string          `json:"reference"`
	RecipientCardNumber string          `json:"recipientCardNumber"`
	Amount              decimal.Decimal `json:"amount"`
	Status              string          `json:"status"`
	CompletedAt         string          `json:"completedAt"`
}
