package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

const (
	// MaxAmountDecimals matches the 0.01 step of the amount inputs.
	MaxAmountDecimals      = 2
	MaxAmountIntegerDigits = 15
)

type AccountResponse struct {
	HolderName     string          `json:"holderName"`
	CardNumber     string          `json:"cardNumber"`
	ExpirationDate string          `json:"expirationDate"`
	FaceIDEnrolled bool            `json:"faceIdEnrolled"`
	Balance        decimal.Decimal `json:"balance"`
}

type AmountRequest struct {
	Amount string `json:"amount"`
}

// ParseAmount returns the amount as a decimal, or an error wrapping commons.ErrInvalidAmount.
func (r AmountRequest) ParseAmount() (decimal.Decimal, error) {
	return ParseAmount(r.Amount)
}

func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", commons.ErrInvalidAmount)
	}

	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount must be numeric", commons.ErrInvalidAmount)
	}
	if parsed.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", commons.ErrInvalidAmount)
	}
	// Bounds are read from the exponent and coefficient; the value is never rescaled here.
	if parsed.Exponent() < -MaxAmountDecimals {
		return decimal.Zero, fmt.Errorf("%w: amount must have at most %d decimal places", commons.ErrInvalidAmount, MaxAmountDecimals)
	}
	if int64(parsed.NumDigits())+int64(parsed.Exponent()) > MaxAmountIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: amount must have at most %d integer digits", commons.ErrInvalidAmount, MaxAmountIntegerDigits)
	}
	return parsed, nil
}

type TransactionResponse struct {
	ID        int64           `json:"id"`
	Timestamp string          `json:"timestamp"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
}

type LedgerOperationResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     decimal.Decimal     `json:"balance"`
}

type TransactionsResponse struct {
	Period         string                `json:"period"`
	Count          int                   `json:"count"`
	TotalDeposits  decimal.Decimal       `json:"totalDeposits"`
	TotalWithdrawn decimal.Decimal       `json:"totalWithdrawn"`
	Transactions   []TransactionResponse `json:"transactions"`
}
