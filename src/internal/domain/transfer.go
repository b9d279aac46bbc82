package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransferStatus string

const (
	TransferStatusSuccess TransferStatus = "SUCCESS"
)

// TransferReceipt is what a simulated send-money call reports back. Nothing is debited.
type TransferReceipt struct {
	Reference           string
	RecipientCardNumber string
	Amount              decimal.Decimal
	Status              TransferStatus
	CompletedAt         time.Time
}
