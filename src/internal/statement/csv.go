// Package statement renders a ledger view as a downloadable statement.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mock-bank-portal/src/internal/ledger"
)

// Statement is the filtered history plus the account details printed above it.
type Statement struct {
	HolderName   string
	CardNumber   string
	Period       ledger.Period
	GeneratedAt  time.Time
	Balance      decimal.Decimal
	Transactions []ledger.Transaction
}

// CSVWriter writes statements in CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// Write writes the statement to out. Metadata rows are prefixed with "#".
func (w *CSVWriter) Write(out io.Writer, s Statement) error {
	writer := csv.NewWriter(out)

	if w.IncludeHeader {
		rows := [][]string{
			{"# Account Holder", s.HolderName},
			{"# Card Number", s.CardNumber},
			{"# Period", string(s.Period)},
			{"# Generated At", s.GeneratedAt.Format(time.RFC3339)},
			{"# Balance", s.Balance.StringFixed(2)},
		}
		for _, row := range rows {
			if row[1] == "" {
				continue
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV metadata: %w", err)
			}
		}
	}

	if err := writer.Write([]string{"Date", "ID", "Type", "Amount"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, tx := range s.Transactions {
		row := []string{
			tx.Timestamp.Format(time.RFC3339),
			strconv.FormatInt(tx.ID, 10),
			string(tx.Kind),
			tx.Amount.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
