package statement

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mock-bank-portal/src/internal/ledger"
)

func sampleStatement() Statement {
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	return Statement{
		HolderName:  "Oleksandr Stoliarchuk",
		CardNumber:  "**** **** **** 3456",
		Period:      ledger.PeriodThisWeek,
		GeneratedAt: now,
		Balance:     decimal.RequireFromString("3660"),
		Transactions: []ledger.Transaction{
			{ID: 22, Timestamp: now, Amount: decimal.RequireFromString("100"), Kind: ledger.KindDeposit},
			{ID: 3, Timestamp: now.Add(-48 * time.Hour), Amount: decimal.RequireFromString("12.5"), Kind: ledger.KindWithdrawal},
		},
	}
}

func TestCSVWriterWithHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}
	if err := w.Write(&buf, sampleStatement()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 8 {
		t.Fatalf("expected 5 metadata rows, a header and 2 rows, got %d", len(records))
	}
	if records[0][0] != "# Account Holder" || records[0][1] != "Oleksandr Stoliarchuk" {
		t.Fatalf("unexpected first metadata row %v", records[0])
	}
	if records[4][1] != "3660.00" {
		t.Fatalf("expected balance 3660.00, got %v", records[4])
	}
	if strings.Join(records[5], ",") != "Date,ID,Type,Amount" {
		t.Fatalf("unexpected header row %v", records[5])
	}
	if strings.Join(records[7], ",") != "2026-10-16T12:00:00Z,3,withdrawal,12.50" {
		t.Fatalf("unexpected transaction row %v", records[7])
	}
}

func TestCSVWriterWithoutHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, sampleStatement()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if lines[1] != "2026-10-18T12:00:00Z,22,deposit,100.00" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}
