package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "CHANNEL_ID", "CHANNEL_KEY", "ATM_LOOKUP_DELAY", "TRANSFER_DELAY",
		"SEED_BALANCE", "SEED_TRANSACTIONS", "SESSION_TTL", "TIMEZONE", "OTEL_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.ATMLookupDelay != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s atm delay, got %s", cfg.ATMLookupDelay)
	}
	if cfg.TransferDelay != 2*time.Second {
		t.Fatalf("expected 2s transfer delay, got %s", cfg.TransferDelay)
	}
	if !cfg.SeedBalance.Equal(decimal.RequireFromString("3560")) {
		t.Fatalf("expected seed balance 3560, got %s", cfg.SeedBalance)
	}
	if cfg.SeedTransactions != 20 {
		t.Fatalf("expected 20 seed transactions, got %d", cfg.SeedTransactions)
	}
	if cfg.Location != time.Local {
		t.Fatal("expected local time zone by default")
	}
	if cfg.OTelEnabled {
		t.Fatal("expected tracing to be off by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", " :9090 ")
	t.Setenv("ATM_LOOKUP_DELAY", "0s")
	t.Setenv("SEED_BALANCE", "100.50")
	t.Setenv("SEED_TRANSACTIONS", "5")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected trimmed addr, got %q", cfg.HTTPAddr)
	}
	if cfg.ATMLookupDelay != 0 {
		t.Fatalf("expected zero delay, got %s", cfg.ATMLookupDelay)
	}
	if !cfg.SeedBalance.Equal(decimal.RequireFromString("100.5")) {
		t.Fatalf("expected seed balance 100.50, got %s", cfg.SeedBalance)
	}
	if cfg.SeedTransactions != 5 || cfg.Location != time.UTC || !cfg.OTelEnabled {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := map[string]string{
		"ATM_LOOKUP_DELAY":  "soon",
		"SEED_BALANCE":      "-1",
		"SEED_TRANSACTIONS": "many",
		"SESSION_TTL":       "0s",
		"TIMEZONE":          "Mars/Olympus",
		"OTEL_ENABLED":      "maybe",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}
