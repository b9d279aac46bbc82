package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultHTTPAddr = ":8080"
const defaultChannelID = "MockBankWeb"
const defaultChannelKey = "MockBankKey001"
const defaultATMLookupDelay = 1500 * time.Millisecond
const defaultTransferDelay = 2 * time.Second
const defaultSeedBalance = "3560.00"
const defaultSeedTransactions = 20
const defaultSessionTTL = 30 * time.Minute

type Config struct {
	HTTPAddr         string
	ChannelID        string
	ChannelKey       string
	ATMLookupDelay   time.Duration
	TransferDelay    time.Duration
	SeedBalance      decimal.Decimal
	SeedTransactions int
	SessionTTL       time.Duration
	Location         *time.Location
	OTelEnabled      bool
}

func Load() (Config, error) {
	atmDelay, err := durationEnv("ATM_LOOKUP_DELAY", defaultATMLookupDelay)
	if err != nil {
		return Config{}, err
	}

	transferDelay, err := durationEnv("TRANSFER_DELAY", defaultTransferDelay)
	if err != nil {
		return Config{}, err
	}

	sessionTTL, err := durationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return Config{}, err
	}
	if sessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}

	seedBalance, err := decimal.NewFromString(stringEnv("SEED_BALANCE", defaultSeedBalance))
	if err != nil {
		return Config{}, fmt.Errorf("SEED_BALANCE must be numeric: %w", err)
	}
	if seedBalance.IsNegative() {
		return Config{}, fmt.Errorf("SEED_BALANCE cannot be negative")
	}

	seedCount, err := intEnv("SEED_TRANSACTIONS", defaultSeedTransactions)
	if err != nil {
		return Config{}, err
	}
	if seedCount < 0 {
		return Config{}, fmt.Errorf("SEED_TRANSACTIONS cannot be negative")
	}

	location := time.Local
	if tz := stringEnv("TIMEZONE", ""); tz != "" {
		location, err = time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("TIMEZONE is not a known zone: %w", err)
		}
	}

	otelEnabled, err := boolEnv("OTEL_ENABLED", false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPAddr:         stringEnv("HTTP_ADDR", defaultHTTPAddr),
		ChannelID:        stringEnv("CHANNEL_ID", defaultChannelID),
		ChannelKey:       stringEnv("CHANNEL_KEY", defaultChannelKey),
		ATMLookupDelay:   atmDelay,
		TransferDelay:    transferDelay,
		SeedBalance:      seedBalance,
		SeedTransactions: seedCount,
		SessionTTL:       sessionTTL,
		Location:         location,
		OTelEnabled:      otelEnabled,
	}, nil
}

func stringEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := stringEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 1500ms: %w", key, err)
	}
	if parsed < 0 {
		return 0, fmt.Errorf("%s cannot be negative", key)
	}
	return parsed, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := stringEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := stringEnv(key, "")
	if raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false: %w", key, err)
	}
	return parsed, nil
}
