package commons

import "errors"

var (
	ErrInvalidAmount        = errors.New("amount must be a number greater than zero")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrAuthenticationFailed = errors.New("card number or pin does not match")
	ErrMalformedInput       = errors.New("malformed input")
	ErrInvalidPeriod        = errors.New("period must be one of all, today, thisWeek, thisMonth")
	ErrSessionNotFound      = errors.New("session not found or expired")
)
