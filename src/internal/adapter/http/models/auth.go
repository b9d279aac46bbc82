package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

type LoginRequest struct {
	CardNumber string `json:"cardNumber"`
	PIN        string `json:"pin"`
}

// Normalize strips non-digits and caps both fields at their expected lengths.
func (r LoginRequest) Normalize() LoginRequest {
	return LoginRequest{
		CardNumber: commons.NormalizeCardNumber(r.CardNumber),
		PIN:        commons.NormalizePIN(r.PIN),
	}
}

// Validate expects an already normalized request.
func (r LoginRequest) Validate() error {
	var errs []string

	if !commons.IsCardNumber(r.CardNumber) {
		errs = append(errs, "cardNumber must be 16 digits long")
	}
	if !commons.IsPIN(r.PIN) {
		errs = append(errs, "pin must be 4 digits long")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", commons.ErrMalformedInput, strings.Join(errs, "; "))
	}
	return nil
}

type LoginResponse struct {
	SessionToken   string `json:"sessionToken"`
	HolderName     string `json:"holderName"`
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	ExpiresAt      string `json:"expiresAt"`
}

type LogoutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}

var errMissingToken = errors.New("session token is required")

// RequireToken trims token and rejects an empty one.
func RequireToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: %v", commons.ErrSessionNotFound, errMissingToken)
	}
	return token, nil
}
