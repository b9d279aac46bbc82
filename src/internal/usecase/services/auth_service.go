package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
	"github.com/api-sage/mock-bank-portal/src/internal/logger"
	"github.com/api-sage/mock-bank-portal/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.AuthService = (*AuthService)(nil)

type AuthService struct {
	credentialRepo domain.CredentialRepository
	sessionService service_interfaces.SessionService
}

func NewAuthService(credentialRepo domain.CredentialRepository, sessionService service_interfaces.SessionService) *AuthService {
	return &AuthService{
		credentialRepo: credentialRepo,
		sessionService: sessionService,
	}
}

// Authenticate reports whether cardNumber and pin both match the stored credential exactly.
// Input is not validated; a wrong-length value simply does not match.
func (s *AuthService) Authenticate(ctx context.Context, cardNumber string, pin string) bool {
	_, ok := s.match(ctx, cardNumber, pin)
	return ok
}

func (s *AuthService) match(ctx context.Context, cardNumber string, pin string) (domain.Credential, bool) {
	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		logger.Error("auth service credential lookup failed", err, nil)
		return domain.Credential{}, false
	}

	cardMatches := subtle.ConstantTimeCompare([]byte(cardNumber), []byte(credential.CardNumber)) == 1
	pinMatches := bcrypt.CompareHashAndPassword([]byte(credential.PINHash), []byte(pin)) == nil

	return credential, cardMatches && pinMatches
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	req = req.Normalize()
	logger.Info("auth service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Info("auth service login rejected malformed input", logger.Fields{
			"reason": err.Error(),
		})
		return commons.FailureResponse[models.LoginResponse]("validation failed", err), err
	}

	credential, ok := s.match(ctx, req.CardNumber, req.PIN)
	if !ok {
		logger.Info("auth service login authentication failed", logger.Fields{
			"cardNumber": req.CardNumber,
		})
		return commons.ErrorResponse[models.LoginResponse]("authentication failed", "Please check your card number and PIN"), commons.ErrAuthenticationFailed
	}

	session, err := s.sessionService.Open(ctx, credential)
	if err != nil {
		logger.Error("auth service open session failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse]("failed to log in", "Unable to start a session right now"), err
	}

	response := models.LoginResponse{
		SessionToken:   session.Token,
		HolderName:     session.HolderName,
		CardNumber:     commons.MaskCardNumber(session.CardNumber),
		ExpirationDate: session.ExpirationDate,
		ExpiresAt:      session.ExpiresAt.Format(time.RFC3339),
	}

	logger.Info("auth service login success", logger.Fields{
		"cardNumber": session.CardNumber,
	})

	return commons.SuccessResponse("authentication successful", response), nil
}

func (s *AuthService) Logout(ctx context.Context, token string) (commons.Response[models.LogoutResponse], error) {
	token, err := models.RequireToken(token)
	if err != nil {
		return commons.ErrorResponse[models.LogoutResponse]("session not found"), err
	}

	if err := s.sessionService.Close(ctx, token); err != nil {
		if errors.Is(err, commons.ErrSessionNotFound) {
			return commons.ErrorResponse[models.LogoutResponse]("session not found"), err
		}
		logger.Error("auth service logout failed", err, nil)
		return commons.ErrorResponse[models.LogoutResponse]("failed to log out", "Unable to end the session right now"), err
	}

	return commons.SuccessResponse("logged out successfully", models.LogoutResponse{LoggedOut: true}), nil
}
