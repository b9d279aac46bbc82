package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/api-sage/mock-bank-portal/src/internal/domain"
)

const (
	storedCardNumber     = "1234567890123456"
	storedPIN            = "1234"
	storedExpirationDate = "12/25"
	storedHolderName     = "Oleksandr Stoliarchuk"
	storedFaceID         = "unique_face_identifier"
)

// CredentialRepository serves the one fixed card. The PIN is hashed once at construction.
type CredentialRepository struct {
	credential domain.Credential
}

func NewCredentialRepository() (*CredentialRepository, error) {
	return NewCredentialRepositoryWithCost(bcrypt.DefaultCost)
}

// NewCredentialRepositoryWithCost lets tests trade hash strength for speed.
func NewCredentialRepositoryWithCost(cost int) (*CredentialRepository, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(storedPIN), cost)
	if err != nil {
		return nil, fmt.Errorf("hash stored pin: %w", err)
	}

	return &CredentialRepository{
		credential: domain.Credential{
			CardNumber:     storedCardNumber,
			PINHash:        string(hashed),
			ExpirationDate: storedExpirationDate,
			HolderName:     storedHolderName,
			FaceID:         storedFaceID,
		},
	}, nil
}

func (r *CredentialRepository) Get(_ context.Context) (domain.Credential, error) {
	return r.credential, nil
}
