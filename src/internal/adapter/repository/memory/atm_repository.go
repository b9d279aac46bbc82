package memory

import (
	"context"

	"github.com/api-sage/mock-bank-portal/src/internal/domain"
)

type ATMRepository struct{}

func NewATMRepository() *ATMRepository {
	return &ATMRepository{}
}

// GetAll returns a fresh copy of the same four machines on every call.
func (r *ATMRepository) GetAll(_ context.Context) ([]domain.ATM, error) {
	atms := []domain.ATM{
		{ID: "1", Name: "Central Square ATM", Address: "123 Main St, City Center", DistanceKm: 0.5},
		{ID: "2", Name: "Shopping Mall ATM", Address: "456 Market Ave, Downtown", DistanceKm: 1.2},
		{ID: "3", Name: "University Campus ATM", Address: "789 College Rd, Uptown", DistanceKm: 2.3},
		{ID: "4", Name: "Train Station ATM", Address: "101 Railway St, Midtown", DistanceKm: 3.1},
	}

	return atms, nil
}
