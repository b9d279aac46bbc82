package services

import (
	"context"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
	"github.com/api-sage/mock-bank-portal/src/internal/logger"
	"github.com/api-sage/mock-bank-portal/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.ATMService = (*ATMService)(nil)

type ATMService struct {
	atmRepo domain.ATMRepository
	delay   Delay
}

func NewATMService(atmRepo domain.ATMRepository, delay Delay) *ATMService {
	if delay == nil {
		delay = NoDelay
	}
	return &ATMService{atmRepo: atmRepo, delay: delay}
}

// FindNearby waits out the simulated lookup and returns the fixed ATM list.
// No location is used; every call sees the same machines.
func (s *ATMService) FindNearby(ctx context.Context) (commons.Response[[]models.ATMResponse], error) {
	if err := s.delay(ctx); err != nil {
		logger.Info("atm service lookup abandoned", logger.Fields{
			"reason": err.Error(),
		})
		return commons.ErrorResponse[[]models.ATMResponse]("atm lookup cancelled"), err
	}

	atms, err := s.atmRepo.GetAll(ctx)
	if err != nil {
		logger.Error("atm service lookup failed", err, nil)
		return commons.FailureResponse[[]models.ATMResponse]("failed to find nearby atms", err), err
	}

	resp := make([]models.ATMResponse, 0, len(atms))
	for _, atm := range atms {
		resp = append(resp, models.ATMResponse{
			ID:         atm.ID,
			Name:       atm.Name,
			Address:    atm.Address,
			DistanceKm: atm.DistanceKm,
		})
	}

	return commons.SuccessResponse("nearby atms fetched successfully", resp), nil
}
