package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

type ATMService interface {
	FindNearby(ctx context.Context) (commons.Response[[]models.ATMResponse], error)
}

type ATMController struct {
	service ATMService
}

func NewATMController(service ATMService) *ATMController {
	return &ATMController{service: service}
}

func (c *ATMController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/atms/nearby", wrap(c.findNearby, authMiddleware))
}

func (c *ATMController) findNearby(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		methodNotAllowed[[]models.ATMResponse](w, r, http.MethodGet, start)
		return
	}
	if _, ok := requireSession[[]models.ATMResponse](w, r, start); !ok {
		return
	}
	logRequest(r, nil)

	response, err := c.service.FindNearby(r.Context())
	respond(w, r, response, err, http.StatusOK, start)
}
