package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
)

type TransferService interface {
	SendMoney(ctx context.Context, session domain.Session, req models.SendMoneyRequest) (commons.Response[models.SendMoneyResponse], error)
}

type TransferController struct {
	service TransferService
}

func NewTransferController(service TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/send-money", wrap(c.sendMoney, authMiddleware))
}

func (c *TransferController) sendMoney(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		methodNotAllowed[models.SendMoneyResponse](w, r, http.MethodPost, start)
		return
	}
	session, ok := requireSession[models.SendMoneyResponse](w, r, start)
	if !ok {
		return
	}

	var req models.SendMoneyRequest
	if !decodeBody(w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.SendMoney(r.Context(), session, req)
	respond(w, r, response, err, http.StatusOK, start)
}
