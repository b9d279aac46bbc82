package controller

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
	"github.com/api-sage/mock-bank-portal/src/internal/domain"
)

type LedgerService interface {
	GetAccount(ctx context.Context, session domain.Session) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, session domain.Session, req models.AmountRequest) (commons.Response[models.LedgerOperationResponse], error)
	Withdraw(ctx context.Context, session domain.Session, req models.AmountRequest) (commons.Response[models.LedgerOperationResponse], error)
	GetTransactions(ctx context.Context, session domain.Session, rawPeriod string) (commons.Response[models.TransactionsResponse], error)
	ExportStatement(ctx context.Context, session domain.Session, rawPeriod string, includeHeader bool, out io.Writer) error
}

type AccountController struct {
	service LedgerService
}

func NewAccountController(service LedgerService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/account", wrap(c.getAccount, authMiddleware))
	mux.Handle("/account/deposit", wrap(c.deposit, authMiddleware))
	mux.Handle("/account/withdraw", wrap(c.withdraw, authMiddleware))
	mux.Handle("/transactions", wrap(c.getTransactions, authMiddleware))
	mux.Handle("/transactions/export", wrap(c.exportStatement, authMiddleware))
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		methodNotAllowed[models.AccountResponse](w, r, http.MethodGet, start)
		return
	}
	session, ok := requireSession[models.AccountResponse](w, r, start)
	if !ok {
		return
	}
	logRequest(r, nil)

	response, err := c.service.GetAccount(r.Context(), session)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	c.applyAmount(w, r, c.service.Deposit)
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	c.applyAmount(w, r, c.service.Withdraw)
}

func (c *AccountController) applyAmount(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, domain.Session, models.AmountRequest) (commons.Response[models.LedgerOperationResponse], error),
) {
	start := time.Now()
	if r.Method != http.MethodPost {
		methodNotAllowed[models.LedgerOperationResponse](w, r, http.MethodPost, start)
		return
	}
	session, ok := requireSession[models.LedgerOperationResponse](w, r, start)
	if !ok {
		return
	}

	var req models.AmountRequest
	if !decodeBody(w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := op(r.Context(), session, req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AccountController) getTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		methodNotAllowed[models.TransactionsResponse](w, r, http.MethodGet, start)
		return
	}
	session, ok := requireSession[models.TransactionsResponse](w, r, start)
	if !ok {
		return
	}
	logRequest(r, nil)

	response, err := c.service.GetTransactions(r.Context(), session, r.URL.Query().Get("period"))
	respond(w, r, response, err, http.StatusOK, start)
}

// exportStatement streams the period's transactions as a CSV attachment.
// The header block is included unless header=false.
func (c *AccountController) exportStatement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodGet {
		methodNotAllowed[struct{}](w, r, http.MethodGet, start)
		return
	}
	session, ok := requireSession[struct{}](w, r, start)
	if !ok {
		return
	}
	logRequest(r, nil)

	query := r.URL.Query()
	includeHeader := true
	if raw := strings.TrimSpace(query.Get("header")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response := commons.ErrorResponse[struct{}]("validation failed", "header must be true or false")
			writeJSON(w, http.StatusBadRequest, response)
			logResponse(r, http.StatusBadRequest, response, start)
			return
		}
		includeHeader = parsed
	}

	var buf bytes.Buffer
	if err := c.service.ExportStatement(r.Context(), session, query.Get("period"), includeHeader, &buf); err != nil {
		respond(w, r, commons.FailureResponse[struct{}]("failed to export statement", err), err, http.StatusOK, start)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="statement.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	logResponse(r, http.StatusOK, map[string]any{"bytes": buf.Len()}, start)
}
