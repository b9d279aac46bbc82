package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/models"
	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	Logout(ctx context.Context, token string) (commons.Response[models.LogoutResponse], error)
}

type AuthController struct {
	service AuthService
}

func NewAuthController(service AuthService) *AuthController {
	return &AuthController{service: service}
}

// RegisterRoutes mounts login and logout. Logout reads the session header itself so an
// unknown token is reported by the service rather than rejected upstream.
func (c *AuthController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("/auth/login", wrap(c.login, authMiddleware))
	mux.Handle("/auth/logout", wrap(c.logout, authMiddleware))
}

func (c *AuthController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		methodNotAllowed[models.LoginResponse](w, r, http.MethodPost, start)
		return
	}

	var req models.LoginRequest
	if !decodeBody(w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.Login(r.Context(), req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *AuthController) logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		methodNotAllowed[models.LogoutResponse](w, r, http.MethodPost, start)
		return
	}
	logRequest(r, nil)

	response, err := c.service.Logout(r.Context(), r.Header.Get(middleware.SessionHeader))
	respond(w, r, response, err, http.StatusOK, start)
}
