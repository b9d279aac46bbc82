package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/controller"
	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/mock-bank-portal/src/internal/adapter/http/router"
	"github.com/api-sage/mock-bank-portal/src/internal/adapter/repository/memory"
	"github.com/api-sage/mock-bank-portal/src/internal/config"
	"github.com/api-sage/mock-bank-portal/src/internal/logger"
	"github.com/api-sage/mock-bank-portal/src/internal/telemetry"
	"github.com/api-sage/mock-bank-portal/src/internal/usecase/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	shutdownTelemetry, err := telemetry.Setup(cfg.OTelEnabled)
	if err != nil {
		log.Fatalf("setup telemetry: %v", err)
	}
	defer shutdownTelemetry()

	handler, err := newHandler(cfg)
	if err != nil {
		log.Fatalf("build handler: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg.HTTPAddr, telemetry.Instrument(handler)); err != nil {
		log.Fatalf("serve: %v", err)
	}
	logger.Info("server stopped", nil)
}

func newHandler(cfg config.Config) (http.Handler, error) {
	credentialRepo, err := memory.NewCredentialRepository()
	if err != nil {
		return nil, fmt.Errorf("credential repository: %w", err)
	}
	atmRepo := memory.NewATMRepository()
	sessionRepo := memory.NewSessionRepository()

	sessionService := services.NewSessionService(sessionRepo, services.SessionConfig{
		TTL:              cfg.SessionTTL,
		SeedBalance:      cfg.SeedBalance,
		SeedTransactions: cfg.SeedTransactions,
		Location:         cfg.Location,
	})
	authService := services.NewAuthService(credentialRepo, sessionService)
	ledgerService := services.NewLedgerService()
	atmService := services.NewATMService(atmRepo, services.FixedDelay(cfg.ATMLookupDelay))
	transferService := services.NewTransferService(services.FixedDelay(cfg.TransferDelay))

	return router.New(
		controller.NewAuthController(authService),
		[]router.RouteRegistrar{
			controller.NewAccountController(ledgerService),
			controller.NewATMController(atmService),
			controller.NewTransferController(transferService),
		},
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
		middleware.Session(sessionService),
	), nil
}

// serve runs the HTTP server until ctx ends, then drains in-flight requests.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", logger.Fields{"addr": addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("http server shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
