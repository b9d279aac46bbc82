package telemetry

import (
	"fmt"
	"net/http"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/api-sage/mock-bank-portal/src/internal/logger"
)

const serviceOperation = "mock-bank-portal"

// Setup configures the OpenTelemetry SDK from the standard OTEL_* environment.
// When disabled it returns a no-op shutdown.
func Setup(enabled bool) (func(), error) {
	if !enabled {
		return func() {}, nil
	}

	shutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(honeycomb.NewBaggageSpanProcessor()),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	logger.Info("opentelemetry configured", nil)
	return shutdown, nil
}

// Instrument wraps handler so every request produces a server span.
func Instrument(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(handler, serviceOperation)
}
