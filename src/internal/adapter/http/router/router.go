package router

import (
	"encoding/json"
	"net/http"
)

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

// New builds the portal mux. Auth routes sit behind the channel check only; every
// other registrar also requires a live session.
func New(
	authController RouteRegistrar,
	sessionControllers []RouteRegistrar,
	channelAuth func(http.Handler) http.Handler,
	sessionAuth func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)
	mux.HandleFunc("/health", health)

	if authController != nil {
		authController.RegisterRoutes(mux, channelAuth)
	}

	protected := chain(channelAuth, sessionAuth)
	for _, controller := range sessionControllers {
		if controller != nil {
			controller.RegisterRoutes(mux, protected)
		}
	}

	return mux
}

// chain applies middlewares outermost first, skipping nil entries.
func chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] != nil {
				next = middlewares[i](next)
			}
		}
		return next
	}
}

func health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
