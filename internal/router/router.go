package router

import (
	"net/http"

	"github.com/cx-tal-miterani/flight-search-system/internal/handlers"
	"github.com/cx-tal-miterani/flight-search-system/internal/metrics"
	"github.com/gorilla/mux"
)

// Options configures cross-cutting router behavior
type Options struct {
	AllowedOrigin string
	LoginLimiter  *handlers.RateLimiter
}

// NewRouter creates and configures the HTTP router
func NewRouter(h *handlers.Handler, opts Options) http.Handler {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware(opts.AllowedOrigin))

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights/search", h.SearchFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airports", h.GetAirports).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airlines", h.GetAirlines).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/routes/popular", h.GetPopularRoutes).Methods(http.MethodGet, http.MethodOptions)

	// Auth
	limited := func(next http.HandlerFunc) http.Handler {
		if opts.LoginLimiter == nil {
			return next
		}
		return opts.LoginLimiter.Handler(next)
	}
	api.Handle("/auth/register", limited(h.Register)).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/login", limited(h.Login)).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/me", h.RequireAuth(http.HandlerFunc(h.Me))).Methods(http.MethodGet, http.MethodOptions)

	// Health check and metrics
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	return metrics.InstrumentHandler(r)
}

func corsMiddleware(origin string) mux.MiddlewareFunc {
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if origin != "*" {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
