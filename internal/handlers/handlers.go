package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the session token
const SessionCookie = "session-token"

// Handler contains HTTP handlers for the API
type Handler struct {
	flightService service.FlightService
	authService   service.AuthService
	validate      *validator.Validate
	logger        *zap.Logger
	secureCookies bool
}

// NewHandler creates a new Handler instance. secureCookies marks the session
// cookie Secure and should be set in production.
func NewHandler(flightService service.FlightService, authService service.AuthService, logger *zap.Logger, secureCookies bool) *Handler {
	return &Handler{
		flightService: flightService,
		authService:   authService,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        logger,
		secureCookies: secureCookies,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// StatusClientClosedRequest is recorded when the caller hangs up mid-request
const StatusClientClosedRequest = 499

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{"error": message, "success": false})
}

// respondInternal logs err and answers with a generic 500
func (h *Handler) respondInternal(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// validationMessage turns the first failed validation into a client message
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Passengers":
		return "Passengers must be between 1 and 9"
	case "Email":
		return "Invalid email format"
	case "Password":
		if fe.Tag() == "max" {
			return "Password must be at most 72 characters long"
		}
		return "Password must be at least 6 characters long"
	case "Origin", "Destination":
		return fmt.Sprintf("%s must be a 3-letter airport code", fe.Field())
	default:
		return fmt.Sprintf("Invalid value for %s", fe.Field())
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
