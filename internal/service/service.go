package service

import (
	"context"
	"errors"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
)

var (
	ErrUnknownAirport     = errors.New("unknown airport")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrPasswordTooLong    = errors.New("password longer than 72 bytes")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("session invalid or expired")
)

// FlightService defines the flight search interface
type FlightService interface {
	SearchFlights(ctx context.Context, params *models.SearchParams) ([]*models.FlightInstance, error)
	GetFlight(ctx context.Context, flightID string) (*models.FlightInstance, error)
	GetAirports(ctx context.Context) []models.Airport
	GetAirlines(ctx context.Context) []models.Airline
	GetPopularRoutes(ctx context.Context) []models.PopularRoute
}

// AuthService defines the account and session interface
type AuthService interface {
	RegisterUser(ctx context.Context, email, password, name string) (*models.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*models.User, error)
	CreateSession(ctx context.Context, userID string) (*models.Session, error)
	ValidateSession(ctx context.Context, token string) (*models.User, error)
	DeleteSession(ctx context.Context, token string) error
	SweepExpiredSessions(ctx context.Context) int
}
