package mocks

import (
	"context"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockFlightService is a mock implementation of FlightService
type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) SearchFlights(ctx context.Context, params *models.SearchParams) ([]*models.FlightInstance, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FlightInstance), args.Error(1)
}

func (m *MockFlightService) GetFlight(ctx context.Context, flightID string) (*models.FlightInstance, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightInstance), args.Error(1)
}

func (m *MockFlightService) GetAirports(ctx context.Context) []models.Airport {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Airport)
}

func (m *MockFlightService) GetAirlines(ctx context.Context) []models.Airline {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Airline)
}

func (m *MockFlightService) GetPopularRoutes(ctx context.Context) []models.PopularRoute {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.PopularRoute)
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterUser(ctx context.Context, email, password, name string) (*models.User, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) CreateSession(ctx context.Context, userID string) (*models.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) SweepExpiredSessions(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}
