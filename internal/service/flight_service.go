package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/availability"
	"github.com/cx-tal-miterani/flight-search-system/internal/cache"
	"github.com/cx-tal-miterani/flight-search-system/internal/catalog"
	"github.com/cx-tal-miterani/flight-search-system/internal/metrics"
	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/cx-tal-miterani/flight-search-system/internal/pricing"
	"github.com/cx-tal-miterani/flight-search-system/internal/random"
	"github.com/cx-tal-miterani/flight-search-system/internal/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DateLayout = "2006-01-02"

	minResults    = 15
	resultsWindow = 10
)

// FlightOption configures a FlightService
type FlightOption func(*flightServiceImpl)

// WithLatency makes every search wait a random duration in [min, max] before
// answering. A zero max disables the delay.
func WithLatency(min, max time.Duration) FlightOption {
	return func(s *flightServiceImpl) {
		s.latencyMin = min
		s.latencyMax = max
	}
}

// WithClock overrides the clock used for lead-time pricing
func WithClock(now func() time.Time) FlightOption {
	return func(s *flightServiceImpl) { s.now = now }
}

// flightServiceImpl implements FlightService
type flightServiceImpl struct {
	rnd        random.Source
	cache      cache.FlightCache
	logger     *zap.Logger
	now        func() time.Time
	latencyMin time.Duration
	latencyMax time.Duration

	pricer    *pricing.Engine
	scheduler *schedule.Generator
	seats     *availability.Simulator
}

// NewFlightService creates a new FlightService
func NewFlightService(rnd random.Source, flightCache cache.FlightCache, logger *zap.Logger, opts ...FlightOption) FlightService {
	s := &flightServiceImpl{
		rnd:    rnd,
		cache:  flightCache,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.pricer = pricing.NewEngine(rnd, pricing.WithClock(s.now))
	s.scheduler = schedule.NewGenerator(rnd)
	s.seats = availability.NewSimulator(rnd)
	return s
}

// --- Search Operations ---

func (s *flightServiceImpl) SearchFlights(ctx context.Context, params *models.SearchParams) ([]*models.FlightInstance, error) {
	origin, ok := catalog.Airport(params.Origin)
	if !ok {
		metrics.RecordSearch("unknown_airport", nil)
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, params.Origin)
	}
	destination, ok := catalog.Airport(params.Destination)
	if !ok {
		metrics.RecordSearch("unknown_airport", nil)
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, params.Destination)
	}

	if err := s.simulateLatency(ctx); err != nil {
		metrics.RecordSearch("canceled", nil)
		return nil, err
	}

	key := searchKey(origin, destination)
	templates := catalog.Templates()
	flights := make([]*models.FlightInstance, 0, len(templates))
	for i, tpl := range templates {
		flights = append(flights, s.buildInstance(key, i, tpl, origin, destination, params.DepartureDate))
	}

	flights = filterByPrice(flights, params.MinPrice, params.MaxPrice)
	flights = filterByAirline(flights, params.Airlines)
	flights = filterByStops(flights, params.Stops)
	flights = filterByCapacity(flights, params.Passengers)

	slices.SortStableFunc(flights, func(a, b *models.FlightInstance) int {
		return a.BasePrice - b.BasePrice
	})

	s.rnd.Shuffle(len(flights), func(i, j int) {
		flights[i], flights[j] = flights[j], flights[i]
	})
	if limit := minResults + s.rnd.IntN(resultsWindow); len(flights) > limit {
		flights = flights[:limit]
	}

	if err := s.cache.Put(ctx, flights); err != nil {
		s.logger.Warn("failed to cache search results", zap.Error(err))
	}

	prices := make([]int, len(flights))
	for i, f := range flights {
		prices[i] = f.BasePrice
	}
	metrics.RecordSearch("ok", prices)

	s.logger.Debug("search completed",
		zap.String("origin", origin.Code),
		zap.String("destination", destination.Code),
		zap.Int("passengers", params.Passengers),
		zap.Int("results", len(flights)),
	)
	return flights, nil
}

func (s *flightServiceImpl) GetFlight(ctx context.Context, flightID string) (*models.FlightInstance, error) {
	f, err := s.cache.Get(ctx, flightID)
	if errors.Is(err, cache.ErrMiss) {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load flight %s: %w", flightID, err)
	}
	return f, nil
}

// --- Catalog Operations ---

func (s *flightServiceImpl) GetAirports(ctx context.Context) []models.Airport {
	return catalog.Airports()
}

func (s *flightServiceImpl) GetAirlines(ctx context.Context) []models.Airline {
	return catalog.Airlines()
}

func (s *flightServiceImpl) GetPopularRoutes(ctx context.Context) []models.PopularRoute {
	return catalog.PopularRoutes()
}

// searchKey scopes instance ids to one search: the route plus a short random
// nonce, so cached instances of different searches never share an id
func searchKey(origin, destination models.Airport) string {
	nonce, _, _ := strings.Cut(uuid.NewString(), "-")
	return origin.Code + destination.Code + "_" + nonce
}

// buildInstance synthesizes the dated, priced instance of template index i.
// Its id is <flightNumber>_<date>_<index>_<searchKey>.
func (s *flightServiceImpl) buildInstance(key string, i int, tpl models.FlightTemplate, origin, destination models.Airport, date time.Time) *models.FlightInstance {
	times := s.scheduler.GenerateTimes(tpl.Duration, tpl.Stops)
	demand := s.rnd.Float64()
	day := date.Format(DateLayout)

	return &models.FlightInstance{
		ID:           fmt.Sprintf("%s_%s_%d_%s", tpl.FlightNumber, day, i, key),
		FlightNumber: tpl.FlightNumber,
		Airline:      tpl.Airline,
		Departure: models.Endpoint{
			Airport:  origin,
			Time:     times.Departure,
			Terminal: s.scheduler.Terminal(),
		},
		Arrival: models.Endpoint{
			Airport:  destination,
			Time:     times.Arrival,
			Terminal: s.scheduler.Terminal(),
		},
		DepartureDate:    day,
		Duration:         tpl.Duration,
		Stops:            tpl.Stops,
		Aircraft:         tpl.Aircraft,
		Class:            tpl.Class,
		BasePrice:        s.pricer.ComputePrice(tpl.BasePrice, date, demand),
		Currency:         tpl.Currency,
		Refundable:       tpl.Refundable,
		Baggage:          tpl.Baggage,
		Amenities:        tpl.Amenities,
		SeatAvailability: s.seats.Simulate(tpl.Class, tpl.SeatAvailability),
	}
}

// simulateLatency waits like a remote inventory call would, giving up early
// when ctx is done
func (s *flightServiceImpl) simulateLatency(ctx context.Context) error {
	if s.latencyMax <= 0 {
		return nil
	}

	delay := s.latencyMin
	if span := s.latencyMax - s.latencyMin; span > 0 {
		delay += time.Duration(s.rnd.IntN(int(span/time.Millisecond)+1)) * time.Millisecond
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// --- Filters ---

// filterByPrice keeps flights priced within [min, max]; nil bounds are open
func filterByPrice(flights []*models.FlightInstance, min, max *float64) []*models.FlightInstance {
	if min == nil && max == nil {
		return flights
	}
	return slices.DeleteFunc(flights, func(f *models.FlightInstance) bool {
		price := float64(f.BasePrice)
		return (min != nil && price < *min) || (max != nil && price > *max)
	})
}

func filterByAirline(flights []*models.FlightInstance, codes []string) []*models.FlightInstance {
	if len(codes) == 0 {
		return flights
	}
	return slices.DeleteFunc(flights, func(f *models.FlightInstance) bool {
		return !slices.Contains(codes, f.Airline.Code)
	})
}

// filterByStops matches exact stop counts
func filterByStops(flights []*models.FlightInstance, stops []int) []*models.FlightInstance {
	if len(stops) == 0 {
		return flights
	}
	return slices.DeleteFunc(flights, func(f *models.FlightInstance) bool {
		return !slices.Contains(stops, f.Stops)
	})
}

func filterByCapacity(flights []*models.FlightInstance, passengers int) []*models.FlightInstance {
	return slices.DeleteFunc(flights, func(f *models.FlightInstance) bool {
		return !availability.HasCapacity(f.SeatAvailability, passengers)
	})
}
