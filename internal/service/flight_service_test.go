package service

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/cache"
	"github.com/cx-tal-miterani/flight-search-system/internal/catalog"
	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/cx-tal-miterani/flight-search-system/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Monday
var searchNow = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func newTestFlightService(rnd random.Source, opts ...FlightOption) (FlightService, *cache.Memory) {
	c := cache.NewMemory(100, time.Minute)
	opts = append([]FlightOption{WithClock(func() time.Time { return searchNow })}, opts...)
	return NewFlightService(rnd, c, zap.NewNop(), opts...), c
}

func baseParams() *models.SearchParams {
	return &models.SearchParams{
		Origin:        "DAC",
		Destination:   "DXB",
		DepartureDate: time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC),
		Passengers:    2,
	}
}

func ptr(f float64) *float64 { return &f }

func ids(flights []*models.FlightInstance) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	slices.Sort(out)
	return out
}

func TestSearchFlights_EndToEnd(t *testing.T) {
	svc, _ := newTestFlightService(random.NewSeeded(42))

	for run := 0; run < 20; run++ {
		flights, err := svc.SearchFlights(context.Background(), baseParams())
		require.NoError(t, err)
		require.NotEmpty(t, flights)

		for _, f := range flights {
			assert.GreaterOrEqual(t, f.SeatAvailability.Total(), 2)
			_, ok := catalog.Airline(f.Airline.Code)
			assert.True(t, ok, "airline %s not in catalog", f.Airline.Code)
			assert.Greater(t, f.BasePrice, 0)
			assert.Greater(t, f.Duration, 0)
			assert.GreaterOrEqual(t, f.Stops, 0)
			assert.Equal(t, "DAC", f.Departure.Airport.Code)
			assert.Equal(t, "DXB", f.Arrival.Airport.Code)
			assert.Equal(t, "2026-11-08", f.DepartureDate)
		}
	}
}

func TestSearchFlights_AllCatalogPairs(t *testing.T) {
	svc, _ := newTestFlightService(random.NewSeeded(7))
	airports := catalog.Airports()

	for _, from := range airports {
		for _, to := range airports {
			params := baseParams()
			params.Origin, params.Destination = from.Code, to.Code

			flights, err := svc.SearchFlights(context.Background(), params)
			require.NoError(t, err)
			for _, f := range flights {
				_, ok := catalog.Airport(f.Departure.Airport.Code)
				assert.True(t, ok)
				_, ok = catalog.Airport(f.Arrival.Airport.Code)
				assert.True(t, ok)
			}
		}
	}
}

func TestSearchFlights_UnknownAirport(t *testing.T) {
	svc, c := newTestFlightService(random.NewSeeded(1))

	params := baseParams()
	params.Destination = "XXX"
	flights, err := svc.SearchFlights(context.Background(), params)
	assert.ErrorIs(t, err, ErrUnknownAirport)
	assert.Nil(t, flights)
	assert.Equal(t, 0, c.Len())

	params = baseParams()
	params.Origin = "ZZZ"
	_, err = svc.SearchFlights(context.Background(), params)
	assert.ErrorIs(t, err, ErrUnknownAirport)
}

func TestSearchFlights_InstanceIDs(t *testing.T) {
	svc, _ := newTestFlightService(random.Fixed{F: 0.5})

	flights, err := svc.SearchFlights(context.Background(), baseParams())
	require.NoError(t, err)

	byNumber := map[string]string{}
	for _, f := range flights {
		byNumber[f.FlightNumber] = f.ID
	}
	assert.Regexp(t, `^SQ447_2026-11-08_0_DACDXB_[0-9a-f]{8}$`, byNumber["SQ447"])
	assert.Regexp(t, `^KL875_2026-11-08_9_DACDXB_[0-9a-f]{8}$`, byNumber["KL875"])
}

func TestSearchFlights_SortedByPriceWithoutShuffle(t *testing.T) {
	// Fixed never permutes, so the price order survives the shuffle step
	svc, _ := newTestFlightService(random.Fixed{F: 0.5})

	flights, err := svc.SearchFlights(context.Background(), baseParams())
	require.NoError(t, err)
	require.Len(t, flights, 10)

	assert.True(t, slices.IsSortedFunc(flights, func(a, b *models.FlightInstance) int {
		return a.BasePrice - b.BasePrice
	}))
	assert.Equal(t, "KL875", flights[0].FlightNumber)
	assert.Equal(t, 303, flights[0].BasePrice)
}

func TestSearchFlights_PriceFilter(t *testing.T) {
	svc, _ := newTestFlightService(random.Fixed{F: 0.5})

	params := baseParams()
	params.MinPrice = ptr(310)
	params.MaxPrice = ptr(400)

	flights, err := svc.SearchFlights(context.Background(), params)
	require.NoError(t, err)

	numbers := make([]string, 0, len(flights))
	for _, f := range flights {
		assert.GreaterOrEqual(t, float64(f.BasePrice), 310.0)
		assert.LessOrEqual(t, float64(f.BasePrice), 400.0)
		numbers = append(numbers, f.FlightNumber)
	}
	assert.ElementsMatch(t, []string{"LH761", "TK713", "EK589"}, numbers)
}

func TestSearchFlights_PriceFilterInclusiveBounds(t *testing.T) {
	svc, _ := newTestFlightService(random.Fixed{F: 0.5})

	params := baseParams()
	params.MinPrice = ptr(303)
	params.MaxPrice = ptr(303)

	flights, err := svc.SearchFlights(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "KL875", flights[0].FlightNumber)
}

func TestSearchFlights_AirlineAndStopFilters(t *testing.T) {
	svc, _ := newTestFlightService(random.NewSeeded(3))

	params := baseParams()
	params.Airlines = []string{"EK", "QR"}
	params.Stops = []int{1}

	flights, err := svc.SearchFlights(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, flights)

	numbers := make([]string, 0, len(flights))
	for _, f := range flights {
		assert.Contains(t, []string{"EK", "QR"}, f.Airline.Code)
		assert.Equal(t, 1, f.Stops)
		numbers = append(numbers, f.FlightNumber)
	}
	assert.ElementsMatch(t, []string{"QR641", "EK589"}, numbers)
}

func TestSearchFlights_StopFilterMatchesExactCounts(t *testing.T) {
	svc, _ := newTestFlightService(random.NewSeeded(5))

	params := baseParams()
	params.Stops = []int{2}

	flights, err := svc.SearchFlights(context.Background(), params)
	require.NoError(t, err)
	for _, f := range flights {
		assert.Equal(t, 2, f.Stops)
	}
}

func TestFilters_Idempotent(t *testing.T) {
	svc := NewFlightService(random.NewSeeded(11), cache.NewMemory(10, time.Minute), zap.NewNop(),
		WithClock(func() time.Time { return searchNow })).(*flightServiceImpl)

	origin, _ := catalog.Airport("DAC")
	dest, _ := catalog.Airport("DXB")
	var flights []*models.FlightInstance
	for i, tpl := range catalog.Templates() {
		flights = append(flights, svc.buildInstance("DACDXB_test", i, tpl, origin, dest, baseParams().DepartureDate))
	}

	tests := []struct {
		name  string
		apply func([]*models.FlightInstance) []*models.FlightInstance
	}{
		{"price", func(in []*models.FlightInstance) []*models.FlightInstance {
			return filterByPrice(in, ptr(300), ptr(700))
		}},
		{"airline", func(in []*models.FlightInstance) []*models.FlightInstance {
			return filterByAirline(in, []string{"SQ", "TK", "KL"})
		}},
		{"stops", func(in []*models.FlightInstance) []*models.FlightInstance {
			return filterByStops(in, []int{0, 2})
		}},
		{"capacity", func(in []*models.FlightInstance) []*models.FlightInstance {
			return filterByCapacity(in, 9)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := tt.apply(slices.Clone(flights))
			twice := tt.apply(tt.apply(slices.Clone(flights)))
			assert.Equal(t, ids(once), ids(twice))
		})
	}
}

func TestSearchFlights_AvailabilityGating(t *testing.T) {
	tests := []struct {
		name string
		rnd  random.Source
	}{
		{"minimum draws", random.Fixed{F: 0.0}},
		{"maximum draws", random.Fixed{F: 0.999, High: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestFlightService(tt.rnd)
			params := baseParams()
			params.Passengers = 9

			flights, err := svc.SearchFlights(context.Background(), params)
			require.NoError(t, err)
			require.NotEmpty(t, flights)

			for _, f := range flights {
				assert.GreaterOrEqual(t, f.SeatAvailability.Total(), 9, f.FlightNumber)
				// eight business seats can never seat nine
				assert.NotEqual(t, "QR639", f.FlightNumber)
			}
		})
	}
}

func TestSearchFlights_TruncatesToWindow(t *testing.T) {
	svc, _ := newTestFlightService(random.NewSeeded(9))

	for run := 0; run < 10; run++ {
		flights, err := svc.SearchFlights(context.Background(), baseParams())
		require.NoError(t, err)
		assert.LessOrEqual(t, len(flights), minResults+resultsWindow-1)
	}
}

func TestSearchFlights_LatencyHonoursCancellation(t *testing.T) {
	svc, _ := newTestFlightService(random.Fixed{F: 0.5}, WithLatency(time.Hour, time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := svc.SearchFlights(ctx, baseParams())
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), time.Second)
}

func TestSearchFlights_LatencyWaits(t *testing.T) {
	svc, _ := newTestFlightService(random.Fixed{F: 0.5}, WithLatency(30*time.Millisecond, 30*time.Millisecond))

	start := time.Now()
	_, err := svc.SearchFlights(context.Background(), baseParams())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestGetFlight(t *testing.T) {
	svc, _ := newTestFlightService(random.NewSeeded(21))

	flights, err := svc.SearchFlights(context.Background(), baseParams())
	require.NoError(t, err)
	require.NotEmpty(t, flights)

	got, err := svc.GetFlight(context.Background(), flights[0].ID)
	require.NoError(t, err)
	assert.Equal(t, flights[0], got)

	_, err = svc.GetFlight(context.Background(), "XX000_2026-11-08_0")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestGetFlight_DistinctRoutesSameDate(t *testing.T) {
	svc, _ := newTestFlightService(random.NewSeeded(8))

	toDubai, err := svc.SearchFlights(context.Background(), baseParams())
	require.NoError(t, err)
	require.NotEmpty(t, toDubai)

	params := baseParams()
	params.Destination = "SIN"
	toSingapore, err := svc.SearchFlights(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, toSingapore)

	for _, f := range toDubai {
		got, err := svc.GetFlight(context.Background(), f.ID)
		require.NoError(t, err)
		assert.Equal(t, f, got)
		assert.Equal(t, "DXB", got.Arrival.Airport.Code)
	}
	for _, f := range toSingapore {
		got, err := svc.GetFlight(context.Background(), f.ID)
		require.NoError(t, err)
		assert.Equal(t, "SIN", got.Arrival.Airport.Code)
	}
}

func TestGetFlight_RepeatedSearchKeepsEarlierInstances(t *testing.T) {
	svc, _ := newTestFlightService(random.NewSeeded(9))

	first, err := svc.SearchFlights(context.Background(), baseParams())
	require.NoError(t, err)
	second, err := svc.SearchFlights(context.Background(), baseParams())
	require.NoError(t, err)

	secondIDs := ids(second)
	for _, f := range first {
		assert.NotContains(t, secondIDs, f.ID)

		got, err := svc.GetFlight(context.Background(), f.ID)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestCatalogOperations(t *testing.T) {
	svc, _ := newTestFlightService(random.Fixed{})

	assert.Len(t, svc.GetAirports(context.Background()), 10)
	assert.Len(t, svc.GetAirlines(context.Background()), 8)
	assert.Len(t, svc.GetPopularRoutes(context.Background()), 5)
}
