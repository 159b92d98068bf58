package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_ReferenceKnownAirlines(t *testing.T) {
	tmpls := Templates()
	require.Len(t, tmpls, 10)

	seen := make(map[string]bool)
	for _, tmpl := range tmpls {
		_, ok := Airline(tmpl.Airline.Code)
		assert.True(t, ok, "unknown airline %s", tmpl.Airline.Code)
		assert.False(t, seen[tmpl.FlightNumber], "duplicate flight number %s", tmpl.FlightNumber)
		seen[tmpl.FlightNumber] = true

		assert.Greater(t, tmpl.Duration, 0)
		assert.GreaterOrEqual(t, tmpl.Stops, 0)
		assert.Greater(t, tmpl.BasePrice, 0)
	}
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	first := Templates()
	first[0].Amenities[0] = "changed"
	first[0].BasePrice = 1

	second := Templates()
	assert.Equal(t, "WiFi", second[0].Amenities[0])
	assert.Equal(t, 850, second[0].BasePrice)
}

func TestAirportsAndAirlines(t *testing.T) {
	assert.Len(t, Airports(), 10)
	assert.Len(t, Airlines(), 8)

	a, ok := Airport("DAC")
	require.True(t, ok)
	assert.Equal(t, "Dhaka", a.City)

	_, ok = Airport("XXX")
	assert.False(t, ok)

	codes := Airports()
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1].Code, codes[i].Code)
	}
}

func TestPopularRoutes(t *testing.T) {
	routes := PopularRoutes()
	require.Len(t, routes, 5)
	for _, r := range routes {
		assert.Equal(t, "DAC", r.Origin.Code)
		assert.NotEmpty(t, r.Destination.Name)
	}
}
