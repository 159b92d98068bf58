// Package catalog holds the static reference data the search engine expands:
// airports, airlines and flight templates. All values are immutable after
// package initialization; accessors hand out copies.
package catalog

import (
	"sort"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
)

const placeholderLogo = "/placeholder.svg?height=40&width=40"

var airports = map[string]models.Airport{
	"DAC": {Code: "DAC", Name: "Hazrat Shahjalal International Airport", City: "Dhaka", Country: "Bangladesh", Timezone: "Asia/Dhaka"},
	"DXB": {Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE", Timezone: "Asia/Dubai"},
	"DOH": {Code: "DOH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Timezone: "Asia/Qatar"},
	"SIN": {Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Timezone: "Asia/Singapore"},
	"BKK": {Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Timezone: "Asia/Bangkok"},
	"KUL": {Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia", Timezone: "Asia/Kuala_Lumpur"},
	"IST": {Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Timezone: "Europe/Istanbul"},
	"LHR": {Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "UK", Timezone: "Europe/London"},
	"CDG": {Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Timezone: "Europe/Paris"},
	"JFK": {Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA", Timezone: "America/New_York"},
}

var airlines = map[string]models.Airline{
	"SQ": {Code: "SQ", Name: "Singapore Airlines", Logo: placeholderLogo},
	"QR": {Code: "QR", Name: "Qatar Airways", Logo: placeholderLogo},
	"EK": {Code: "EK", Name: "Emirates", Logo: placeholderLogo},
	"TK": {Code: "TK", Name: "Turkish Airlines", Logo: placeholderLogo},
	"BA": {Code: "BA", Name: "British Airways", Logo: placeholderLogo},
	"AF": {Code: "AF", Name: "Air France", Logo: placeholderLogo},
	"LH": {Code: "LH", Name: "Lufthansa", Logo: placeholderLogo},
	"KL": {Code: "KL", Name: "KLM Royal Dutch", Logo: placeholderLogo},
}

// Airport looks up an airport by its three-letter code
func Airport(code string) (models.Airport, bool) {
	a, ok := airports[code]
	return a, ok
}

// Airline looks up an airline by its two-letter code
func Airline(code string) (models.Airline, bool) {
	a, ok := airlines[code]
	return a, ok
}

// Airports returns every airport ordered by code
func Airports() []models.Airport {
	out := make([]models.Airport, 0, len(airports))
	for _, a := range airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Airlines returns every airline ordered by code
func Airlines() []models.Airline {
	out := make([]models.Airline, 0, len(airlines))
	for _, a := range airlines {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// PopularRoutes returns the featured routes shown on the home page
func PopularRoutes() []models.PopularRoute {
	routes := []struct {
		origin, destination string
		price               int
	}{
		{"DAC", "DXB", 450},
		{"DAC", "DOH", 380},
		{"DAC", "SIN", 520},
		{"DAC", "BKK", 280},
		{"DAC", "KUL", 320},
	}

	out := make([]models.PopularRoute, 0, len(routes))
	for _, r := range routes {
		out = append(out, models.PopularRoute{
			Origin:       airports[r.origin],
			Destination:  airports[r.destination],
			AveragePrice: r.price,
		})
	}
	return out
}
