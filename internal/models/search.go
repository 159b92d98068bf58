package models

import (
	"fmt"
	"time"
)

// SearchParams is the validated input to a flight search
type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	Passengers    int
	MinPrice      *float64
	MaxPrice      *float64
	Airlines      []string
	Stops         []int
}

// SearchRequest represents the raw query of GET /api/flights/search
type SearchRequest struct {
	Origin        string   `validate:"required,len=3,alpha"`
	Destination   string   `validate:"required,len=3,alpha"`
	DepartureDate string   `validate:"required"`
	Passengers    int      `validate:"min=1,max=9"`
	MinPrice      *float64 `validate:"omitempty,gte=0"`
	MaxPrice      *float64 `validate:"omitempty,gte=0"`
	Airlines      []string `validate:"omitempty,dive,len=2,alphanum"`
	Stops         []int    `validate:"omitempty,dive,gte=0"`
}

// EndpointView is the flattened departure/arrival shape returned to clients
type EndpointView struct {
	Time     string `json:"time"`
	Airport  string `json:"airport"`
	Code     string `json:"code"`
	Terminal string `json:"terminal,omitempty"`
}

// FlightView is a flight instance as exposed by the search API
type FlightView struct {
	ID               string           `json:"id"`
	Airline          string           `json:"airline"`
	Logo             string           `json:"logo"`
	Departure        EndpointView     `json:"departure"`
	Arrival          EndpointView     `json:"arrival"`
	Duration         string           `json:"duration"`
	Stops            int              `json:"stops"`
	Price            int              `json:"price"`
	Currency         string           `json:"currency"`
	Refundable       bool             `json:"refundable"`
	Class            ServiceClass     `json:"class"`
	Aircraft         string           `json:"aircraft"`
	FlightNumber     string           `json:"flightNumber"`
	Baggage          Baggage          `json:"baggage"`
	Amenities        []string         `json:"amenities"`
	SeatAvailability SeatAvailability `json:"seatAvailability"`
}

// NewFlightView flattens an instance for the search response
func NewFlightView(f *FlightInstance) FlightView {
	return FlightView{
		ID:      f.ID,
		Airline: f.Airline.Name,
		Logo:    f.Airline.Logo,
		Departure: EndpointView{
			Time:     f.Departure.Time,
			Airport:  f.Departure.Airport.Name,
			Code:     f.Departure.Airport.Code,
			Terminal: f.Departure.Terminal,
		},
		Arrival: EndpointView{
			Time:     f.Arrival.Time,
			Airport:  f.Arrival.Airport.Name,
			Code:     f.Arrival.Airport.Code,
			Terminal: f.Arrival.Terminal,
		},
		Duration:         FormatDuration(f.Duration),
		Stops:            f.Stops,
		Price:            f.BasePrice,
		Currency:         f.Currency,
		Refundable:       f.Refundable,
		Class:            f.Class,
		Aircraft:         f.Aircraft,
		FlightNumber:     f.FlightNumber,
		Baggage:          f.Baggage,
		Amenities:        f.Amenities,
		SeatAvailability: f.SeatAvailability,
	}
}

// FormatDuration renders minutes as "3h 20min"
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

// SearchEcho repeats the normalized search inputs back to the client
type SearchEcho struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	Passengers    int    `json:"passengers"`
}

// SearchResponse is the envelope returned by GET /api/flights/search
type SearchResponse struct {
	Success      bool         `json:"success"`
	Flights      []FlightView `json:"flights"`
	Total        int          `json:"total"`
	SearchParams SearchEcho   `json:"searchParams"`
}

// RegisterRequest represents a registration submission
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest represents a login submission
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user"`
	Token   string `json:"token,omitempty"`
}
