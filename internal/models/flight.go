package models

// Airport represents an airport in the reference catalog
type Airport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// Airline represents an operating carrier
type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type ServiceClass string

const (
	ClassEconomy        ServiceClass = "Economy"
	ClassPremiumEconomy ServiceClass = "Premium Economy"
	ClassBusiness       ServiceClass = "Business Class"
	ClassFirst          ServiceClass = "First Class"
)

// Baggage holds the cabin and checked allowances as display labels
type Baggage struct {
	Cabin   string `json:"cabin"`
	Checked string `json:"checked"`
}

// SeatAvailability is the number of open seats per cabin
type SeatAvailability struct {
	Economy  int `json:"economy"`
	Business int `json:"business"`
	First    int `json:"first"`
}

// Total returns the number of open seats across all cabins
func (s SeatAvailability) Total() int {
	return s.Economy + s.Business + s.First
}

// FlightTemplate is a route-agnostic prototype of a recurring flight offering
type FlightTemplate struct {
	FlightNumber     string           `json:"flightNumber"`
	Airline          Airline          `json:"airline"`
	Duration         int              `json:"duration"` // minutes
	Stops            int              `json:"stops"`
	Aircraft         string           `json:"aircraft"`
	Class            ServiceClass     `json:"class"`
	BasePrice        int              `json:"basePrice"`
	Currency         string           `json:"currency"`
	Refundable       bool             `json:"refundable"`
	Baggage          Baggage          `json:"baggage"`
	Amenities        []string         `json:"amenities"`
	SeatAvailability SeatAvailability `json:"seatAvailability"`
}

// Endpoint is one side of a flight instance
type Endpoint struct {
	Airport  Airport `json:"airport"`
	Time     string  `json:"time"` // local HH:MM
	Terminal string  `json:"terminal,omitempty"`
}

// FlightInstance is a dated, priced flight synthesized from a template for a
// single search. BasePrice holds the computed dynamic price and
// SeatAvailability the simulated draw.
type FlightInstance struct {
	ID               string           `json:"id"`
	FlightNumber     string           `json:"flightNumber"`
	Airline          Airline          `json:"airline"`
	Departure        Endpoint         `json:"departure"`
	Arrival          Endpoint         `json:"arrival"`
	DepartureDate    string           `json:"departureDate"`
	Duration         int              `json:"duration"`
	Stops            int              `json:"stops"`
	Aircraft         string           `json:"aircraft"`
	Class            ServiceClass     `json:"class"`
	BasePrice        int              `json:"basePrice"`
	Currency         string           `json:"currency"`
	Refundable       bool             `json:"refundable"`
	Baggage          Baggage          `json:"baggage"`
	Amenities        []string         `json:"amenities"`
	SeatAvailability SeatAvailability `json:"seatAvailability"`
}

// PopularRoute is a featured origin/destination pair with an indicative fare
type PopularRoute struct {
	Origin       Airport `json:"origin"`
	Destination  Airport `json:"destination"`
	AveragePrice int     `json:"averagePrice"`
}
