package catalog

import "github.com/cx-tal-miterani/flight-search-system/internal/models"

var templates = []models.FlightTemplate{
	{
		FlightNumber:     "SQ447",
		Airline:          airlines["SQ"],
		Duration:         200,
		Stops:            0,
		Aircraft:         "Boeing 777-300ER",
		Class:            models.ClassBusiness,
		BasePrice:        850,
		Currency:         "USD",
		Refundable:       true,
		Baggage:          models.Baggage{Cabin: "7kg", Checked: "30kg"},
		Amenities:        []string{"WiFi", "Entertainment", "Meals", "Priority Boarding"},
		SeatAvailability: models.SeatAvailability{Economy: 0, Business: 12, First: 0},
	},
	{
		FlightNumber:     "QR639",
		Airline:          airlines["QR"],
		Duration:         195,
		Stops:            0,
		Aircraft:         "Airbus A350-1000",
		Class:            models.ClassBusiness,
		BasePrice:        920,
		Currency:         "USD",
		Refundable:       false,
		Baggage:          models.Baggage{Cabin: "7kg", Checked: "30kg"},
		Amenities:        []string{"WiFi", "Entertainment", "Meals", "Lounge Access"},
		SeatAvailability: models.SeatAvailability{Economy: 0, Business: 8, First: 0},
	},
	{
		FlightNumber:     "EK585",
		Airline:          airlines["EK"],
		Duration:         200,
		Stops:            0,
		Aircraft:         "Airbus A380-800",
		Class:            models.ClassBusiness,
		BasePrice:        780,
		Currency:         "USD",
		Refundable:       true,
		Baggage:          models.Baggage{Cabin: "7kg", Checked: "40kg"},
		Amenities:        []string{"WiFi", "Entertainment", "Meals", "Shower Spa", "Bar"},
		SeatAvailability: models.SeatAvailability{Economy: 0, Business: 15, First: 4},
	},
	{
		FlightNumber:     "SQ449",
		Airline:          airlines["SQ"],
		Duration:         390,
		Stops:            1,
		Aircraft:         "Airbus A350-900",
		Class:            models.ClassEconomy,
		BasePrice:        420,
		Currency:         "USD",
		Refundable:       true,
		Baggage:          models.Baggage{Cabin: "7kg", Checked: "23kg"},
		Amenities:        []string{"Entertainment", "Meals"},
		SeatAvailability: models.SeatAvailability{Economy: 45, Business: 0, First: 0},
	},
	{
		FlightNumber:     "QR641",
		Airline:          airlines["QR"],
		Duration:         390,
		Stops:            1,
		Aircraft:         "Boeing 787-9",
		Class:            models.ClassEconomy,
		BasePrice:        380,
		Currency:         "USD",
		Refundable:       false,
		Baggage:          models.Baggage{Cabin: "7kg", Checked: "23kg"},
		Amenities:        []string{"Entertainment", "Meals"},
		SeatAvailability: models.SeatAvailability{Economy: 52, Business: 0, First: 0},
	},
	{
		FlightNumber:     "EK589",
		Airline:          airlines["EK"],
		Duration:         390,
		Stops:            1,
		Aircraft:         "Boeing 777-200LR",
		Class:            models.ClassEconomy,
		BasePrice:        350,
		Currency:         "USD",
		Refundable:       false,
		Baggage:          models.Baggage{Cabin: "7kg", Checked: "23kg"},
		Amenities:        []string{"Entertainment", "Meals"},
		SeatAvailability: models.SeatAvailability{Economy: 38, Business: 0, First: 0},
	},
	{
		FlightNumber:     "TK713",
		Airline:          airlines["TK"],
		Duration:         390,
		Stops:            1,
		Aircraft:         "Boeing 737 MAX 8",
		Class:            models.ClassEconomy,
		BasePrice:        320,
		Currency:         "USD",
		Refundable:       true,
		Baggage:          models.Baggage{Cabin: "8kg", Checked: "23kg"},
		Amenities:        []string{"Entertainment", "Meals"},
		SeatAvailability: models.SeatAvailability{Economy: 28, Business: 0, First: 0},
	},
	{
		FlightNumber:     "BA161",
		Airline:          airlines["BA"],
		Duration:         450,
		Stops:            1,
		Aircraft:         "Boeing 787-9",
		Class:            models.ClassPremiumEconomy,
		BasePrice:        580,
		Currency:         "USD",
		Refundable:       true,
		Baggage:          models.Baggage{Cabin: "7kg", Checked: "23kg"},
		Amenities:        []string{"WiFi", "Entertainment", "Meals", "Extra Legroom"},
		SeatAvailability: models.SeatAvailability{Economy: 0, Business: 18, First: 0},
	},
	{
		FlightNumber:     "LH761",
		Airline:          airlines["LH"],
		Duration:         420,
		Stops:            2,
		Aircraft:         "Airbus A340-600",
		Class:            models.ClassEconomy,
		BasePrice:        290,
		Currency:         "USD",
		Refundable:       true,
		Baggage:          models.Baggage{Cabin: "8kg", Checked: "23kg"},
		Amenities:        []string{"Entertainment", "Meals"},
		SeatAvailability: models.SeatAvailability{Economy: 22, Business: 0, First: 0},
	},
	{
		FlightNumber:     "KL875",
		Airline:          airlines["KL"],
		Duration:         450,
		Stops:            2,
		Aircraft:         "Boeing 777-200ER",
		Class:            models.ClassEconomy,
		BasePrice:        275,
		Currency:         "USD",
		Refundable:       false,
		Baggage:          models.Baggage{Cabin: "7kg", Checked: "23kg"},
		Amenities:        []string{"Entertainment", "Meals"},
		SeatAvailability: models.SeatAvailability{Economy: 31, Business: 0, First: 0},
	},
}

// Templates returns a copy of the flight templates in catalog order. Template
// indices are part of instance ids, so the order is stable.
func Templates() []models.FlightTemplate {
	out := make([]models.FlightTemplate, len(templates))
	for i, t := range templates {
		t.Amenities = append([]string(nil), t.Amenities...)
		out[i] = t
	}
	return out
}
