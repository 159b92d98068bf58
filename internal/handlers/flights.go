package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/cx-tal-miterani/flight-search-system/internal/service"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// departureLayouts are the accepted spellings of departureDate besides
// YYYY-MM-DD
var departureLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"Mon Jan 2 2006",
	"Mon, Jan 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
}

// ParseDepartureDate reads a calendar date. Inputs containing spaces are
// tried against a few human layouts.
func ParseDepartureDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.Parse(service.DateLayout, raw); err == nil {
		return d, nil
	}
	for _, layout := range departureLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, errors.New("unrecognized date")
}

// SearchFlights handles GET /api/flights/search
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := models.SearchRequest{
		Origin:        strings.ToUpper(strings.TrimSpace(q.Get("origin"))),
		Destination:   strings.ToUpper(strings.TrimSpace(q.Get("destination"))),
		DepartureDate: strings.TrimSpace(q.Get("departureDate")),
		Passengers:    1,
		Airlines:      splitUpper(q.Get("airlines")),
		Stops:         splitInts(q.Get("stops")),
	}

	if req.Origin == "" || req.Destination == "" || req.DepartureDate == "" {
		respondError(w, http.StatusBadRequest, "Origin, destination, and departure date are required")
		return
	}

	if raw := q.Get("passengers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Passengers must be between 1 and 9")
			return
		}
		req.Passengers = n
	}

	var err error
	if req.MinPrice, err = parsePrice(q, "minPrice"); err != nil {
		respondError(w, http.StatusBadRequest, "minPrice must be a number")
		return
	}
	if req.MaxPrice, err = parsePrice(q, "maxPrice"); err != nil {
		respondError(w, http.StatusBadRequest, "maxPrice must be a number")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	date, err := ParseDepartureDate(req.DepartureDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid departure date")
		return
	}

	params := &models.SearchParams{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: date,
		Passengers:    req.Passengers,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		Airlines:      req.Airlines,
		Stops:         req.Stops,
	}

	flights, err := h.flightService.SearchFlights(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownAirport):
			respondError(w, http.StatusBadRequest, err.Error())
		case r.Context().Err() != nil:
			h.logger.Debug("search canceled by client", zap.Error(err))
			respondError(w, StatusClientClosedRequest, "Request canceled")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	views := make([]models.FlightView, 0, len(flights))
	for _, f := range flights {
		views = append(views, models.NewFlightView(f))
	}

	respondJSON(w, http.StatusOK, models.SearchResponse{
		Success: true,
		Flights: views,
		Total:   len(views),
		SearchParams: models.SearchEcho{
			Origin:        params.Origin,
			Destination:   params.Destination,
			DepartureDate: date.Format(service.DateLayout),
			Passengers:    params.Passengers,
		},
	})
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]

	flight, err := h.flightService.GetFlight(r.Context(), flightID)
	if err != nil {
		if errors.Is(err, service.ErrFlightNotFound) {
			respondError(w, http.StatusNotFound, "Flight not found")
			return
		}
		h.respondInternal(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"flight":  models.NewFlightView(flight),
	})
}

// GetAirports handles GET /api/airports
func (h *Handler) GetAirports(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"airports": h.flightService.GetAirports(r.Context()),
	})
}

// GetAirlines handles GET /api/airlines
func (h *Handler) GetAirlines(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"airlines": h.flightService.GetAirlines(r.Context()),
	})
}

// GetPopularRoutes handles GET /api/routes/popular
func (h *Handler) GetPopularRoutes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"routes":  h.flightService.GetPopularRoutes(r.Context()),
	})
}

func parsePrice(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func splitUpper(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitInts parses a comma separated list, skipping entries that are not
// integers
func splitInts(raw string) []int {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			out = append(out, n)
		}
	}
	return out
}
