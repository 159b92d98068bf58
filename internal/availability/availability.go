// Package availability emulates booking pressure on a template's nominal seat
// pools. Nothing is persisted: every call starts from the pools it is given.
package availability

import (
	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/cx-tal-miterani/flight-search-system/internal/random"
)

const (
	maxEconomyTaken  = 9
	maxBusinessTaken = 2
)

// Simulator draws remaining seat counts
type Simulator struct {
	rnd random.Source
}

// NewSimulator creates an availability simulator
func NewSimulator(rnd random.Source) *Simulator {
	return &Simulator{rnd: rnd}
}

// Simulate returns a copy of seats with a random number of seats taken from
// the pool matching class. Pools never drop below zero.
func (s *Simulator) Simulate(class models.ServiceClass, seats models.SeatAvailability) models.SeatAvailability {
	switch class {
	case models.ClassEconomy:
		seats.Economy = max(0, seats.Economy-s.rnd.IntN(maxEconomyTaken+1))
	case models.ClassBusiness:
		seats.Business = max(0, seats.Business-s.rnd.IntN(maxBusinessTaken+1))
	}
	return seats
}

// HasCapacity reports whether seats can hold the requested party
func HasCapacity(seats models.SeatAvailability, passengers int) bool {
	return seats.Total() >= passengers
}
