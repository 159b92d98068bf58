// Package pricing turns a template's nominal fare into a dated, demand-adjusted
// fare.
package pricing

import (
	"math"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/random"
)

const (
	// MinMultiplier bounds the combined multiplier from below. Without it an
	// out-of-range demand signal can drive fares to zero or negative.
	MinMultiplier = 0.5

	lastMinuteSurcharge = 0.40 // <= 7 days
	twoWeekSurcharge    = 0.20 // <= 14 days
	monthSurcharge      = 0.10 // <= 30 days
	weekendSurcharge    = 0.15
	demandWeight        = 0.30
	noiseSpan           = 0.10
)

// Engine computes dynamic prices. It is safe for concurrent use when its
// random source is.
type Engine struct {
	rnd random.Source
	now func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides the reference time used for days-until-departure
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a pricing engine drawing market noise from rnd
func NewEngine(rnd random.Source, opts ...Option) *Engine {
	e := &Engine{rnd: rnd, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputePrice returns the whole-unit fare for basePrice departing on
// departure under the given demand signal in [0,1].
func (e *Engine) ComputePrice(basePrice int, departure time.Time, demand float64) int {
	noise := (e.rnd.Float64() - 0.5) * noiseSpan
	m := Multiplier(DaysUntil(e.now(), departure), departure.Weekday(), demand, noise)
	return Apply(basePrice, m)
}

// DaysUntil counts whole days from now to departure, rounding up
func DaysUntil(now, departure time.Time) int {
	return int(math.Ceil(departure.Sub(now).Hours() / 24))
}

// Multiplier combines the lead-time, weekend, demand and noise adjustments.
// The result is not clamped; see Apply.
func Multiplier(daysUntil int, weekday time.Weekday, demand, noise float64) float64 {
	m := 1.0

	switch {
	case daysUntil <= 7:
		m += lastMinuteSurcharge
	case daysUntil <= 14:
		m += twoWeekSurcharge
	case daysUntil <= 30:
		m += monthSurcharge
	}

	if weekday == time.Friday || weekday == time.Saturday {
		m += weekendSurcharge
	}

	m += (demand - 0.5) * demandWeight
	m += noise
	return m
}

// Apply scales basePrice by the multiplier, clamped at MinMultiplier, and
// rounds to the nearest whole unit.
func Apply(basePrice int, multiplier float64) int {
	if multiplier < MinMultiplier {
		multiplier = MinMultiplier
	}
	return int(math.Round(float64(basePrice) * multiplier))
}
