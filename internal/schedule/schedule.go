// Package schedule draws plausible clock times and terminals for generated
// flights.
package schedule

import (
	"fmt"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/random"
)

var (
	departureHours   = []int{6, 8, 10, 12, 14, 16, 18, 20, 22}
	departureMinutes = []int{0, 15, 30, 45}
	terminals        = []string{"T1", "T2", "T3"}
)

// maxPad is the exclusive upper bound of the random minutes added on top of
// the block time.
const maxPad = 60

// Times holds local departure and arrival clocks as HH:MM
type Times struct {
	Departure string
	Arrival   string
}

// Generator draws schedules from a random source
type Generator struct {
	rnd random.Source
}

// NewGenerator creates a schedule generator
func NewGenerator(rnd random.Source) *Generator {
	return &Generator{rnd: rnd}
}

// GenerateTimes picks a departure slot and derives the arrival clock from the
// duration plus a random pad. Arrivals past midnight wrap without a next-day
// marker. Stops do not influence the draw.
func (g *Generator) GenerateTimes(duration, stops int) Times {
	hour := departureHours[g.rnd.IntN(len(departureHours))]
	minute := departureMinutes[g.rnd.IntN(len(departureMinutes))]
	pad := g.rnd.IntN(maxPad)

	dep := time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
	arr := dep.Add(time.Duration(duration+pad) * time.Minute)

	return Times{
		Departure: fmt.Sprintf("%02d:%02d", hour, minute),
		Arrival:   arr.Format("15:04"),
	}
}

// Terminal returns a terminal label half of the time and "" otherwise
func (g *Generator) Terminal() string {
	if g.rnd.Float64() > 0.5 {
		return terminals[g.rnd.IntN(len(terminals))]
	}
	return ""
}
