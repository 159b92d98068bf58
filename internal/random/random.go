// Package random provides the single source of randomness used by pricing,
// scheduling, availability and result shuffling, so tests can substitute a
// deterministic implementation.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source is the subset of *rand.Rand the search engine needs
type Source interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalSource struct{}

// Global returns a Source backed by the runtime's concurrency-safe generator
func Global() Source {
	return globalSource{}
}

func (globalSource) Float64() float64                   { return rand.Float64() }
func (globalSource) IntN(n int) int                     { return rand.IntN(n) }
func (globalSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Seeded is a reproducible Source safe for concurrent use
type Seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded creates a Seeded source from a fixed seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *Seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func (s *Seeded) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}
