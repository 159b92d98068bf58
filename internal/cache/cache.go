// Package cache keeps the flight instances produced by a search addressable
// by id for a short while, so a later lookup returns the exact priced and
// scheduled record instead of a re-derived approximation.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

var ErrMiss = errors.New("flight not cached")

// FlightCache stores generated flight instances keyed by id
type FlightCache interface {
	Put(ctx context.Context, flights []*models.FlightInstance) error
	Get(ctx context.Context, id string) (*models.FlightInstance, error)
}

// Memory is an in-process, size-bounded FlightCache with per-entry TTL
type Memory struct {
	lru *lru.LRU[string, models.FlightInstance]
}

// NewMemory creates an in-memory cache holding at most size entries for ttl
func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{lru: lru.NewLRU[string, models.FlightInstance](size, nil, ttl)}
}

func (m *Memory) Put(_ context.Context, flights []*models.FlightInstance) error {
	for _, f := range flights {
		m.lru.Add(f.ID, *f)
	}
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*models.FlightInstance, error) {
	f, ok := m.lru.Get(id)
	if !ok {
		return nil, ErrMiss
	}
	return &f, nil
}

// Len returns the number of live entries
func (m *Memory) Len() int {
	return m.lru.Len()
}
