package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFlights() []*models.FlightInstance {
	return []*models.FlightInstance{
		{
			ID:           "SQ447_2026-11-08_0_DACDXB_1a2b3c4d",
			FlightNumber: "SQ447",
			Airline:      models.Airline{Code: "SQ", Name: "Singapore Airlines"},
			Departure:    models.Endpoint{Airport: models.Airport{Code: "DAC"}, Time: "08:15", Terminal: "T2"},
			Arrival:      models.Endpoint{Airport: models.Airport{Code: "DXB"}, Time: "11:50"},
			BasePrice:    912,
			Amenities:    []string{"WiFi"},
		},
		{
			ID:           "KL875_2026-11-08_9_DACDXB_1a2b3c4d",
			FlightNumber: "KL875",
			BasePrice:    301,
		},
	}
}

func TestMemory_PutGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(10, time.Minute)

	require.NoError(t, c.Put(ctx, sampleFlights()))
	assert.Equal(t, 2, c.Len())

	got, err := c.Get(ctx, "SQ447_2026-11-08_0_DACDXB_1a2b3c4d")
	require.NoError(t, err)
	assert.Equal(t, 912, got.BasePrice)
	assert.Equal(t, "T2", got.Departure.Terminal)

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemory_EvictsBeyondSize(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(1, time.Minute)

	require.NoError(t, c.Put(ctx, sampleFlights()))

	_, err := c.Get(ctx, "SQ447_2026-11-08_0_DACDXB_1a2b3c4d")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = c.Get(ctx, "KL875_2026-11-08_9_DACDXB_1a2b3c4d")
	assert.NoError(t, err)
}

func TestRedis_PutGet(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedis(client, 30*time.Minute)
	defer c.Close()

	require.NoError(t, c.Put(ctx, sampleFlights()))

	got, err := c.Get(ctx, "SQ447_2026-11-08_0_DACDXB_1a2b3c4d")
	require.NoError(t, err)
	assert.Equal(t, sampleFlights()[0], got)

	mr.FastForward(31 * time.Minute)
	_, err = c.Get(ctx, "SQ447_2026-11-08_0_DACDXB_1a2b3c4d")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedis_PutEmpty(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	defer c.Close()

	assert.NoError(t, c.Put(context.Background(), nil))
}
