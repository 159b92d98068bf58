package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "flight:"

// Redis is a FlightCache shared between server replicas
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps an existing client
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// DialRedis connects to addr and verifies the connection
func DialRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedis(client, ttl), nil
}

func (r *Redis) Put(ctx context.Context, flights []*models.FlightInstance) error {
	if len(flights) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, f := range flights {
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("failed to marshal flight %s: %w", f.ID, err)
		}
		pipe.Set(ctx, keyPrefix+f.ID, data, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache flights: %w", err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, id string) (*models.FlightInstance, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read cached flight: %w", err)
	}

	var f models.FlightInstance
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode cached flight: %w", err)
	}
	return &f, nil
}

// Close releases the underlying connection pool
func (r *Redis) Close() error {
	return r.client.Close()
}
