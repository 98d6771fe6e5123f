// Package vehiclecache keeps the normalized vehicle collection in Redis
// for a multi-hour window, sparing the slow external source on every list
// request.
package vehiclecache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rentacar/internal/domain/vehicle"
	"rentacar/internal/infra"

	"github.com/redis/go-redis/v9"
)

const vehiclesKey = "vehicles:all"

// Cache is the read-through storage port for the vehicle collection. A
// cache miss is (nil, nil), not an error.
type Cache interface {
	Get(ctx context.Context) ([]vehicle.Vehicle, error)
	Set(ctx context.Context, vehicles []vehicle.Vehicle) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) ([]vehicle.Vehicle, error) {
	data, err := c.client.Get(ctx, vehiclesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapInfraErr("failed to read vehicle cache", err, infra.KindStoreFailure)
	}

	var vehicles []vehicle.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, infra.WrapInfraErr("failed to decode vehicle cache", err, infra.KindStoreFailure)
	}
	return vehicles, nil
}

func (c *RedisCache) Set(ctx context.Context, vehicles []vehicle.Vehicle) error {
	payload, err := json.Marshal(vehicles)
	if err != nil {
		return infra.WrapInfraErr("failed to encode vehicle cache", err, infra.KindStoreFailure)
	}
	if err := c.client.Set(ctx, vehiclesKey, payload, c.ttl).Err(); err != nil {
		return infra.WrapInfraErr("failed to write vehicle cache", err, infra.KindStoreFailure)
	}
	return nil
}

// Noop disables caching; every list request hits the source. Used when no
// Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context) ([]vehicle.Vehicle, error) { return nil, nil }
func (Noop) Set(context.Context, []vehicle.Vehicle) error   { return nil }
