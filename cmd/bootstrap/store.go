package bootstrap

import (
	"context"

	"rentacar/internal/infra/store"
	"rentacar/internal/infra/vehiclecache"
	"rentacar/internal/pkg/clock"
	"rentacar/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewStore,
			fx.As(new(store.SessionStore)),
			fx.As(new(store.DraftStore)),
		),
		NewVehicleCache,
	),
)

// NewRedisClient returns nil when no address is configured; the stores fall
// back to their in-process variants.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewStore(client *redis.Client, cfg config.Config, clk clock.Clock) store.Store {
	if client == nil {
		return store.NewMemoryStore(cfg.Booking.SessionTTL, cfg.Booking.DraftTTL, clk)
	}
	return store.NewRedisStore(client, cfg.Booking.SessionTTL, cfg.Booking.DraftTTL)
}

func NewVehicleCache(client *redis.Client, cfg config.Config) vehiclecache.Cache {
	if client == nil {
		return vehiclecache.Noop{}
	}
	return vehiclecache.NewRedisCache(client, cfg.Booking.VehicleCacheTTL)
}
