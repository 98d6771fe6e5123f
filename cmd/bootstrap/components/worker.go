package components

import (
	"context"

	"rentacar/internal/pkg/config"
	"rentacar/internal/usecase"
	"rentacar/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewCacheRefresher,
	),
	fx.Invoke(runCacheRefresher),
)

func NewCacheRefresher(catalog usecase.CatalogUseCase, cfg config.Config) *worker.CacheRefresher {
	return worker.NewCacheRefresher(catalog, cfg.Booking.CacheRefreshSpec)
}

func runCacheRefresher(lc fx.Lifecycle, refresher *worker.CacheRefresher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return refresher.Start()
		},
		OnStop: func(_ context.Context) error {
			refresher.Stop()
			return nil
		},
	})
}
