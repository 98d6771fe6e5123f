// Package worker runs the background jobs: today that is the periodic
// vehicle cache refresh, keeping list pages warm between upstream fetches.
package worker

import (
	"context"
	"log/slog"
	"time"

	"rentacar/internal/usecase"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 30 * time.Second

// CacheRefresher re-primes the shared vehicle cache on a cron schedule so
// an expired entry never pushes upstream latency onto a visitor's request.
type CacheRefresher struct {
	catalog usecase.CatalogUseCase
	spec    string
	cron    *cron.Cron
}

func NewCacheRefresher(catalog usecase.CatalogUseCase, spec string) *CacheRefresher {
	return &CacheRefresher{
		catalog: catalog,
		spec:    spec,
		cron:    cron.New(),
	}
}

func (r *CacheRefresher) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.refresh); err != nil {
		return err
	}
	r.cron.Start()
	slog.Info("vehicle cache refresher started", "schedule", r.spec)
	return nil
}

// Stop halts scheduling and waits for an in-flight refresh to finish.
func (r *CacheRefresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	slog.Info("vehicle cache refresher stopped")
}

func (r *CacheRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := r.catalog.RefreshCache(ctx); err != nil {
		slog.Warn("vehicle cache refresh failed", "error", err.Error())
		return
	}
	slog.Debug("vehicle cache refreshed")
}
