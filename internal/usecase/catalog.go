package usecase

import (
	"context"
	"errors"
	"log/slog"

	"rentacar/internal/domain/search"
	"rentacar/internal/domain/vehicle"
	"rentacar/internal/infra/vehiclecache"
	"rentacar/internal/pkg/errs"
)

var (
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrVehicleSourceDown = errors.New("vehicle source unavailable")
	ErrVehicleDataBroken = errors.New("vehicle source returned malformed data")
)

// VehicleSource is the external cars API boundary.
type VehicleSource interface {
	FetchAll(ctx context.Context) ([]vehicle.Record, error)
}

// VehicleList is one page of the catalog plus everything the list page
// renders around it.
type VehicleList struct {
	Page    search.Page
	Options vehicle.Options
	Query   search.ListQuery
}

type CatalogUseCase interface {
	ListVehicles(ctx context.Context, query search.ListQuery) (*VehicleList, error)
	GetVehicle(ctx context.Context, id int) (vehicle.Vehicle, error)
	// RefreshCache repopulates the cache from the source unconditionally.
	RefreshCache(ctx context.Context) error
}

type catalogUseCaseImpl struct {
	source   VehicleSource
	cache    vehiclecache.Cache
	pageSize int
}

func NewCatalogUseCase(source VehicleSource, cache vehiclecache.Cache, pageSize int) CatalogUseCase {
	return &catalogUseCaseImpl{
		source:   source,
		cache:    cache,
		pageSize: pageSize,
	}
}

func (c *catalogUseCaseImpl) ListVehicles(ctx context.Context, query search.ListQuery) (*VehicleList, error) {
	vehicles, err := c.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	// Option sets come from the unfiltered collection: narrowing by one
	// filter must not shrink the other menus.
	options := vehicle.DeriveOptions(vehicles)
	filtered := query.Filter.Apply(vehicles)
	page := search.Paginate(filtered, query.Page, c.pageSize)

	return &VehicleList{
		Page:    page,
		Options: options,
		Query:   query.WithPage(page.Number),
	}, nil
}

func (c *catalogUseCaseImpl) GetVehicle(ctx context.Context, id int) (vehicle.Vehicle, error) {
	vehicles, err := c.loadAll(ctx)
	if err != nil {
		return vehicle.Vehicle{}, err
	}
	for _, v := range vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return vehicle.Vehicle{}, ErrVehicleNotFound
}

func (c *catalogUseCaseImpl) RefreshCache(ctx context.Context) error {
	vehicles, err := c.fetchFromSource(ctx)
	if err != nil {
		return err
	}
	if err := c.cache.Set(ctx, vehicles); err != nil {
		return errs.Wrap(err, "failed to refresh vehicle cache")
	}
	return nil
}

func (c *catalogUseCaseImpl) loadAll(ctx context.Context) ([]vehicle.Vehicle, error) {
	cached, err := c.cache.Get(ctx)
	if err != nil {
		// A broken cache degrades to a source fetch.
		slog.Warn("vehicle cache read failed", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	vehicles, err := c.fetchFromSource(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, vehicles); err != nil {
		slog.Warn("vehicle cache write failed", "error", err)
	}
	return vehicles, nil
}

func (c *catalogUseCaseImpl) fetchFromSource(ctx context.Context) ([]vehicle.Vehicle, error) {
	records, err := c.source.FetchAll(ctx)
	if err != nil {
		if isMalformed(err) {
			return nil, errs.Mark(err, ErrVehicleDataBroken)
		}
		return nil, errs.Mark(err, ErrVehicleSourceDown)
	}

	vehicles := make([]vehicle.Vehicle, 0, len(records))
	for _, rec := range records {
		vehicles = append(vehicles, vehicle.FromRecord(rec))
	}
	return vehicles, nil
}
