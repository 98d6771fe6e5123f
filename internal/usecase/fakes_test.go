//go:build unit

package usecase_test

import (
	"context"
	"sync"

	"rentacar/internal/domain/user"
	"rentacar/internal/domain/vehicle"
	"rentacar/internal/infra"
	"rentacar/internal/infra/rentalapi"
)

type fakeSource struct {
	records []vehicle.Record
	err     error
	calls   int
}

func (f *fakeSource) FetchAll(context.Context) ([]vehicle.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type fakeCache struct {
	mu       sync.Mutex
	vehicles []vehicle.Vehicle
	getErr   error
}

func (f *fakeCache) Get(context.Context) ([]vehicle.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.vehicles, nil
}

func (f *fakeCache) Set(_ context.Context, vehicles []vehicle.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vehicles = vehicles
	return nil
}

type fakeReservationAPI struct {
	mu      sync.Mutex
	created []rentalapi.Reservation
	listed  []rentalapi.Reservation
	deleted []string
	err     error
	nextID  string
}

func (f *fakeReservationAPI) CreateReservation(_ context.Context, res rentalapi.Reservation) (rentalapi.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return rentalapi.Reservation{}, f.err
	}
	res.ID = f.nextID
	f.created = append(f.created, res)
	return res, nil
}

func (f *fakeReservationAPI) ListReservations(context.Context, string) ([]rentalapi.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listed, nil
}

func (f *fakeReservationAPI) DeleteReservation(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeVerifier struct {
	user user.User
	err  error
}

func (f *fakeVerifier) Login(context.Context, string, string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	return f.user, nil
}

type fakeDirectory struct {
	user    user.User
	account rentalapi.NewAccount
	err     error
}

func (f *fakeDirectory) FindUser(context.Context, string, string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	return f.user, nil
}

func (f *fakeDirectory) CreateUser(_ context.Context, acc rentalapi.NewAccount) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	f.account = acc
	return f.user, nil
}

func errUnauthenticated() error {
	return infra.WrapInfraErr("invalid credentials", nil, infra.KindUnauthenticated)
}
