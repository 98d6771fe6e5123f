package usecase

import (
	"context"
	"errors"

	"rentacar/internal/infra/rentalapi"
	"rentacar/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRentalAPIDown       = errors.New("reservations API unavailable")
)

// ReservationReader is the external reservations boundary used by the
// profile page.
type ReservationReader interface {
	ListReservations(ctx context.Context, userID string) ([]rentalapi.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

type ReservationsUseCase interface {
	ListForUser(ctx context.Context, userID string) ([]rentalapi.Reservation, error)
	// Delete removes one of the user's own reservations; ids belonging to
	// other users read as not found.
	Delete(ctx context.Context, id, userID string) error
}

type reservationsUseCaseImpl struct {
	client ReservationReader
}

func NewReservationsUseCase(client ReservationReader) ReservationsUseCase {
	return &reservationsUseCaseImpl{client: client}
}

func (r *reservationsUseCaseImpl) ListForUser(ctx context.Context, userID string) ([]rentalapi.Reservation, error) {
	records, err := r.client.ListReservations(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrRentalAPIDown)
	}

	// The mock API matches userId loosely ("4" also returns "42"); keep
	// only exact matches.
	own := make([]rentalapi.Reservation, 0, len(records))
	for _, rec := range records {
		if rec.UserID == userID {
			own = append(own, rec)
		}
	}
	return own, nil
}

func (r *reservationsUseCaseImpl) Delete(ctx context.Context, id, userID string) error {
	own, err := r.ListForUser(ctx, userID)
	if err != nil {
		return err
	}

	mine := false
	for _, rec := range own {
		if rec.ID == id {
			mine = true
			break
		}
	}
	if !mine {
		return ErrReservationNotFound
	}

	if err := r.client.DeleteReservation(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrRentalAPIDown)
	}
	return nil
}
