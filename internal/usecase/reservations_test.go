//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"rentacar/internal/infra"
	"rentacar/internal/infra/rentalapi"
	"rentacar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("loose API matches re-filtered exactly", func(t *testing.T) {
		api := &fakeReservationAPI{listed: []rentalapi.Reservation{
			{ID: "1", UserID: "4"},
			{ID: "2", UserID: "42"},
			{ID: "3", UserID: "421"},
		}}
		uc := usecase.NewReservationsUseCase(api)

		own, err := uc.ListForUser(ctx, "42")
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, "2", own[0].ID)
	})

	t.Run("API outage surfaced", func(t *testing.T) {
		api := &fakeReservationAPI{err: infra.WrapInfraErr("boom", nil)}
		uc := usecase.NewReservationsUseCase(api)

		_, err := uc.ListForUser(ctx, "42")
		assert.ErrorIs(t, err, usecase.ErrRentalAPIDown)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("own reservation deleted", func(t *testing.T) {
		api := &fakeReservationAPI{listed: []rentalapi.Reservation{{ID: "7", UserID: "42"}}}
		uc := usecase.NewReservationsUseCase(api)

		require.NoError(t, uc.Delete(ctx, "7", "42"))
		assert.Equal(t, []string{"7"}, api.deleted)
	})

	t.Run("someone else's reservation reads as not found", func(t *testing.T) {
		api := &fakeReservationAPI{listed: []rentalapi.Reservation{{ID: "7", UserID: "99"}}}
		uc := usecase.NewReservationsUseCase(api)

		err := uc.Delete(ctx, "7", "42")
		assert.ErrorIs(t, err, usecase.ErrReservationNotFound)
		assert.Empty(t, api.deleted)
	})
}
