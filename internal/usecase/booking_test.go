//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"rentacar/internal/domain/booking"
	"rentacar/internal/domain/search"
	"rentacar/internal/domain/user"
	"rentacar/internal/domain/vehicle"
	"rentacar/internal/infra"
	"rentacar/internal/infra/store"
	"rentacar/internal/pkg/clock"
	"rentacar/internal/pkg/config"
	"rentacar/internal/pkg/ptr"
	"rentacar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	uc           usecase.BookingUseCase
	reservations *fakeReservationAPI
	clock        *clock.MockClock
	store        store.Store
}

func newBookingFixture(t *testing.T, records []vehicle.Record) *bookingFixture {
	return newBookingFixtureWithTTL(t, records, 30*time.Minute)
}

// newBookingFixtureWithTTL exists for tests that jump the mock clock past
// the card expiry; the draft must outlive the jump.
func newBookingFixtureWithTTL(t *testing.T, records []vehicle.Record, draftTTL time.Duration) *bookingFixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local))
	st := store.NewMemoryStore(time.Hour, draftTTL, clk)
	catalog := usecase.NewCatalogUseCase(&fakeSource{records: records}, &fakeCache{}, 9)
	reservations := &fakeReservationAPI{nextID: "17"}
	cfg := config.NewTestConfig().Booking

	return &bookingFixture{
		uc:           usecase.NewBookingUseCase(catalog, st, reservations, nil, clk, cfg),
		reservations: reservations,
		clock:        clk,
		store:        st,
	}
}

func availableRecords() []vehicle.Record {
	return []vehicle.Record{
		{ID: 1, CarMake: "Toyota", CarModel: "Corolla", CarColor: "Blue", CarModelYear: 2020, Price: "$50.00", Availability: true},
		{ID: 2, CarMake: "Ford", CarModel: "Focus", CarColor: "Red", CarModelYear: 2018, Price: "$40.00", Availability: false},
	}
}

func fillDraft(t *testing.T, f *bookingFixture, id uuid.UUID) {
	t.Helper()
	_, err := f.uc.UpdateDraft(context.Background(), id, usecase.DraftPatch{
		FirstName:   ptr.To("Jane"),
		LastName:    ptr.To("Doe"),
		Email:       ptr.To("jane@example.com"),
		Phone:       ptr.To("5551234567"),
		PickupDate:  ptr.To("2025-06-02"),
		PickupTime:  ptr.To("10:00"),
		DropoffDate: ptr.To("2025-06-04"),
		DropoffTime: ptr.To("10:00"),
		CardNumber:  ptr.To("4111 1111 1111 1111"),
		CardName:    ptr.To("Jane Doe"),
		ExpiryDate:  ptr.To("1230"),
		CVV:         ptr.To("123"),
	})
	require.NoError(t, err)
}

func TestStartDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds dates and profile", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		profile := user.User{ID: "42", Name: "Jane Doe", Email: "jane@example.com", Phone: "5551234567"}

		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{
			PickupLocation: "Miami",
			ReturnLocation: "Miami",
			PickupDate:     "2025-06-02",
			PickupTime:     "10:00",
			DropoffDate:    "2025-06-04",
			DropoffTime:    "10:00",
		}, &profile)
		require.NoError(t, err)

		assert.Equal(t, booking.StepPersonalInfo, draft.Step)
		assert.Equal(t, "2025-06-02", draft.Dates.PickupDate)
		assert.Equal(t, "Jane", draft.Personal.FirstName)
		assert.Equal(t, "Doe", draft.Personal.LastName)
		assert.Equal(t, "Toyota", draft.Vehicle.Make)

		stored, err := f.uc.GetDraft(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, draft.ID, stored.ID)
	})

	t.Run("malformed arrival criteria are not seeded", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())

		// Inverted range, only reachable through a hand-edited URL.
		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{
			PickupLocation: "Miami",
			ReturnLocation: "Miami",
			PickupDate:     "2025-06-04",
			PickupTime:     "10:00",
			DropoffDate:    "2025-06-02",
			DropoffTime:    "10:00",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, booking.Dates{}, draft.Dates)
	})

	t.Run("anonymous start leaves personal info blank", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())

		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{}, nil)
		require.NoError(t, err)
		assert.Equal(t, booking.PersonalInfo{}, draft.Personal)
	})

	t.Run("unavailable vehicle", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())

		_, err := f.uc.StartDraft(ctx, 2, search.Criteria{}, nil)
		assert.ErrorIs(t, err, usecase.ErrVehicleUnavailable)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())

		_, err := f.uc.StartDraft(ctx, 99, search.Criteria{}, nil)
		assert.ErrorIs(t, err, usecase.ErrVehicleNotFound)
	})
}

func TestUpdateDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("patch touches only present fields", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{}, nil)
		require.NoError(t, err)

		updated, err := f.uc.UpdateDraft(ctx, draft.ID, usecase.DraftPatch{
			FirstName: ptr.To("Jane"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane", updated.Personal.FirstName)
		assert.Equal(t, "", updated.Personal.LastName)
	})

	t.Run("expiry input reshaped", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{}, nil)
		require.NoError(t, err)

		updated, err := f.uc.UpdateDraft(ctx, draft.ID, usecase.DraftPatch{
			ExpiryDate: ptr.To("1230"),
		})
		require.NoError(t, err)
		assert.Equal(t, "12/30", updated.Payment.ExpiryDate)
	})

	t.Run("unknown draft", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())

		_, err := f.uc.UpdateDraft(ctx, uuid.New(), usecase.DraftPatch{})
		assert.ErrorIs(t, err, usecase.ErrDraftNotFound)
	})
}

func TestAdvanceAndBack(t *testing.T) {
	ctx := context.Background()

	t.Run("walks to payment and stops", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{}, nil)
		require.NoError(t, err)
		fillDraft(t, f, draft.ID)

		for _, want := range []booking.Step{booking.StepDates, booking.StepReview, booking.StepPayment} {
			draft, err = f.uc.Advance(ctx, draft.ID)
			require.NoError(t, err)
			assert.Equal(t, want, draft.Step)
		}

		// Advance never jumps past the payment step; only Confirm does.
		draft, err = f.uc.Advance(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StepPayment, draft.Step)
	})

	t.Run("invalid step blocks with persisted errors", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{}, nil)
		require.NoError(t, err)

		draft, err = f.uc.Advance(ctx, draft.ID)
		assert.ErrorIs(t, err, usecase.ErrStepInvalid)
		assert.Equal(t, booking.StepPersonalInfo, draft.Step)
		assert.Contains(t, draft.Errors, "firstName")

		stored, err := f.uc.GetDraft(ctx, draft.ID)
		require.NoError(t, err)
		assert.Contains(t, stored.Errors, "firstName")
	})

	t.Run("back clamps at first step", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{}, nil)
		require.NoError(t, err)

		draft, err = f.uc.Back(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StepPersonalInfo, draft.Step)
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	session := &store.Session{ID: uuid.New(), User: user.User{ID: "42", Name: "Jane Doe", Email: "jane@example.com"}}

	prepare := func(t *testing.T, f *bookingFixture) uuid.UUID {
		t.Helper()
		draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{}, nil)
		require.NoError(t, err)
		fillDraft(t, f, draft.ID)
		for range 3 {
			_, err = f.uc.Advance(ctx, draft.ID)
			require.NoError(t, err)
		}
		return draft.ID
	}

	t.Run("success posts payload and confirms", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		id := prepare(t, f)

		draft, result, err := f.uc.Confirm(ctx, id, session)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, booking.StepConfirmed, draft.Step)
		assert.True(t, draft.Confirmed)
		assert.False(t, draft.Submitting)
		assert.Equal(t, "/user", result.RedirectTo)
		assert.Equal(t, 3*time.Second, result.RedirectAfter)
		assert.Equal(t, "17", result.Reservation.ID)

		require.Len(t, f.reservations.created, 1)
		payload := f.reservations.created[0]
		assert.Equal(t, "Toyota Corolla", payload.Vehicle)
		assert.Equal(t, 2020, payload.Year)
		assert.Equal(t, "Blue", payload.Color)
		assert.InDelta(t, 50, payload.DailyRate, 0.001)
		assert.Equal(t, "4111111111111111", payload.CardNumber)
		assert.Equal(t, "42", payload.UserID)

		pickup, err := time.Parse(time.RFC3339, payload.Pickup)
		require.NoError(t, err)
		ret, err := time.Parse(time.RFC3339, payload.Return)
		require.NoError(t, err)
		assert.True(t, ret.After(pickup))
	})

	t.Run("unauthenticated confirm never calls the API", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		id := prepare(t, f)

		draft, _, err := f.uc.Confirm(ctx, id, nil)
		assert.ErrorIs(t, err, usecase.ErrLoginRequired)
		assert.Equal(t, booking.StepPayment, draft.Step)
		assert.Empty(t, f.reservations.created)
	})

	t.Run("invalid payment re-checked before auth", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		id := prepare(t, f)
		_, err := f.uc.UpdateDraft(ctx, id, usecase.DraftPatch{CardNumber: ptr.To("4111")})
		require.NoError(t, err)

		draft, _, err := f.uc.Confirm(ctx, id, session)
		assert.ErrorIs(t, err, usecase.ErrStepInvalid)
		assert.Equal(t, booking.StepPayment, draft.Step)
		assert.Contains(t, draft.Errors, "cardNumber")
		assert.Empty(t, f.reservations.created)
	})

	t.Run("API failure keeps step and clears in-flight flag", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		id := prepare(t, f)
		f.reservations.err = infra.WrapInfraErr("rental API returned 500", nil)

		draft, _, err := f.uc.Confirm(ctx, id, session)
		assert.ErrorIs(t, err, usecase.ErrReservationFailed)
		assert.Equal(t, booking.StepPayment, draft.Step)
		assert.False(t, draft.Confirmed)
		assert.False(t, draft.Submitting)

		// Retry succeeds once the API recovers.
		f.reservations.err = nil
		_, result, err := f.uc.Confirm(ctx, id, session)
		require.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("second confirm reports already confirmed", func(t *testing.T) {
		f := newBookingFixture(t, availableRecords())
		id := prepare(t, f)

		_, _, err := f.uc.Confirm(ctx, id, session)
		require.NoError(t, err)

		_, _, err = f.uc.Confirm(ctx, id, session)
		assert.ErrorIs(t, err, usecase.ErrAlreadyConfirmed)
		assert.Len(t, f.reservations.created, 1)
	})

	t.Run("expired card caught by the injected clock", func(t *testing.T) {
		f := newBookingFixtureWithTTL(t, availableRecords(), 10*365*24*time.Hour)
		id := prepare(t, f)

		f.clock.Set(time.Date(2031, 1, 1, 0, 0, 0, 0, time.Local))
		draft, _, err := f.uc.Confirm(ctx, id, session)
		assert.ErrorIs(t, err, usecase.ErrStepInvalid)
		require.NotNil(t, draft)
		assert.Contains(t, draft.Errors, "expiryDate")
	})
}

func TestPrefillProfile(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t, availableRecords())

	draft, err := f.uc.StartDraft(ctx, 1, search.Criteria{}, nil)
	require.NoError(t, err)

	_, err = f.uc.UpdateDraft(ctx, draft.ID, usecase.DraftPatch{Email: ptr.To("typed@example.com")})
	require.NoError(t, err)

	updated, err := f.uc.PrefillProfile(ctx, draft.ID, user.User{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "5551234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.Personal.FirstName)
	assert.Equal(t, "typed@example.com", updated.Personal.Email, "typed value kept")
	assert.Equal(t, "5551234567", updated.Personal.Phone)
}
