package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rentacar/internal/domain/booking"
	"rentacar/internal/domain/search"
	"rentacar/internal/domain/user"
	"rentacar/internal/infra/rentalapi"
	"rentacar/internal/infra/store"
	"rentacar/internal/pkg/clock"
	"rentacar/internal/pkg/config"
	"rentacar/internal/pkg/errs"
	"rentacar/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound      = errors.New("booking draft not found")
	ErrVehicleUnavailable = errors.New("vehicle not available for booking")
	ErrStepInvalid        = errors.New("current step has validation errors")
	ErrLoginRequired      = errors.New("login required to confirm a booking")
	ErrAlreadyConfirmed   = errors.New("booking already confirmed")
	ErrSubmitInFlight     = errors.New("confirmation already in progress")
	ErrReservationFailed  = errors.New("reservation request failed")
)

// ReservationWriter is the external reservations boundary used on confirm.
type ReservationWriter interface {
	CreateReservation(ctx context.Context, res rentalapi.Reservation) (rentalapi.Reservation, error)
}

// ConfirmationMailer sends the post-booking email. Implementations must be
// safe to call with a best-effort contract; confirm never fails on mail.
type ConfirmationMailer interface {
	SendBookingConfirmation(ctx context.Context, to user.User, d *booking.Draft, res rentalapi.Reservation) error
}

// DraftPatch is a partial update of the wizard's form fields; nil leaves a
// field untouched.
type DraftPatch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	PickupDate    *string
	PickupTime    *string
	DropoffDate   *string
	DropoffTime   *string
	PaymentMethod *string
	CardNumber    *string
	CardName      *string
	ExpiryDate    *string
	CVV           *string
}

// ConfirmResult reports a successful confirmation: the created record and
// the client-side redirect the original flow schedules.
type ConfirmResult struct {
	Reservation   rentalapi.Reservation
	RedirectTo    string
	RedirectAfter time.Duration
}

type BookingUseCase interface {
	// StartDraft opens a wizard session for a vehicle. Dates are seeded from
	// the list query the visitor arrived with; a logged-in profile
	// pre-populates personal info.
	StartDraft(ctx context.Context, vehicleID int, seed search.Criteria, profile *user.User) (*booking.Draft, error)
	GetDraft(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, patch DraftPatch) (*booking.Draft, error)
	// PrefillProfile re-applies the keep-existing-non-empty merge for a
	// profile that arrived after the draft was started.
	PrefillProfile(ctx context.Context, id uuid.UUID, profile user.User) (*booking.Draft, error)
	Advance(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	Back(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	Confirm(ctx context.Context, id uuid.UUID, sess *store.Session) (*booking.Draft, *ConfirmResult, error)
}

type bookingUseCaseImpl struct {
	catalog      CatalogUseCase
	drafts       store.DraftStore
	reservations ReservationWriter
	mailer       ConfirmationMailer
	clock        clock.Clock
	cfg          config.BookingConfig
}

func NewBookingUseCase(
	catalog CatalogUseCase,
	drafts store.DraftStore,
	reservations ReservationWriter,
	mailer ConfirmationMailer,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingUseCase {
	return &bookingUseCaseImpl{
		catalog:      catalog,
		drafts:       drafts,
		reservations: reservations,
		mailer:       mailer,
		clock:        clk,
		cfg:          cfg,
	}
}

func (b *bookingUseCaseImpl) StartDraft(ctx context.Context, vehicleID int, seed search.Criteria, profile *user.User) (*booking.Draft, error) {
	v, err := b.catalog.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !v.Availability {
		return nil, ErrVehicleUnavailable
	}

	// Only a well-formed landing-form arrival seeds the dates; hand-crafted
	// query strings with missing fields or an inverted range start blank and
	// get caught again at the dates step.
	var dates booking.Dates
	if !seed.IsZero() && len(seed.Validate(b.clock.Now())) == 0 {
		dates = booking.Dates{
			PickupDate:  seed.PickupDate,
			PickupTime:  seed.PickupTime,
			DropoffDate: seed.DropoffDate,
			DropoffTime: seed.DropoffTime,
		}
	}
	draft := booking.NewDraft(v, dates, b.clock.Now())

	if profile != nil {
		draft.ApplyProfile(*profile)
	}

	if err := b.drafts.PutDraft(ctx, draft); err != nil {
		return nil, errs.Wrap(err, "failed to persist draft")
	}
	return draft, nil
}

func (b *bookingUseCaseImpl) GetDraft(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	return b.load(ctx, id)
}

func (b *bookingUseCaseImpl) UpdateDraft(ctx context.Context, id uuid.UUID, patch DraftPatch) (*booking.Draft, error) {
	draft, err := b.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Confirmed {
		return nil, ErrAlreadyConfirmed
	}

	applyPatch(draft, patch)

	if err := b.drafts.PutDraft(ctx, draft); err != nil {
		return nil, errs.Wrap(err, "failed to persist draft")
	}
	return draft, nil
}

func (b *bookingUseCaseImpl) PrefillProfile(ctx context.Context, id uuid.UUID, profile user.User) (*booking.Draft, error) {
	draft, err := b.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Confirmed {
		return nil, ErrAlreadyConfirmed
	}

	draft.ApplyProfile(profile)

	if err := b.drafts.PutDraft(ctx, draft); err != nil {
		return nil, errs.Wrap(err, "failed to persist draft")
	}
	return draft, nil
}

func (b *bookingUseCaseImpl) Advance(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	draft, err := b.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Confirmed {
		return nil, ErrAlreadyConfirmed
	}

	// The payment step only completes through Confirm; Advance stops there.
	if draft.Step >= booking.StepPayment {
		return draft, nil
	}

	ok := draft.Advance(b.clock.Now(), b.cfg.PhoneMinLen)

	if err := b.drafts.PutDraft(ctx, draft); err != nil {
		return nil, errs.Wrap(err, "failed to persist draft")
	}
	if !ok {
		return draft, ErrStepInvalid
	}
	return draft, nil
}

func (b *bookingUseCaseImpl) Back(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	draft, err := b.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Confirmed {
		return nil, ErrAlreadyConfirmed
	}

	draft.Back()

	if err := b.drafts.PutDraft(ctx, draft); err != nil {
		return nil, errs.Wrap(err, "failed to persist draft")
	}
	return draft, nil
}

func (b *bookingUseCaseImpl) Confirm(ctx context.Context, id uuid.UUID, sess *store.Session) (*booking.Draft, *ConfirmResult, error) {
	draft, err := b.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if draft.Confirmed {
		return draft, nil, ErrAlreadyConfirmed
	}
	if draft.Submitting {
		return draft, nil, ErrSubmitInFlight
	}

	if !draft.ValidateStep(booking.StepPayment, b.clock.Now(), b.cfg.PhoneMinLen) {
		if err := b.drafts.PutDraft(ctx, draft); err != nil {
			return nil, nil, errs.Wrap(err, "failed to persist draft")
		}
		return draft, nil, ErrStepInvalid
	}

	// Unauthenticated confirms never reach the reservations API.
	if sess == nil {
		return draft, nil, ErrLoginRequired
	}

	// Advisory single-flight: the flag is visible to concurrent readers of
	// the same draft but is not a transactional guarantee.
	draft.Submitting = true
	if err := b.drafts.PutDraft(ctx, draft); err != nil {
		return nil, nil, errs.Wrap(err, "failed to persist draft")
	}

	created, err := b.reservations.CreateReservation(ctx, b.buildPayload(draft, sess.User.ID))
	if err != nil {
		draft.Submitting = false
		if putErr := b.drafts.PutDraft(ctx, draft); putErr != nil {
			slog.Warn("failed to clear in-flight flag", "draft_id", draft.ID, "error", putErr)
		}
		return draft, nil, errs.Mark(err, ErrReservationFailed)
	}

	draft.Submitting = false
	draft.Confirmed = true
	draft.Step = booking.StepConfirmed
	if err := b.drafts.PutDraft(ctx, draft); err != nil {
		return nil, nil, errs.Wrap(err, "failed to persist draft")
	}

	if b.mailer != nil {
		b.sendConfirmationMail(sess.User, draft, created)
	}

	return draft, &ConfirmResult{
		Reservation:   created,
		RedirectTo:    "/user",
		RedirectAfter: b.cfg.ConfirmRedirectDelay,
	}, nil
}

func (b *bookingUseCaseImpl) buildPayload(draft *booking.Draft, userID string) rentalapi.Reservation {
	res := rentalapi.Reservation{
		CreatedAt:  b.clock.Now().UTC().Format(time.RFC3339),
		Vehicle:    draft.Vehicle.Descriptor(),
		Year:       draft.Vehicle.Year,
		Color:      draft.Vehicle.Color,
		DailyRate:  draft.Vehicle.DailyRate,
		CardNumber: booking.NormalizeCardNumber(draft.Payment.CardNumber),
		UserID:     userID,
	}
	if pickup, ok := draft.PickupInstant(); ok {
		res.Pickup = pickup.UTC().Format(time.RFC3339)
	}
	if ret, ok := draft.ReturnInstant(); ok {
		res.Return = ret.UTC().Format(time.RFC3339)
	}
	return res
}

func (b *bookingUseCaseImpl) sendConfirmationMail(to user.User, draft *booking.Draft, created rentalapi.Reservation) {
	// Detached from the request: mail must never delay or fail the confirm.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := b.mailer.SendBookingConfirmation(ctx, to, draft, created); err != nil {
			slog.Warn("confirmation mail failed", "reservation_id", created.ID, "error", err)
		}
	}()
}

func (b *bookingUseCaseImpl) load(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	draft, err := b.drafts.GetDraft(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDraftNotFound
		}
		return nil, errs.Wrap(err, "failed to load draft")
	}
	return draft, nil
}

func applyPatch(draft *booking.Draft, patch DraftPatch) {
	draft.Personal.FirstName = ptr.Coalesce(patch.FirstName, draft.Personal.FirstName)
	draft.Personal.LastName = ptr.Coalesce(patch.LastName, draft.Personal.LastName)
	draft.Personal.Email = ptr.Coalesce(patch.Email, draft.Personal.Email)
	draft.Personal.Phone = ptr.Coalesce(patch.Phone, draft.Personal.Phone)

	draft.Dates.PickupDate = ptr.Coalesce(patch.PickupDate, draft.Dates.PickupDate)
	draft.Dates.PickupTime = ptr.Coalesce(patch.PickupTime, draft.Dates.PickupTime)
	draft.Dates.DropoffDate = ptr.Coalesce(patch.DropoffDate, draft.Dates.DropoffDate)
	draft.Dates.DropoffTime = ptr.Coalesce(patch.DropoffTime, draft.Dates.DropoffTime)

	if patch.PaymentMethod != nil {
		draft.Payment.Method = booking.PaymentMethod(*patch.PaymentMethod)
	}
	draft.Payment.CardNumber = ptr.Coalesce(patch.CardNumber, draft.Payment.CardNumber)
	draft.Payment.CardName = ptr.Coalesce(patch.CardName, draft.Payment.CardName)
	if patch.ExpiryDate != nil {
		// Free-typed expiry input is shaped into MM/YY the way the form does.
		draft.Payment.ExpiryDate = booking.FormatExpiry(*patch.ExpiryDate)
	}
	draft.Payment.CVV = ptr.Coalesce(patch.CVV, draft.Payment.CVV)
}
