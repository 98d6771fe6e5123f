package booking

import (
	"time"

	"rentacar/internal/domain/user"
	"rentacar/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Step indexes the wizard's linear flow.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepDates
	StepReview
	StepPayment
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "personal_info"
	case StepDates:
		return "dates"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Draft is the wizard's working state for one booking session. Created
// fresh per session, discarded after confirmation or expiry; never shared
// between sessions.
type Draft struct {
	ID         uuid.UUID       `json:"id"`
	Vehicle    vehicle.Vehicle `json:"vehicle"`
	Personal   PersonalInfo    `json:"personal"`
	Dates      Dates           `json:"dates"`
	Payment    Payment         `json:"payment"`
	Step       Step            `json:"step"`
	Errors     FieldErrors     `json:"errors"`
	Submitting bool            `json:"submitting"`
	Confirmed  bool            `json:"confirmed"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// NewDraft starts a wizard session for a vehicle. Dates may be pre-seeded
// from the search the visitor arrived with.
func NewDraft(v vehicle.Vehicle, initialDates Dates, now time.Time) *Draft {
	return &Draft{
		ID:        uuid.New(),
		Vehicle:   v,
		Dates:     initialDates,
		Payment:   Payment{Method: PaymentCreditCard},
		Step:      StepPersonalInfo,
		Errors:    FieldErrors{},
		CreatedAt: now,
	}
}

// ApplyProfile merges the authenticated user's details into the personal
// info, keeping any value already entered. Safe to call repeatedly and at
// any point of the session: a profile arriving after the visitor started
// typing never clobbers their edits.
func (d *Draft) ApplyProfile(u user.User) {
	first, last := user.SplitName(u.Name)
	if d.Personal.FirstName == "" {
		d.Personal.FirstName = first
	}
	if d.Personal.LastName == "" {
		d.Personal.LastName = last
	}
	if d.Personal.Email == "" {
		d.Personal.Email = u.Email
	}
	if d.Personal.Phone == "" {
		d.Personal.Phone = u.Phone
	}
}

// ValidateStep runs the validator for one step. Review is a read-only recap
// and always passes. The previous error map is discarded wholesale.
func (d *Draft) ValidateStep(step Step, now time.Time, phoneMinLen int) bool {
	d.Errors = FieldErrors{}
	switch step {
	case StepPersonalInfo:
		d.Errors = ValidatePersonalInfo(d.Personal, phoneMinLen)
	case StepDates:
		d.Errors = ValidateDates(d.Dates)
	case StepReview:
		// no validation
	case StepPayment:
		d.Errors = ValidatePayment(d.Payment, now)
	}
	return d.Errors.Empty()
}

// Advance validates the current step and moves forward on success, capped
// at the confirmation step. On failure the step is unchanged and the error
// map describes why.
func (d *Draft) Advance(now time.Time, phoneMinLen int) bool {
	if !d.ValidateStep(d.Step, now, phoneMinLen) {
		return false
	}
	if d.Step < StepConfirmed {
		d.Step++
	}
	return true
}

// Back moves one step backward without re-validation, clamped at the first
// step.
func (d *Draft) Back() {
	if d.Step > StepPersonalInfo {
		d.Step--
	}
}

// PickupInstant combines the pickup date and time fields.
func (d *Draft) PickupInstant() (time.Time, bool) {
	return combineDateTime(d.Dates.PickupDate, d.Dates.PickupTime)
}

// ReturnInstant combines the dropoff date and time fields.
func (d *Draft) ReturnInstant() (time.Time, bool) {
	return combineDateTime(d.Dates.DropoffDate, d.Dates.DropoffTime)
}

// Quote prices the draft's current dates against the vehicle's daily rate.
func (d *Draft) Quote() Quote {
	return QuoteFor(d.Dates.PickupDate, d.Dates.DropoffDate, d.Vehicle.DailyRate)
}

func combineDateTime(date, tm string) (time.Time, bool) {
	if date == "" || tm == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+tm, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
