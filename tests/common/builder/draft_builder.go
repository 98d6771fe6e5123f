package builder

import (
	"time"

	"rentacar/internal/domain/booking"
)

// DraftBuilder assembles wizard drafts that already carry valid data for
// every step, letting tests break exactly one field at a time.
type DraftBuilder struct {
	draft *booking.Draft
	now   time.Time
}

func NewDraftBuilder() *DraftBuilder {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	d := booking.NewDraft(NewVehicleBuilder().Build(), booking.Dates{
		PickupDate:  "2025-06-02",
		PickupTime:  "10:00",
		DropoffDate: "2025-06-04",
		DropoffTime: "10:00",
	}, now)
	d.Personal = booking.PersonalInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "5551234567",
	}
	d.Payment = booking.Payment{
		Method:     booking.PaymentCreditCard,
		CardNumber: "4111 1111 1111 1111",
		CardName:   "Jane Doe",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
	return &DraftBuilder{draft: d, now: now}
}

func (b *DraftBuilder) Now() time.Time {
	return b.now
}

func (b *DraftBuilder) WithStep(step booking.Step) *DraftBuilder {
	b.draft.Step = step
	return b
}

func (b *DraftBuilder) WithPersonal(p booking.PersonalInfo) *DraftBuilder {
	b.draft.Personal = p
	return b
}

func (b *DraftBuilder) WithDates(d booking.Dates) *DraftBuilder {
	b.draft.Dates = d
	return b
}

func (b *DraftBuilder) WithPayment(p booking.Payment) *DraftBuilder {
	b.draft.Payment = p
	return b
}

func (b *DraftBuilder) MutatePersonal(mutate func(*booking.PersonalInfo)) *DraftBuilder {
	mutate(&b.draft.Personal)
	return b
}

func (b *DraftBuilder) MutateDates(mutate func(*booking.Dates)) *DraftBuilder {
	mutate(&b.draft.Dates)
	return b
}

func (b *DraftBuilder) MutatePayment(mutate func(*booking.Payment)) *DraftBuilder {
	mutate(&b.draft.Payment)
	return b
}

func (b *DraftBuilder) Build() *booking.Draft {
	return b.draft
}
