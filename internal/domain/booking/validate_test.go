//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rentacar/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

const testPhoneMinLen = 7

func validPersonal() booking.PersonalInfo {
	return booking.PersonalInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "5551234567",
	}
}

func validDates() booking.Dates {
	return booking.Dates{
		PickupDate:  "2025-06-02",
		PickupTime:  "10:00",
		DropoffDate: "2025-06-04",
		DropoffTime: "10:00",
	}
}

func validPayment() booking.Payment {
	return booking.Payment{
		Method:     booking.PaymentCreditCard,
		CardNumber: "4111 1111 1111 1111",
		CardName:   "Jane Doe",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
}

func TestValidatePersonalInfo(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*booking.PersonalInfo)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid info passes",
			mutate: func(p *booking.PersonalInfo) {},
		},
		{
			name:      "single character first name",
			mutate:    func(p *booking.PersonalInfo) { p.FirstName = "J" },
			wantField: "firstName",
			wantMsg:   "First name must be at least 2 characters",
		},
		{
			name:      "empty last name",
			mutate:    func(p *booking.PersonalInfo) { p.LastName = "" },
			wantField: "lastName",
			wantMsg:   "Last name must be at least 2 characters",
		},
		{
			name:      "email without domain",
			mutate:    func(p *booking.PersonalInfo) { p.Email = "jane@" },
			wantField: "email",
			wantMsg:   "Please enter a valid email address",
		},
		{
			name:      "email without at sign",
			mutate:    func(p *booking.PersonalInfo) { p.Email = "jane.example.com" },
			wantField: "email",
			wantMsg:   "Please enter a valid email address",
		},
		{
			name:      "phone below minimum length",
			mutate:    func(p *booking.PersonalInfo) { p.Phone = "555123" },
			wantField: "phone",
			wantMsg:   "Please enter a valid phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPersonal()
			tt.mutate(&p)
			errs := booking.ValidatePersonalInfo(p, testPhoneMinLen)
			if tt.wantField == "" {
				assert.True(t, errs.Empty())
				return
			}
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
		})
	}
}

func TestValidateDates(t *testing.T) {
	t.Run("valid range passes", func(t *testing.T) {
		assert.True(t, booking.ValidateDates(validDates()).Empty())
	})

	t.Run("every missing field reported at once", func(t *testing.T) {
		errs := booking.ValidateDates(booking.Dates{})
		assert.Len(t, errs, 4)
		assert.Equal(t, "Pickup date is required", errs["pickupDate"])
		assert.Equal(t, "Pickup time is required", errs["pickupTime"])
		assert.Equal(t, "Return date is required", errs["dropoffDate"])
		assert.Equal(t, "Return time is required", errs["dropoffTime"])
	})

	t.Run("dropoff before pickup attributed to dropoffDate", func(t *testing.T) {
		d := validDates()
		d.DropoffDate = "2025-06-01"
		errs := booking.ValidateDates(d)
		assert.Equal(t, "Return date must be after pickup date", errs["dropoffDate"])
	})

	t.Run("dropoff equal to pickup rejected", func(t *testing.T) {
		d := validDates()
		d.DropoffDate = d.PickupDate
		d.DropoffTime = d.PickupTime
		errs := booking.ValidateDates(d)
		assert.Equal(t, "Return date must be after pickup date", errs["dropoffDate"])
	})

	t.Run("same day later time accepted", func(t *testing.T) {
		d := validDates()
		d.DropoffDate = d.PickupDate
		d.DropoffTime = "18:30"
		assert.True(t, booking.ValidateDates(d).Empty())
	})

	t.Run("cross-field check deferred while fields missing", func(t *testing.T) {
		d := validDates()
		d.DropoffTime = ""
		errs := booking.ValidateDates(d)
		assert.Equal(t, "Return time is required", errs["dropoffTime"])
		assert.NotContains(t, errs, "dropoffDate")
	})
}

func TestValidatePayment(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mutate    func(*booking.Payment)
		wantField string
	}{
		{
			name:   "valid card passes",
			mutate: func(p *booking.Payment) {},
		},
		{
			name:   "debit card accepted",
			mutate: func(p *booking.Payment) { p.Method = booking.PaymentDebitCard },
		},
		{
			name:      "unknown method",
			mutate:    func(p *booking.Payment) { p.Method = "paypal" },
			wantField: "paymentMethod",
		},
		{
			name:      "fifteen digit card number",
			mutate:    func(p *booking.Payment) { p.CardNumber = "4111 1111 1111 111" },
			wantField: "cardNumber",
		},
		{
			name:      "seventeen digit card number",
			mutate:    func(p *booking.Payment) { p.CardNumber = "41111111111111111" },
			wantField: "cardNumber",
		},
		{
			name:      "letters in card number",
			mutate:    func(p *booking.Payment) { p.CardNumber = "4111 abcd 1111 1111" },
			wantField: "cardNumber",
		},
		{
			name:      "blank cardholder name",
			mutate:    func(p *booking.Payment) { p.CardName = "   " },
			wantField: "cardName",
		},
		{
			name:      "elapsed expiry",
			mutate:    func(p *booking.Payment) { p.ExpiryDate = "01/20" },
			wantField: "expiryDate",
		},
		{
			name:      "malformed expiry",
			mutate:    func(p *booking.Payment) { p.ExpiryDate = "1/30" },
			wantField: "expiryDate",
		},
		{
			name:      "month out of range",
			mutate:    func(p *booking.Payment) { p.ExpiryDate = "13/30" },
			wantField: "expiryDate",
		},
		{
			name:   "far future expiry accepted",
			mutate: func(p *booking.Payment) { p.ExpiryDate = "12/99" },
		},
		{
			name:      "two digit cvv",
			mutate:    func(p *booking.Payment) { p.CVV = "12" },
			wantField: "cvv",
		},
		{
			name:      "five digit cvv",
			mutate:    func(p *booking.Payment) { p.CVV = "12345" },
			wantField: "cvv",
		},
		{
			name:   "four digit cvv accepted",
			mutate: func(p *booking.Payment) { p.CVV = "1234" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayment()
			tt.mutate(&p)
			errs := booking.ValidatePayment(p, now)
			if tt.wantField == "" {
				assert.True(t, errs.Empty())
				return
			}
			assert.Contains(t, errs, tt.wantField)
		})
	}

	t.Run("card valid through end of expiry month", func(t *testing.T) {
		p := validPayment()
		p.ExpiryDate = "01/25"
		endOfMonth := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
		assert.True(t, booking.ValidatePayment(p, endOfMonth).Empty())

		firstOfNext := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		assert.Contains(t, booking.ValidatePayment(p, firstOfNext), "expiryDate")
	})
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "************1111", booking.MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "1111", booking.MaskCardNumber("1111"))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "12/30", booking.FormatExpiry("1230"))
	assert.Equal(t, "12/30", booking.FormatExpiry("12/30"))
	assert.Equal(t, "12", booking.FormatExpiry("12"))
	assert.Equal(t, "12/34", booking.FormatExpiry("123456"))
	assert.Equal(t, "", booking.FormatExpiry("ab"))
}
