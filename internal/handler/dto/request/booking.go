package request

import (
	"rentacar/internal/usecase"
)

// UpdateBookingRequest is the wizard's partial form update; absent fields
// stay untouched.
type UpdateBookingRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	PickupDate    *string `json:"pickupDate"`
	PickupTime    *string `json:"pickupTime"`
	DropoffDate   *string `json:"dropoffDate"`
	DropoffTime   *string `json:"dropoffTime"`
	PaymentMethod *string `json:"paymentMethod"`
	CardNumber    *string `json:"cardNumber"`
	CardName      *string `json:"cardName"`
	ExpiryDate    *string `json:"expiryDate"`
	CVV           *string `json:"cvv"`
}

func (r *UpdateBookingRequest) ToPatch() usecase.DraftPatch {
	return usecase.DraftPatch{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		PickupDate:    r.PickupDate,
		PickupTime:    r.PickupTime,
		DropoffDate:   r.DropoffDate,
		DropoffTime:   r.DropoffTime,
		PaymentMethod: r.PaymentMethod,
		CardNumber:    r.CardNumber,
		CardName:      r.CardName,
		ExpiryDate:    r.ExpiryDate,
		CVV:           r.CVV,
	}
}
