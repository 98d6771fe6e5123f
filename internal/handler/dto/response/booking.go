package response

import (
	"github.com/google/uuid"

	"rentacar/internal/domain/booking"
	"rentacar/internal/usecase"
)

// PaymentSummary echoes what the payment step holds without ever returning
// the raw card number or the CVV to the client.
type PaymentSummary struct {
	Method     string `json:"paymentMethod"`
	CardNumber string `json:"cardNumber,omitempty"`
	CardName   string `json:"cardName,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVVEntered bool   `json:"cvvEntered"`
}

type BookingResponse struct {
	ID         uuid.UUID            `json:"id"`
	Step       int                  `json:"step"`
	StepName   string               `json:"stepName"`
	Vehicle    VehicleResponse      `json:"vehicle"`
	Personal   booking.PersonalInfo `json:"personal"`
	Dates      booking.Dates        `json:"dates"`
	Payment    PaymentSummary       `json:"payment"`
	Errors     booking.FieldErrors  `json:"errors"`
	Quote      booking.Quote        `json:"quote"`
	Submitting bool                 `json:"submitting"`
	Confirmed  bool                 `json:"confirmed"`
}

func FromDraft(d *booking.Draft) BookingResponse {
	errs := d.Errors
	if errs == nil {
		errs = booking.FieldErrors{}
	}
	return BookingResponse{
		ID:       d.ID,
		Step:     int(d.Step),
		StepName: d.Step.String(),
		Vehicle:  FromVehicle(d.Vehicle),
		Personal: d.Personal,
		Dates:    d.Dates,
		Payment: PaymentSummary{
			Method:     string(d.Payment.Method),
			CardNumber: booking.MaskCardNumber(d.Payment.CardNumber),
			CardName:   d.Payment.CardName,
			ExpiryDate: d.Payment.ExpiryDate,
			CVVEntered: d.Payment.CVV != "",
		},
		Errors:     errs,
		Quote:      d.Quote(),
		Submitting: d.Submitting,
		Confirmed:  d.Confirmed,
	}
}

type RedirectHint struct {
	To           string `json:"to"`
	AfterSeconds int    `json:"afterSeconds"`
}

type ConfirmResponse struct {
	Booking     BookingResponse     `json:"booking"`
	Reservation ReservationResponse `json:"reservation"`
	Redirect    RedirectHint        `json:"redirect"`
}

func FromConfirmResult(d *booking.Draft, result *usecase.ConfirmResult) ConfirmResponse {
	return ConfirmResponse{
		Booking:     FromDraft(d),
		Reservation: FromReservation(result.Reservation),
		Redirect: RedirectHint{
			To:           result.RedirectTo,
			AfterSeconds: int(result.RedirectAfter.Seconds()),
		},
	}
}
