package response

import (
	"rentacar/internal/domain/booking"
	"rentacar/internal/infra/rentalapi"
)

type ReservationResponse struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"createdAt"`
	Vehicle    string  `json:"vehicle"`
	Year       int     `json:"year"`
	Color      string  `json:"color"`
	DailyRate  float64 `json:"dailyRate"`
	Pickup     string  `json:"pickup"`
	Return     string  `json:"return"`
	CardNumber string  `json:"cardNumber"`
	UserID     string  `json:"userId"`
}

// FromReservation mirrors the upstream record with the card number masked.
func FromReservation(r rentalapi.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		CreatedAt:  r.CreatedAt,
		Vehicle:    r.Vehicle,
		Year:       r.Year,
		Color:      r.Color,
		DailyRate:  r.DailyRate,
		Pickup:     r.Pickup,
		Return:     r.Return,
		CardNumber: booking.MaskCardNumber(r.CardNumber),
		UserID:     r.UserID,
	}
}

func FromReservations(list []rentalapi.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromReservation(r))
	}
	return out
}
