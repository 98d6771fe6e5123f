// Package notify sends transactional mail through SendGrid. Sending is
// best-effort: a failed confirmation email never fails the booking.
package notify

import (
	"context"
	"fmt"
	"strings"

	"rentacar/internal/domain/booking"
	"rentacar/internal/domain/user"
	"rentacar/internal/infra/rentalapi"
	"rentacar/internal/pkg/config"
	"rentacar/internal/pkg/errs"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Mailer struct {
	client   *sendgrid.Client
	from     *mail.Email
	fromName string
}

// New returns nil when no API key is configured; callers treat a nil mailer
// as "mail disabled".
func New(cfg config.MailConfig) *Mailer {
	if cfg.SendGridAPIKey == "" || cfg.FromEmail == "" {
		return nil
	}
	return &Mailer{
		client:   sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:     mail.NewEmail(cfg.FromName, cfg.FromEmail),
		fromName: cfg.FromName,
	}
}

func (m *Mailer) SendBookingConfirmation(ctx context.Context, to user.User, d *booking.Draft, res rentalapi.Reservation) error {
	quote := d.Quote()
	subject := fmt.Sprintf("Your booking is confirmed: %s", d.Vehicle.Descriptor())

	var plain strings.Builder
	fmt.Fprintf(&plain, "Hi %s,\n\n", to.FirstName())
	fmt.Fprintf(&plain, "Your reservation for the %s (%d, %s) is confirmed.\n\n",
		d.Vehicle.Descriptor(), d.Vehicle.Year, d.Vehicle.Color)
	fmt.Fprintf(&plain, "Pickup:  %s %s\n", d.Dates.PickupDate, d.Dates.PickupTime)
	fmt.Fprintf(&plain, "Return:  %s %s\n", d.Dates.DropoffDate, d.Dates.DropoffTime)
	fmt.Fprintf(&plain, "Total:   $%.2f for %d day(s)\n\n", quote.Total, quote.Days)
	fmt.Fprintf(&plain, "Card charged: %s\n", booking.MaskCardNumber(d.Payment.CardNumber))
	if res.ID != "" {
		fmt.Fprintf(&plain, "Reservation reference: %s\n", res.ID)
	}
	fmt.Fprintf(&plain, "\nSafe travels,\n%s\n", m.fromName)

	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail(to.Name, to.Email), plain.String(), "")

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "sendgrid request failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Newf("sendgrid rejected the message: status %d", resp.StatusCode)
	}
	return nil
}
