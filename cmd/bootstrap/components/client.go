package components

import (
	"rentacar/internal/infra/authapi"
	"rentacar/internal/infra/carsapi"
	"rentacar/internal/infra/rentalapi"
	"rentacar/internal/notify"
	"rentacar/internal/pkg/config"
	"rentacar/internal/usecase"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		fx.Annotate(
			NewCarsClient,
			fx.As(new(usecase.VehicleSource)),
		),
		fx.Annotate(
			NewRentalClient,
			fx.As(new(usecase.UserDirectory)),
			fx.As(new(usecase.ReservationWriter)),
			fx.As(new(usecase.ReservationReader)),
		),
		NewCredentialVerifier,
		NewConfirmationMailer,
	),
)

func NewCarsClient(cfg config.Config) *carsapi.Client {
	return carsapi.New(cfg.Upstream)
}

func NewRentalClient(cfg config.Config) *rentalapi.Client {
	return rentalapi.New(cfg.Upstream)
}

// NewCredentialVerifier is nil when no auth provider is configured; login
// then falls back to the rental API's demo accounts.
func NewCredentialVerifier(cfg config.Config) usecase.CredentialVerifier {
	if client := authapi.New(cfg.Upstream); client != nil {
		return client
	}
	return nil
}

// NewConfirmationMailer is nil when mail is disabled; confirmation then
// skips the email.
func NewConfirmationMailer(cfg config.Config) usecase.ConfirmationMailer {
	if mailer := notify.New(cfg.Mail); mailer != nil {
		return mailer
	}
	return nil
}
