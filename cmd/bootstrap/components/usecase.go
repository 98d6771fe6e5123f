package components

import (
	"rentacar/internal/infra/store"
	"rentacar/internal/infra/vehiclecache"
	"rentacar/internal/pkg/clock"
	"rentacar/internal/pkg/config"
	"rentacar/internal/pkg/jwt"
	"rentacar/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewCatalogUseCase,
		NewAuthUseCase,
		NewBookingUseCase,
		usecase.NewReservationsUseCase,
	),
)

func NewCatalogUseCase(source usecase.VehicleSource, cache vehiclecache.Cache, cfg config.Config) usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(source, cache, cfg.Booking.PageSize)
}

func NewAuthUseCase(
	verifier usecase.CredentialVerifier,
	directory usecase.UserDirectory,
	sessions store.SessionStore,
	jwtService *jwt.Service,
	clk clock.Clock,
) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(verifier, directory, sessions, jwtService, clk)
}

func NewBookingUseCase(
	catalog usecase.CatalogUseCase,
	drafts store.DraftStore,
	reservations usecase.ReservationWriter,
	mailer usecase.ConfirmationMailer,
	clk clock.Clock,
	cfg config.Config,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(catalog, drafts, reservations, mailer, clk, cfg.Booking)
}
