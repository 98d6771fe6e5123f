package components

import (
	"rentacar/internal/handler"
	"rentacar/internal/handler/api"
	"rentacar/internal/handler/middleware"
	"rentacar/internal/pkg/config"
	"rentacar/internal/pkg/jwt"
	"rentacar/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewVehicleHandler,
		api.NewBookingHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	// Cookie lifetime follows the token lifetime the service was built with.
	return api.NewAuthHandler(authUseCase, cfg.Booking.Cookie, jwtService.TokenDuration())
}
