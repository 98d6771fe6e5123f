package bootstrap

import (
	"rentacar/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	StoreModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
