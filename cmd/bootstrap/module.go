package bootstrap

import (
	"rental-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.InfraModule,
	StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
