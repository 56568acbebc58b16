package bootstrap

import (
	"hotel-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	EngineModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
