package components

import (
	"hotel-reservation/internal/infra/uow"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewMemoryUoW,
	),
)
