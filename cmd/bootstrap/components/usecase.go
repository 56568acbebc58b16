package components

import (
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHotelCommands,
		commands.NewRoomCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelQueries,
		queries.NewRoomQueries,
		queries.NewReservationQueries,
	),
)
