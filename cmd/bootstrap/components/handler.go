package components

import (
	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	hotel *api.HotelHandler,
	room *api.RoomHandler,
	reservation *api.ReservationHandler,
) handler.Handlers {
	return handler.Handlers{
		Hotel:       hotel,
		Room:        room,
		Reservation: reservation,
	}
}
