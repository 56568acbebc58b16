package response

import (
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	HotelID          uuid.UUID `json:"hotel_id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	PriceMultiplier  float64   `json:"price_multiplier"`
	BasePrice        float64   `json:"base_price"`
	Status           string    `json:"status"`
	ReservationCount int       `json:"reservation_count"`
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		res[i] = copyView[RoomResponse](v)
	}
	return res
}

type CalendarDayResponse struct {
	Day    int     `json:"day"`
	Booked bool    `json:"booked"`
	Price  float64 `json:"price"`
}

type RoomCalendarResponse struct {
	Room *RoomResponse         `json:"room"`
	Days []CalendarDayResponse `json:"days"`
}

func FromRoomCalendarView(v *queries.RoomCalendarView) *RoomCalendarResponse {
	days := make([]CalendarDayResponse, len(v.Days))
	for i, d := range v.Days {
		days[i] = CalendarDayResponse(d)
	}
	return &RoomCalendarResponse{
		Room: copyView[RoomResponse](v.Room),
		Days: days,
	}
}
