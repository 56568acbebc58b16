package response

import (
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	Code            string    `json:"code"`
	HotelID         uuid.UUID `json:"hotel_id"`
	HotelName       string    `json:"hotel_name"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomName        string    `json:"room_name"`
	RoomType        string    `json:"room_type"`
	PricePerNight   float64   `json:"price_per_night"`
	GuestName       string    `json:"guest_name"`
	CheckIn         int       `json:"check_in"`
	CheckOut        int       `json:"check_out"`
	Nights          int       `json:"nights"`
	DiscountCode    string    `json:"discount_code,omitempty"`
	DiscountOutcome string    `json:"discount_outcome"`
	TotalPrice      float64   `json:"total_price"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return copyView[ReservationResponse](v)
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}
