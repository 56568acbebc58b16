package response

import (
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	RoomCount          int       `json:"room_count"`
	AvailableRoomCount int       `json:"available_room_count"`
	ReservationCount   int       `json:"reservation_count"`
	BasePrice          float64   `json:"base_price"`
	ActualEarnings     float64   `json:"actual_earnings"`
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	return copyView[HotelResponse](v)
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	res := make([]*HotelResponse, len(views))
	for i, v := range views {
		res[i] = FromHotelView(v)
	}
	return res
}

type HotelSummaryResponse struct {
	HotelResponse
	RoomsByType map[string]int `json:"rooms_by_type"`
	Modifiers   []float64      `json:"modifiers"`
}

func FromHotelSummaryView(v *queries.HotelSummaryView) *HotelSummaryResponse {
	return &HotelSummaryResponse{
		HotelResponse: *FromHotelView(&v.HotelView),
		RoomsByType:   v.RoomsByType,
		Modifiers:     v.Modifiers,
	}
}

type PriceModifierResponse struct {
	Day      int     `json:"day"`
	Modifier float64 `json:"modifier"`
}

func FromPriceModifierViews(views []*queries.PriceModifierView) []*PriceModifierResponse {
	res := make([]*PriceModifierResponse, len(views))
	for i, v := range views {
		res[i] = copyView[PriceModifierResponse](v)
	}
	return res
}

type SetPriceModifierResponse struct {
	Applied  bool    `json:"applied"`
	Day      int     `json:"day"`
	Modifier float64 `json:"modifier"`
}

func FromSetDatePriceModifierResult(r *commands.SetDatePriceModifierResult) *SetPriceModifierResponse {
	return copyView[SetPriceModifierResponse](r)
}
