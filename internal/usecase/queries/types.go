package queries

import (
	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type HotelView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	RoomCount          int       `json:"room_count"`
	AvailableRoomCount int       `json:"available_room_count"`
	ReservationCount   int       `json:"reservation_count"`
	BasePrice          float64   `json:"base_price"`
	ActualEarnings     float64   `json:"actual_earnings"`
}

type HotelSummaryView struct {
	HotelView
	RoomsByType map[string]int `json:"rooms_by_type"`
	Modifiers   []float64      `json:"modifiers"`
}

type RoomView struct {
	ID               uuid.UUID `json:"id"`
	HotelID          uuid.UUID `json:"hotel_id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	PriceMultiplier  float64   `json:"price_multiplier"`
	BasePrice        float64   `json:"base_price"`
	Status           string    `json:"status"`
	ReservationCount int       `json:"reservation_count"`
}

type CalendarDayView struct {
	Day    int     `json:"day"`
	Booked bool    `json:"booked"`
	Price  float64 `json:"price"`
}

type RoomCalendarView struct {
	Room *RoomView         `json:"room"`
	Days []CalendarDayView `json:"days"`
}

type PriceModifierView struct {
	Day      int     `json:"day"`
	Modifier float64 `json:"modifier"`
}

type ReservationView struct {
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
	DiscountCode    string    `json:"discount_code"`
	DiscountOutcome string    `json:"discount_outcome"`
	TotalPrice      float64   `json:"total_price"`
}

func NewHotelView(h *hotel.Hotel) *HotelView {
	return &HotelView{
		ID:                 h.ID(),
		Name:               h.Name().String(),
		RoomCount:          h.RoomCount(),
		AvailableRoomCount: h.AvailableRoomCount(),
		ReservationCount:   len(h.Reservations()),
		BasePrice:          h.BasePrice(),
		ActualEarnings:     h.ActualEarnings(),
	}
}

func NewHotelSummaryView(h *hotel.Hotel) *HotelSummaryView {
	byType := make(map[string]int)
	for t, n := range h.RoomCountByType() {
		byType[t.String()] = n
	}
	return &HotelSummaryView{
		HotelView:   *NewHotelView(h),
		RoomsByType: byType,
		Modifiers:   h.DatePriceModifiers(),
	}
}

func NewRoomView(hotelID uuid.UUID, r *room.Room) *RoomView {
	return &RoomView{
		ID:               r.ID(),
		HotelID:          hotelID,
		Name:             r.Name(),
		Type:             r.Type().String(),
		PriceMultiplier:  r.Type().PriceMultiplier(),
		BasePrice:        r.BasePrice(),
		Status:           r.Status().String(),
		ReservationCount: len(r.Reservations()),
	}
}

func NewRoomViews(hotelID uuid.UUID, rooms []*room.Room) []*RoomView {
	out := make([]*RoomView, len(rooms))
	for i, r := range rooms {
		out[i] = NewRoomView(hotelID, r)
	}
	return out
}

// NewReservationView reports the nightly rate before date modifiers and discounts.
func NewReservationView(h *hotel.Hotel, res *reservation.Reservation) *ReservationView {
	v := &ReservationView{
		Code:            res.Code(),
		HotelID:         h.ID(),
		HotelName:       h.Name().String(),
		RoomID:          res.RoomID(),
		RoomName:        res.RoomName(),
		GuestName:       res.GuestName().String(),
		CheckIn:         res.CheckIn(),
		CheckOut:        res.CheckOut(),
		Nights:          res.Stay().Nights(),
		DiscountCode:    res.DiscountCode().String(),
		DiscountOutcome: res.DiscountOutcome().String(),
		TotalPrice:      res.TotalPrice(),
	}
	if r, ok := h.RoomByID(res.RoomID()); ok {
		v.RoomType = r.Type().String()
		v.PricePerNight = r.BasePrice() * r.Type().PriceMultiplier()
	}
	return v
}
