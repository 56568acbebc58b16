//go:build unit || e2e

package builder

import (
	"fmt"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	GuestName    string
	CheckIn      int
	CheckOut     int
	RoomID       uuid.UUID
	RoomName     string
	DiscountCode string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		GuestName: "Ana",
		CheckIn:   1,
		CheckOut:  4,
		RoomID:    uuid.New(),
		RoomName:  "101S",
	}
}

// Build methods

// BuildDomain books room r of h. RoomID and RoomName are taken from r.
func (r *ReservationBuilder) BuildDomain(h *hotel.Hotel, rm *room.Room) (*reservation.Reservation, error) {
	return h.CreateReservation(r.GuestName, r.CheckIn, r.CheckOut, rm, r.DiscountCode)
}

func (r *ReservationBuilder) BuildInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		GuestName:    r.GuestName,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		RoomID:       r.RoomID,
		DiscountCode: r.DiscountCode,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	checkIn, checkOut := r.CheckIn, r.CheckOut
	req := reqdto.CreateReservationRequest{
		GuestName: r.GuestName,
		CheckIn:   &checkIn,
		CheckOut:  &checkOut,
		RoomID:    r.RoomID,
	}
	if r.DiscountCode != "" {
		code := r.DiscountCode
		req.DiscountCode = &code
	}
	return req
}

// BuildView prices the stay at the default base price with no modifiers.
func (r *ReservationBuilder) BuildView(hotelID uuid.UUID, hotelName string) *queries.ReservationView {
	nights := r.CheckOut - r.CheckIn
	outcome := reservation.DiscountNone
	if r.DiscountCode != "" {
		outcome = reservation.DiscountApplied
	}
	return &queries.ReservationView{
		Code:            fmt.Sprintf("%s%s%02d%02d", r.RoomName, r.GuestName[:1], r.CheckIn, r.CheckOut),
		HotelID:         hotelID,
		HotelName:       hotelName,
		RoomID:          r.RoomID,
		RoomName:        r.RoomName,
		RoomType:        room.TypeStandard.String(),
		PricePerNight:   room.DefaultBasePrice,
		GuestName:       r.GuestName,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Nights:          nights,
		DiscountCode:    r.DiscountCode,
		DiscountOutcome: outcome.String(),
		TotalPrice:      room.DefaultBasePrice * float64(nights),
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithGuestName(name string) *ReservationBuilder {
	r.GuestName = name
	return r
}

func (r *ReservationBuilder) WithStay(checkIn, checkOut int) *ReservationBuilder {
	r.CheckIn = checkIn
	r.CheckOut = checkOut
	return r
}

func (r *ReservationBuilder) WithRoom(rm *room.Room) *ReservationBuilder {
	r.RoomID = rm.ID()
	r.RoomName = rm.Name()
	return r
}

func (r *ReservationBuilder) WithRoomID(id uuid.UUID) *ReservationBuilder {
	r.RoomID = id
	return r
}

func (r *ReservationBuilder) WithDiscountCode(code string) *ReservationBuilder {
	r.DiscountCode = code
	return r
}
