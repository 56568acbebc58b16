package reservation

import (
	"fmt"

	"github.com/google/uuid"
)

// RoomSpec is the part of a room a reservation keeps. The room itself owns
// the reservation, so only its identity is held here.
type RoomSpec struct {
	ID   uuid.UUID
	Name string
}

// PriceQuoter prices a single night of one room. The owning hotel provides it
// because the date modifiers live there.
type PriceQuoter interface {
	PriceOnDate(day int) float64
}

type PriceQuoterFunc func(day int) float64

func (f PriceQuoterFunc) PriceOnDate(day int) float64 { return f(day) }

type Reservation struct {
	code            string
	hotelID         uuid.UUID
	room            RoomSpec
	guest           GuestName
	stay            StayPeriod
	discountCode    DiscountCode
	discountOutcome DiscountOutcome
	totalPrice      float64
}

// NewReservation computes the price and code once. Inputs are expected to be
// validated by the hotel.
func NewReservation(
	hotelID uuid.UUID,
	room RoomSpec,
	guest GuestName,
	stay StayPeriod,
	code DiscountCode,
	quoter PriceQuoter,
) *Reservation {
	var total float64
	for _, d := range stay.Days() {
		total += quoter.PriceOnDate(d)
	}
	firstNight := quoter.PriceOnDate(stay.CheckIn())
	total, outcome := code.Apply(total, firstNight, stay)

	return &Reservation{
		code:            GenerateCode(room.Name, guest, stay),
		hotelID:         hotelID,
		room:            room,
		guest:           guest,
		stay:            stay,
		discountCode:    code,
		discountOutcome: outcome,
		totalPrice:      total,
	}
}

// GenerateCode builds room name + guest initial + two-digit check-in and
// check-out. Two stays of the same room, initial and dates share a code.
func GenerateCode(roomName string, guest GuestName, stay StayPeriod) string {
	return fmt.Sprintf("%s%s%02d%02d", roomName, guest.Initial(), stay.CheckIn(), stay.CheckOut())
}

// IsEqual compares reservations field by field; cancellation relies on it
// instead of pointer identity.
func (r *Reservation) IsEqual(other *Reservation) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.stay == other.stay &&
		r.totalPrice == other.totalPrice &&
		r.guest == other.guest &&
		r.room.Name == other.room.Name &&
		r.code == other.code
}

func (r *Reservation) Code() string                     { return r.code }
func (r *Reservation) HotelID() uuid.UUID               { return r.hotelID }
func (r *Reservation) RoomID() uuid.UUID                { return r.room.ID }
func (r *Reservation) RoomName() string                 { return r.room.Name }
func (r *Reservation) GuestName() GuestName             { return r.guest }
func (r *Reservation) Stay() StayPeriod                 { return r.stay }
func (r *Reservation) CheckIn() int                     { return r.stay.CheckIn() }
func (r *Reservation) CheckOut() int                    { return r.stay.CheckOut() }
func (r *Reservation) DiscountCode() DiscountCode       { return r.discountCode }
func (r *Reservation) DiscountOutcome() DiscountOutcome { return r.discountOutcome }
func (r *Reservation) TotalPrice() float64              { return r.totalPrice }
