package hotel

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
)

func (h *Hotel) CreateReservation(
	guestName string,
	checkIn, checkOut int,
	r *room.Room,
	discountCode string,
) (*reservation.Reservation, error) {
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	guest, err := reservation.NewGuestName(guestName)
	if err != nil {
		return nil, err
	}
	if r == nil || !h.owns(r) {
		return nil, ErrRoomNotFound
	}
	if !r.IsAvailable(stay.CheckIn(), stay.CheckOut()) {
		return nil, errs.Wrapf(ErrRoomUnavailable, "room %s days %d-%d", r.Name(), checkIn, checkOut)
	}

	res := reservation.NewReservation(
		h.id,
		r.Spec(),
		guest,
		stay,
		reservation.NewDiscountCode(discountCode),
		h.quoterFor(r),
	)
	r.AddReservation(res)
	h.reservations = append(h.reservations, res)
	return res, nil
}

// CancelReservation removes the reservation only when a structurally equal
// entry exists in both the room's and the hotel's list.
func (h *Hotel) CancelReservation(res *reservation.Reservation) error {
	if res == nil {
		return ErrReservationNotFound
	}
	r, ok := h.RoomByID(res.RoomID())
	if !ok {
		return ErrRoomNotFound
	}
	roomIdx := r.FindEqual(res)
	if roomIdx < 0 {
		return ErrReservationNotFound
	}
	stored := r.Reservations()[roomIdx]
	hotelIdx := -1
	for i, existing := range h.reservations {
		if existing == stored {
			hotelIdx = i
			break
		}
	}
	if hotelIdx < 0 {
		return ErrReservationNotFound
	}

	r.RemoveReservationAt(roomIdx)
	h.reservations = append(h.reservations[:hotelIdx], h.reservations[hotelIdx+1:]...)
	return nil
}

// FindReservation returns the first reservation with the given code.
func (h *Hotel) FindReservation(code string) (*reservation.Reservation, bool) {
	for _, res := range h.reservations {
		if res.Code() == code {
			return res, true
		}
	}
	return nil, false
}

func (h *Hotel) owns(target *room.Room) bool {
	for _, r := range h.rooms {
		if r == target {
			return true
		}
	}
	return false
}
