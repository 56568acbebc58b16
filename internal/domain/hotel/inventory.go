package hotel

import (
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
)

// ProvisionRooms appends count rooms of one type. The call fails as a whole
// if the hotel would end up with more than MaxRooms.
func (h *Hotel) ProvisionRooms(count int, t room.Type) ([]*room.Room, error) {
	if !t.IsValid() {
		return nil, room.ErrInvalidRoomType
	}
	if count <= 0 {
		return nil, ErrRoomCountInvalid
	}
	existing := len(h.rooms)
	if existing+count > MaxRooms {
		return nil, errs.Wrapf(ErrRoomLimitExceeded, "%d existing + %d requested > %d", existing, count, MaxRooms)
	}

	created := make([]*room.Room, 0, count)
	number := existing
	for i := 0; i < count; i++ {
		number++
		name := room.GenerateName(number, t)
		// after removals a generated name can already be in use
		for h.nameInUse(name) {
			number++
			name = room.GenerateName(number, t)
		}
		r := room.NewRoom(name, t)
		h.rooms = append(h.rooms, r)
		created = append(created, r)
	}
	return created, nil
}

func (h *Hotel) nameInUse(name string) bool {
	_, ok := h.RoomByName(name)
	return ok
}

// RemoveRooms removes the requested rooms that have no reservations and
// returns exactly those. Booked rooms and rooms of other hotels are skipped.
func (h *Hotel) RemoveRooms(rooms []*room.Room) []*room.Room {
	removed := make([]*room.Room, 0, len(rooms))
	for _, target := range rooms {
		if target == nil || target.HasReservations() {
			continue
		}
		for i, r := range h.rooms {
			if r == target {
				h.rooms = append(h.rooms[:i], h.rooms[i+1:]...)
				removed = append(removed, target)
				break
			}
		}
	}
	return removed
}

// UpdateBasePrice sets one base price for every room.
func (h *Hotel) UpdateBasePrice(newPrice float64) error {
	if h.HasReservations() {
		return ErrHasActiveReservations
	}
	if newPrice < room.MinBasePrice {
		return errs.Wrapf(ErrBasePriceTooLow, "%.2f < %.2f", newPrice, room.MinBasePrice)
	}
	for _, r := range h.rooms {
		r.SetBasePrice(newPrice)
	}
	return nil
}
