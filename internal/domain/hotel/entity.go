package hotel

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"

	"github.com/google/uuid"
)

type Hotel struct {
	id           uuid.UUID
	name         Name
	rooms        []*room.Room
	reservations []*reservation.Reservation
	modifiers    map[int]float64
}

func NewHotel(name Name) *Hotel {
	modifiers := make(map[int]float64, reservation.LastDay)
	for d := reservation.FirstDay; d <= reservation.LastDay; d++ {
		modifiers[d] = DefaultModifier
	}
	return &Hotel{
		id:        uuid.New(),
		name:      name,
		modifiers: modifiers,
	}
}

func (h *Hotel) Rename(name Name) {
	h.name = name
}

func (h *Hotel) ID() uuid.UUID { return h.id }
func (h *Hotel) Name() Name    { return h.name }

func (h *Hotel) Rooms() []*room.Room {
	out := make([]*room.Room, len(h.rooms))
	copy(out, h.rooms)
	return out
}

func (h *Hotel) Reservations() []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(h.reservations))
	copy(out, h.reservations)
	return out
}

func (h *Hotel) RoomCount() int { return len(h.rooms) }

func (h *Hotel) HasReservations() bool {
	return len(h.reservations) > 0
}

func (h *Hotel) RoomByID(id uuid.UUID) (*room.Room, bool) {
	for _, r := range h.rooms {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

func (h *Hotel) RoomByName(name string) (*room.Room, bool) {
	for _, r := range h.rooms {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// BasePrice is the first room's base price, or 0 for a hotel without rooms.
func (h *Hotel) BasePrice() float64 {
	if len(h.rooms) == 0 {
		return 0
	}
	return h.rooms[0].BasePrice()
}

func (h *Hotel) ActualEarnings() float64 {
	var total float64
	for _, res := range h.reservations {
		total += res.TotalPrice()
	}
	return total
}

func (h *Hotel) AvailableRoomCount() int {
	n := 0
	for _, r := range h.rooms {
		if r.Status() != room.StatusFullyBooked {
			n++
		}
	}
	return n
}

func (h *Hotel) RoomCountByType() map[room.Type]int {
	counts := make(map[room.Type]int, len(room.AllTypes()))
	for _, t := range room.AllTypes() {
		counts[t] = 0
	}
	for _, r := range h.rooms {
		counts[r.Type()]++
	}
	return counts
}

func (h *Hotel) RoomsByType(t room.Type) []*room.Room {
	return h.filterRooms(func(r *room.Room) bool { return r.Type() == t })
}

func (h *Hotel) AvailableRooms(checkIn, checkOut int) []*room.Room {
	return h.filterRooms(func(r *room.Room) bool { return r.IsAvailable(checkIn, checkOut) })
}

func (h *Hotel) UnavailableRooms(checkIn, checkOut int) []*room.Room {
	return h.filterRooms(func(r *room.Room) bool { return !r.IsAvailable(checkIn, checkOut) })
}

func (h *Hotel) filterRooms(keep func(*room.Room) bool) []*room.Room {
	out := make([]*room.Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
