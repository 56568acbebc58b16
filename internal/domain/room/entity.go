package room

import (
	"strconv"

	"hotel-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	DefaultBasePrice = 1299.0
	MinBasePrice     = 100.0
)

type Room struct {
	id           uuid.UUID
	name         string
	roomType     Type
	basePrice    float64
	status       Status
	reservations []*reservation.Reservation
}

func NewRoom(name string, roomType Type) *Room {
	return &Room{
		id:        uuid.New(),
		name:      name,
		roomType:  roomType,
		basePrice: DefaultBasePrice,
		status:    StatusAvailable,
	}
}

// GenerateName numbers rooms ten per floor: the 1st room is 101, the 10th is
// 110 and the 11th is 201. The type initial is appended.
func GenerateName(roomNumber int, roomType Type) string {
	floor := (roomNumber-1)/10 + 1
	position := roomNumber % 10
	if position == 0 {
		position = 10
	}
	return strconv.Itoa(floor*100+position) + roomType.Initial()
}

// IsAvailable reports whether [checkIn, checkOut) overlaps no reservation.
func (r *Room) IsAvailable(checkIn, checkOut int) bool {
	for _, res := range r.reservations {
		if res.Stay().Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}

// IsBookedOn reports whether the night of day is taken.
func (r *Room) IsBookedOn(day int) bool {
	return !r.IsAvailable(day, day+1)
}

// RefreshStatus must run after every change to the reservation list.
func (r *Room) RefreshStatus() {
	for d := reservation.FirstDay; d <= reservation.LastDay; d++ {
		if r.IsAvailable(d, d+1) {
			r.status = StatusAvailable
			return
		}
	}
	r.status = StatusFullyBooked
}

// SetBasePrice does not check invariants; the hotel does.
func (r *Room) SetBasePrice(p float64) {
	r.basePrice = p
}

func (r *Room) AddReservation(res *reservation.Reservation) {
	r.reservations = append(r.reservations, res)
	r.RefreshStatus()
}

// FindEqual returns the index of the first structurally equal reservation,
// or -1.
func (r *Room) FindEqual(res *reservation.Reservation) int {
	for i, existing := range r.reservations {
		if existing.IsEqual(res) {
			return i
		}
	}
	return -1
}

func (r *Room) RemoveReservationAt(i int) {
	r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
	r.RefreshStatus()
}

func (r *Room) HasReservations() bool {
	return len(r.reservations) > 0
}

func (r *Room) Spec() reservation.RoomSpec {
	return reservation.RoomSpec{ID: r.id, Name: r.name}
}

func (r *Room) ID() uuid.UUID { return r.id }
func (r *Room) Name() string  { return r.name }
func (r *Room) Type() Type    { return r.roomType }

func (r *Room) BasePrice() float64 { return r.basePrice }
func (r *Room) Status() Status     { return r.status }

// Reservations returns a copy in insertion order.
func (r *Room) Reservations() []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}
