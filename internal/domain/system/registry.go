package system

import (
	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameDuplicate         = errs.ErrNameDuplicate
	ErrHasActiveReservations = errs.ErrHasActiveReservations
	ErrHotelNotFound         = errs.Mark(errs.New("hotel not found"), errs.ErrNotFound)
	ErrReservationNotFound   = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
)

// ReservationSystem is the top-level registry of hotels. It is not safe for
// concurrent use; callers serialize access.
type ReservationSystem struct {
	hotels []*hotel.Hotel
}

func NewReservationSystem() *ReservationSystem {
	return &ReservationSystem{}
}

func (s *ReservationSystem) AddHotel(name string) (*hotel.Hotel, error) {
	n, err := hotel.NewName(name)
	if err != nil {
		return nil, err
	}
	if s.nameTaken(n, nil) {
		return nil, errs.Wrapf(ErrNameDuplicate, "%q", n.String())
	}
	h := hotel.NewHotel(n)
	s.hotels = append(s.hotels, h)
	return h, nil
}

// RenameHotel checks the new name against the other hotels only, so a hotel
// may keep its name or change its case.
func (s *ReservationSystem) RenameHotel(newName string, h *hotel.Hotel) error {
	if !s.contains(h) {
		return ErrHotelNotFound
	}
	n, err := hotel.NewName(newName)
	if err != nil {
		return err
	}
	if s.nameTaken(n, h) {
		return errs.Wrapf(ErrNameDuplicate, "%q", n.String())
	}
	h.Rename(n)
	return nil
}

func (s *ReservationSystem) RemoveHotel(h *hotel.Hotel) error {
	idx := s.indexOf(h)
	if idx < 0 {
		return ErrHotelNotFound
	}
	if h.HasReservations() {
		return ErrHasActiveReservations
	}
	s.hotels = append(s.hotels[:idx], s.hotels[idx+1:]...)
	return nil
}

func (s *ReservationSystem) ProvisionRooms(h *hotel.Hotel, count int, t room.Type) ([]*room.Room, error) {
	if !s.contains(h) {
		return nil, ErrHotelNotFound
	}
	return h.ProvisionRooms(count, t)
}

func (s *ReservationSystem) RemoveRooms(h *hotel.Hotel, rooms []*room.Room) []*room.Room {
	if !s.contains(h) {
		return nil
	}
	return h.RemoveRooms(rooms)
}

func (s *ReservationSystem) UpdateBasePrice(h *hotel.Hotel, newPrice float64) error {
	if !s.contains(h) {
		return ErrHotelNotFound
	}
	return h.UpdateBasePrice(newPrice)
}

func (s *ReservationSystem) SetDatePriceModifier(h *hotel.Hotel, day int, modifier float64) bool {
	if !s.contains(h) {
		return false
	}
	return h.SetDatePriceModifier(day, modifier)
}

func (s *ReservationSystem) Hotels() []*hotel.Hotel {
	out := make([]*hotel.Hotel, len(s.hotels))
	copy(out, s.hotels)
	return out
}

func (s *ReservationSystem) HotelByID(id uuid.UUID) (*hotel.Hotel, error) {
	for _, h := range s.hotels {
		if h.ID() == id {
			return h, nil
		}
	}
	return nil, ErrHotelNotFound
}

// AvailableHotels lists hotels with at least one room that is not fully
// booked.
func (s *ReservationSystem) AvailableHotels() []*hotel.Hotel {
	out := make([]*hotel.Hotel, 0, len(s.hotels))
	for _, h := range s.hotels {
		if h.AvailableRoomCount() > 0 {
			out = append(out, h)
		}
	}
	return out
}

func (s *ReservationSystem) AvailableRooms(h *hotel.Hotel, checkIn, checkOut int) []*room.Room {
	return h.AvailableRooms(checkIn, checkOut)
}

func (s *ReservationSystem) UnavailableRooms(h *hotel.Hotel, checkIn, checkOut int) []*room.Room {
	return h.UnavailableRooms(checkIn, checkOut)
}

func (s *ReservationSystem) RoomsByType(h *hotel.Hotel, t room.Type) []*room.Room {
	return h.RoomsByType(t)
}

// FindReservation searches hotels in registry order and returns the first
// reservation carrying code.
func (s *ReservationSystem) FindReservation(code string) (*hotel.Hotel, *reservation.Reservation, error) {
	for _, h := range s.hotels {
		if res, ok := h.FindReservation(code); ok {
			return h, res, nil
		}
	}
	return nil, nil, ErrReservationNotFound
}

func (s *ReservationSystem) nameTaken(n hotel.Name, self *hotel.Hotel) bool {
	for _, h := range s.hotels {
		if h != self && h.Name().SameAs(n) {
			return true
		}
	}
	return false
}

func (s *ReservationSystem) contains(h *hotel.Hotel) bool {
	return s.indexOf(h) >= 0
}

func (s *ReservationSystem) indexOf(h *hotel.Hotel) int {
	for i, existing := range s.hotels {
		if existing == h {
			return i
		}
	}
	return -1
}
