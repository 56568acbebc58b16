package queries

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/room.go -package=queriesmock

import (
	"context"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRoomNotFound = hotel.ErrRoomNotFound

// RoomFilter narrows a room listing. A date window is only applied when both
// days are set; Available then selects free (true) or occupied (false) rooms.
type RoomFilter struct {
	Type      *string
	CheckIn   *int
	CheckOut  *int
	Available *bool
}

type RoomQueries interface {
	List(ctx context.Context, hotelID uuid.UUID, filter RoomFilter) ([]*RoomView, error)
	Calendar(ctx context.Context, hotelID, roomID uuid.UUID) (*RoomCalendarView, error)
}

type roomQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRoomQueries(uow shared.UnitOfWork) RoomQueries {
	return &roomQueriesImpl{uow: uow}
}

func (q *roomQueriesImpl) List(ctx context.Context, hotelID uuid.UUID, filter RoomFilter) ([]*RoomView, error) {
	var roomType *room.Type
	if filter.Type != nil {
		t, err := room.ParseType(*filter.Type)
		if err != nil {
			return nil, err
		}
		roomType = &t
	}

	var window *reservation.StayPeriod
	if filter.CheckIn != nil || filter.CheckOut != nil {
		if filter.CheckIn == nil || filter.CheckOut == nil {
			return nil, errs.Wrap(reservation.ErrDateRangeInvalid, "both check-in and check-out are required")
		}
		stay, err := reservation.NewStayPeriod(*filter.CheckIn, *filter.CheckOut)
		if err != nil {
			return nil, err
		}
		window = &stay
	}

	var views []*RoomView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}

		rooms := h.Rooms()
		if window != nil {
			wantAvailable := filter.Available == nil || *filter.Available
			if wantAvailable {
				rooms = sys.AvailableRooms(h, window.CheckIn(), window.CheckOut())
			} else {
				rooms = sys.UnavailableRooms(h, window.CheckIn(), window.CheckOut())
			}
		}
		if roomType != nil {
			rooms = keepType(rooms, *roomType)
		}
		views = NewRoomViews(h.ID(), rooms)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *roomQueriesImpl) Calendar(ctx context.Context, hotelID, roomID uuid.UUID) (*RoomCalendarView, error) {
	var view *RoomCalendarView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		r, ok := h.RoomByID(roomID)
		if !ok {
			return ErrRoomNotFound
		}

		days := make([]CalendarDayView, 0, reservation.LastDay)
		for d := reservation.FirstDay; d <= reservation.LastDay; d++ {
			days = append(days, CalendarDayView{
				Day:    d,
				Booked: r.IsBookedOn(d),
				Price:  h.PriceForRoomOnDate(r, d),
			})
		}
		view = &RoomCalendarView{Room: NewRoomView(h.ID(), r), Days: days}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func keepType(rooms []*room.Room, t room.Type) []*room.Room {
	out := make([]*room.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Type() == t {
			out = append(out, r)
		}
	}
	return out
}
