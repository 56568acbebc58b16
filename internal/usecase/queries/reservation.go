package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"

	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationNotFound = system.ErrReservationNotFound

type ReservationQueries interface {
	GetByCode(ctx context.Context, code string) (*ReservationView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) GetByCode(ctx context.Context, code string) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, res, err := sys.FindReservation(code)
		if err != nil {
			return err
		}
		view = NewReservationView(h, res)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*ReservationView, error) {
	var views []*ReservationView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		reservations := h.Reservations()
		views = make([]*ReservationView, len(reservations))
		for i, res := range reservations {
			views[i] = NewReservationView(h, res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
