package queries

//go:generate mockgen -source=hotel.go -destination=../../../tests/mock/queries/hotel.go -package=queriesmock

import (
	"context"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelQueries interface {
	List(ctx context.Context, availableOnly bool) ([]*HotelView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*HotelSummaryView, error)
	PriceModifiers(ctx context.Context, id uuid.UUID) ([]*PriceModifierView, error)
}

type hotelQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewHotelQueries(uow shared.UnitOfWork) HotelQueries {
	return &hotelQueriesImpl{uow: uow}
}

func (q *hotelQueriesImpl) List(ctx context.Context, availableOnly bool) ([]*HotelView, error) {
	var views []*HotelView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		hotels := sys.Hotels()
		if availableOnly {
			hotels = sys.AvailableHotels()
		}
		views = make([]*HotelView, len(hotels))
		for i, h := range hotels {
			views[i] = NewHotelView(h)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelSummaryView, error) {
	var view *HotelSummaryView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(id)
		if err != nil {
			return err
		}
		view = NewHotelSummaryView(h)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *hotelQueriesImpl) PriceModifiers(ctx context.Context, id uuid.UUID) ([]*PriceModifierView, error) {
	var views []*PriceModifierView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(id)
		if err != nil {
			return err
		}
		views = make([]*PriceModifierView, 0, reservation.LastDay)
		for d := reservation.FirstDay; d <= reservation.LastDay; d++ {
			views = append(views, &PriceModifierView{Day: d, Modifier: h.DatePriceModifier(d)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
