package commands

//go:generate mockgen -source=hotel.go -destination=../../../tests/mock/commands/hotel.go -package=commandsmock

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type SetDatePriceModifierResult struct {
	Applied  bool
	Day      int
	Modifier float64
}

type HotelCommands interface {
	CreateHotel(ctx context.Context, in CreateHotelInput) (*queries.HotelView, error)
	RenameHotel(ctx context.Context, hotelID uuid.UUID, in RenameHotelInput) (*queries.HotelView, error)
	RemoveHotel(ctx context.Context, hotelID uuid.UUID) error
	UpdateBasePrice(ctx context.Context, hotelID uuid.UUID, in UpdateBasePriceInput) (*queries.HotelView, error)
	SetDatePriceModifier(ctx context.Context, hotelID uuid.UUID, in SetDatePriceModifierInput) (*SetDatePriceModifierResult, error)
}

type hotelUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewHotelCommands(uow shared.UnitOfWork) HotelCommands {
	return &hotelUseCaseImpl{uow: uow}
}

func (uc *hotelUseCaseImpl) CreateHotel(ctx context.Context, in CreateHotelInput) (*queries.HotelView, error) {
	var view *queries.HotelView
	err := uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.AddHotel(in.Name)
		if err != nil {
			return err
		}
		view = queries.NewHotelView(h)
		return nil
	})
	if err != nil {
		logRejected("create_hotel", err, "name", in.Name)
		return nil, errs.Wrap(err, "create hotel")
	}
	slog.Info("hotel created", "hotel_id", view.ID, "name", view.Name)
	return view, nil
}

func (uc *hotelUseCaseImpl) RenameHotel(ctx context.Context, hotelID uuid.UUID, in RenameHotelInput) (*queries.HotelView, error) {
	var view *queries.HotelView
	err := uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		if err := sys.RenameHotel(in.Name, h); err != nil {
			return err
		}
		view = queries.NewHotelView(h)
		return nil
	})
	if err != nil {
		logRejected("rename_hotel", err, "hotel_id", hotelID, "name", in.Name)
		return nil, errs.Wrap(err, "rename hotel")
	}
	slog.Info("hotel renamed", "hotel_id", hotelID, "name", view.Name)
	return view, nil
}

func (uc *hotelUseCaseImpl) RemoveHotel(ctx context.Context, hotelID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		return sys.RemoveHotel(h)
	})
	if err != nil {
		logRejected("remove_hotel", err, "hotel_id", hotelID)
		return errs.Wrap(err, "remove hotel")
	}
	slog.Info("hotel removed", "hotel_id", hotelID)
	return nil
}

func (uc *hotelUseCaseImpl) UpdateBasePrice(ctx context.Context, hotelID uuid.UUID, in UpdateBasePriceInput) (*queries.HotelView, error) {
	var view *queries.HotelView
	err := uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		if err := sys.UpdateBasePrice(h, in.BasePrice); err != nil {
			return err
		}
		view = queries.NewHotelView(h)
		return nil
	})
	if err != nil {
		logRejected("update_base_price", err, "hotel_id", hotelID, "base_price", in.BasePrice)
		return nil, errs.Wrap(err, "update base price")
	}
	slog.Info("base price updated", "hotel_id", hotelID, "base_price", in.BasePrice)
	return view, nil
}

// SetDatePriceModifier never fails on out-of-range input; the result reports
// whether the value was stored and the modifier now in effect.
func (uc *hotelUseCaseImpl) SetDatePriceModifier(ctx context.Context, hotelID uuid.UUID, in SetDatePriceModifierInput) (*SetDatePriceModifierResult, error) {
	var result *SetDatePriceModifierResult
	err := uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		applied := sys.SetDatePriceModifier(h, in.Day, in.Modifier)
		result = &SetDatePriceModifierResult{
			Applied:  applied,
			Day:      in.Day,
			Modifier: h.DatePriceModifier(in.Day),
		}
		return nil
	})
	if err != nil {
		logRejected("set_date_price_modifier", err, "hotel_id", hotelID)
		return nil, errs.Wrap(err, "set date price modifier")
	}
	if !result.Applied {
		slog.Debug("date price modifier ignored", "hotel_id", hotelID, "day", in.Day, "modifier", in.Modifier)
	}
	return result, nil
}
