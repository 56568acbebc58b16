package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationResult struct {
	Reservation *queries.ReservationView
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, hotelID uuid.UUID, in CreateReservationInput) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, code string) error
}

type reservationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewReservationCommands(uow shared.UnitOfWork) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow}
}

func (uc *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	hotelID uuid.UUID,
	in CreateReservationInput,
) (*CreateReservationResult, error) {
	var view *queries.ReservationView
	err := uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		r, ok := h.RoomByID(in.RoomID)
		if !ok {
			return hotel.ErrRoomNotFound
		}
		res, err := h.CreateReservation(in.GuestName, in.CheckIn, in.CheckOut, r, in.DiscountCode)
		if err != nil {
			return err
		}
		view = queries.NewReservationView(h, res)
		return nil
	})
	if err != nil {
		logRejected("create_reservation", err,
			"hotel_id", hotelID,
			"room_id", in.RoomID,
			"check_in", in.CheckIn,
			"check_out", in.CheckOut)
		return nil, errs.Wrap(err, "create reservation")
	}

	slog.Info("reservation created",
		"code", view.Code,
		"hotel_id", hotelID,
		"room", view.RoomName,
		"total_price", view.TotalPrice,
		"discount", view.DiscountOutcome)
	return &CreateReservationResult{Reservation: view}, nil
}

// CancelReservation cancels the first reservation carrying code, searching
// hotels in registry order.
func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, code string) error {
	err := uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, res, err := sys.FindReservation(code)
		if err != nil {
			return err
		}
		return h.CancelReservation(res)
	})
	if err != nil {
		logRejected("cancel_reservation", err, "code", code)
		return errs.Wrap(err, "cancel reservation")
	}
	slog.Info("reservation canceled", "code", code)
	return nil
}
