package commands

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/room.go -package=commandsmock

import (
	"context"
	"log/slog"

	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	ProvisionRooms(ctx context.Context, hotelID uuid.UUID, in ProvisionRoomsInput) ([]*queries.RoomView, error)
	RemoveRooms(ctx context.Context, hotelID uuid.UUID, in RemoveRoomsInput) ([]*queries.RoomView, error)
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomUseCaseImpl{uow: uow}
}

func (uc *roomUseCaseImpl) ProvisionRooms(ctx context.Context, hotelID uuid.UUID, in ProvisionRoomsInput) ([]*queries.RoomView, error) {
	roomType, err := room.ParseType(in.Type)
	if err != nil {
		logRejected("provision_rooms", err, "hotel_id", hotelID, "type", in.Type)
		return nil, err
	}

	var views []*queries.RoomView
	err = uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		created, err := sys.ProvisionRooms(h, in.Count, roomType)
		if err != nil {
			return err
		}
		views = queries.NewRoomViews(h.ID(), created)
		return nil
	})
	if err != nil {
		logRejected("provision_rooms", err, "hotel_id", hotelID, "count", in.Count, "type", in.Type)
		return nil, errs.Wrap(err, "provision rooms")
	}
	slog.Info("rooms provisioned", "hotel_id", hotelID, "count", len(views), "type", roomType.String())
	return views, nil
}

// RemoveRooms returns the rooms actually removed. Unknown IDs and rooms with
// reservations are skipped without error.
func (uc *roomUseCaseImpl) RemoveRooms(ctx context.Context, hotelID uuid.UUID, in RemoveRoomsInput) ([]*queries.RoomView, error) {
	var views []*queries.RoomView
	err := uc.uow.Within(ctx, func(_ context.Context, sys *system.ReservationSystem) error {
		h, err := sys.HotelByID(hotelID)
		if err != nil {
			return err
		}
		targets := make([]*room.Room, 0, len(in.RoomIDs))
		for _, id := range in.RoomIDs {
			if r, ok := h.RoomByID(id); ok {
				targets = append(targets, r)
			}
		}
		views = queries.NewRoomViews(h.ID(), sys.RemoveRooms(h, targets))
		return nil
	})
	if err != nil {
		logRejected("remove_rooms", err, "hotel_id", hotelID)
		return nil, errs.Wrap(err, "remove rooms")
	}
	slog.Info("rooms removed", "hotel_id", hotelID, "requested", len(in.RoomIDs), "removed", len(views))
	return views, nil
}
