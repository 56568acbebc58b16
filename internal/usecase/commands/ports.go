package commands

import (
	"log/slog"

	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// Command inputs are plain values so handlers never pass domain types in.
type CreateHotelInput struct {
	Name string
}

type RenameHotelInput struct {
	Name string
}

type UpdateBasePriceInput struct {
	BasePrice float64
}

type SetDatePriceModifierInput struct {
	Day      int
	Modifier float64
}

type ProvisionRoomsInput struct {
	Count int
	Type  string
}

type RemoveRoomsInput struct {
	RoomIDs []uuid.UUID
}

type CreateReservationInput struct {
	GuestName    string
	CheckIn      int
	CheckOut     int
	RoomID       uuid.UUID
	DiscountCode string
}

func logRejected(op string, err error, attrs ...any) {
	args := append([]any{
		"operation", op,
		"reason", errs.ReasonOf(err).String(),
		"error", err.Error(),
	}, attrs...)
	slog.Warn("command rejected", args...)
}
