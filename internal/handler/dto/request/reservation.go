package request

import (
	"strings"

	"hotel-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestName    string    `json:"guest_name"`
	CheckIn      *int      `json:"check_in" binding:"required"`
	CheckOut     *int      `json:"check_out" binding:"required"`
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	DiscountCode *string   `json:"discount_code,omitempty"`
}

func (r *CreateReservationRequest) GetDiscountCode() string {
	if r.DiscountCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.DiscountCode)
}

func (r *CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		GuestName:    r.GuestName,
		CheckIn:      *r.CheckIn,
		CheckOut:     *r.CheckOut,
		RoomID:       r.RoomID,
		DiscountCode: r.GetDiscountCode(),
	}
}
