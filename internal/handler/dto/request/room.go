package request

import (
	"hotel-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProvisionRoomsRequest struct {
	Count int    `json:"count"`
	Type  string `json:"type" binding:"required"`
}

func (r *ProvisionRoomsRequest) ToInput() commands.ProvisionRoomsInput {
	return commands.ProvisionRoomsInput{Count: r.Count, Type: r.Type}
}

type RemoveRoomsRequest struct {
	RoomIDs []uuid.UUID `json:"room_ids" binding:"required"`
}

func (r *RemoveRoomsRequest) ToInput() commands.RemoveRoomsInput {
	return commands.RemoveRoomsInput{RoomIDs: r.RoomIDs}
}

// RoomListQuery binds the optional filters of the room listing.
type RoomListQuery struct {
	Type      *string `form:"type"`
	CheckIn   *int    `form:"check_in"`
	CheckOut  *int    `form:"check_out"`
	Available *bool   `form:"available"`
}
