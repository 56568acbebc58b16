package request

import (
	"hotel-reservation/internal/usecase/commands"
)

type CreateHotelRequest struct {
	Name string `json:"name"`
}

func (r *CreateHotelRequest) ToInput() commands.CreateHotelInput {
	return commands.CreateHotelInput{Name: r.Name}
}

// UpdateHotelRequest is a partial update; absent fields keep their value.
type UpdateHotelRequest struct {
	Name *string `json:"name"`
}

func (r *UpdateHotelRequest) ToInput(currentName string) commands.RenameHotelInput {
	if r.Name == nil {
		return commands.RenameHotelInput{Name: currentName}
	}
	return commands.RenameHotelInput{Name: *r.Name}
}

type UpdateBasePriceRequest struct {
	BasePrice *float64 `json:"base_price" binding:"required"`
}

func (r *UpdateBasePriceRequest) ToInput() commands.UpdateBasePriceInput {
	return commands.UpdateBasePriceInput{BasePrice: *r.BasePrice}
}

type SetPriceModifierRequest struct {
	Modifier *float64 `json:"modifier" binding:"required"`
}

func (r *SetPriceModifierRequest) ToInput(day int) commands.SetDatePriceModifierInput {
	return commands.SetDatePriceModifierInput{Day: day, Modifier: *r.Modifier}
}
