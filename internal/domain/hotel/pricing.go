package hotel

import (
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
)

// SetDatePriceModifier ignores days outside 1-30 and modifiers outside
// [0.5, 1.5]. It reports whether the value was stored.
func (h *Hotel) SetDatePriceModifier(day int, modifier float64) bool {
	if day < reservation.FirstDay || day > reservation.LastDay {
		return false
	}
	if modifier < MinModifier || modifier > MaxModifier {
		return false
	}
	h.modifiers[day] = modifier
	return true
}

func (h *Hotel) DatePriceModifier(day int) float64 {
	if m, ok := h.modifiers[day]; ok {
		return m
	}
	return DefaultModifier
}

// DatePriceModifiers lists days 1-30 in order.
func (h *Hotel) DatePriceModifiers() []float64 {
	out := make([]float64, 0, reservation.LastDay)
	for d := reservation.FirstDay; d <= reservation.LastDay; d++ {
		out = append(out, h.DatePriceModifier(d))
	}
	return out
}

func (h *Hotel) PriceForRoomOnDate(r *room.Room, day int) float64 {
	return r.BasePrice() * h.DatePriceModifier(day) * r.Type().PriceMultiplier()
}

func (h *Hotel) quoterFor(r *room.Room) reservation.PriceQuoter {
	return reservation.PriceQuoterFunc(func(day int) float64 {
		return h.PriceForRoomOnDate(r, day)
	})
}
