package room

import (
	"strings"

	"hotel-reservation/internal/pkg/errs"
)

var ErrInvalidRoomType = errs.ErrRoomTypeInvalid

type Type string

const (
	TypeStandard  Type = "STANDARD"
	TypeDeluxe    Type = "DELUXE"
	TypeExecutive Type = "EXECUTIVE"
)

var multipliers = map[Type]float64{
	TypeStandard:  1.0,
	TypeDeluxe:    1.2,
	TypeExecutive: 1.35,
}

func AllTypes() []Type {
	return []Type{TypeStandard, TypeDeluxe, TypeExecutive}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}

func (t Type) PriceMultiplier() float64 {
	return multipliers[t]
}

func (t Type) Initial() string {
	if t == "" {
		return ""
	}
	return string(t)[:1]
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	_, ok := multipliers[t]
	return ok
}

type Status string

const (
	StatusAvailable   Status = "Available for booking"
	StatusFullyBooked Status = "Fully booked"
)

func (s Status) String() string {
	return string(s)
}
