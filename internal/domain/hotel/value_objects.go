package hotel

import (
	"regexp"
	"strings"
	"unicode"

	"hotel-reservation/internal/pkg/errs"
)

const (
	MaxRooms        = 50
	DefaultModifier = 1.0
	MinModifier     = 0.5
	MaxModifier     = 1.5
)

var (
	ErrNameBlank             = errs.ErrNameBlank
	ErrNameInvalidChar       = errs.ErrNameInvalidChar
	ErrNameLeadingDigit      = errs.ErrNameLeadingDigit
	ErrRoomCountInvalid      = errs.ErrRoomCountInvalid
	ErrRoomLimitExceeded     = errs.ErrRoomLimitExceeded
	ErrBasePriceTooLow       = errs.ErrBasePriceTooLow
	ErrHasActiveReservations = errs.ErrHasActiveReservations
	ErrRoomUnavailable       = errs.ErrRoomUnavailable
	ErrRoomNotFound          = errs.Mark(errs.New("room not found in hotel"), errs.ErrNotFound)
	ErrReservationNotFound   = errs.Mark(errs.New("reservation not found in hotel"), errs.ErrNotFound)
)

var hotelNameRegex = regexp.MustCompile(`^[A-Za-z0-9\- ]+$`)

// Name is a validated hotel name. Uniqueness is checked by the registry.
type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return Name{}, ErrNameBlank
	}
	first := rune(name[0])
	if unicode.IsDigit(first) {
		return Name{}, ErrNameLeadingDigit
	}
	if !hotelNameRegex.MatchString(name) || !unicode.IsLetter(first) {
		return Name{}, ErrNameInvalidChar
	}
	return Name{value: name}, nil
}

func (n Name) String() string { return n.value }

// SameAs compares names case-insensitively.
func (n Name) SameAs(other Name) bool {
	return strings.EqualFold(n.value, other.value)
}
