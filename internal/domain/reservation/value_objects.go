package reservation

import (
	"regexp"
	"strings"

	"hotel-reservation/internal/pkg/errs"
)

const (
	FirstDay = 1
	LastDay  = 30
	// CheckOutLimit is the latest check-out morning; it is never a priced night.
	CheckOutLimit = LastDay + 1
)

var (
	ErrDateRangeInvalid = errs.ErrDateRangeInvalid
	ErrGuestNameInvalid = errs.ErrGuestNameInvalid
)

// StayPeriod is the half-open day interval [checkIn, checkOut).
type StayPeriod struct {
	checkIn  int
	checkOut int
}

func NewStayPeriod(checkIn, checkOut int) (StayPeriod, error) {
	if checkIn < FirstDay || checkIn > LastDay {
		return StayPeriod{}, errs.Wrapf(ErrDateRangeInvalid, "check-in day %d outside %d-%d", checkIn, FirstDay, LastDay)
	}
	if checkOut < FirstDay+1 || checkOut > CheckOutLimit {
		return StayPeriod{}, errs.Wrapf(ErrDateRangeInvalid, "check-out day %d outside %d-%d", checkOut, FirstDay+1, CheckOutLimit)
	}
	if checkIn >= checkOut {
		return StayPeriod{}, errs.Wrapf(ErrDateRangeInvalid, "check-in day %d is not before check-out day %d", checkIn, checkOut)
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p StayPeriod) CheckIn() int  { return p.checkIn }
func (p StayPeriod) CheckOut() int { return p.checkOut }

func (p StayPeriod) Nights() int {
	return p.checkOut - p.checkIn
}

// Overlaps reports whether [checkIn, checkOut) intersects p.
func (p StayPeriod) Overlaps(checkIn, checkOut int) bool {
	return checkIn < p.checkOut && checkOut > p.checkIn
}

// Covers reports whether the night of day is part of the stay.
func (p StayPeriod) Covers(day int) bool {
	return p.checkIn <= day && day < p.checkOut
}

func (p StayPeriod) Days() []int {
	days := make([]int, 0, p.Nights())
	for d := p.checkIn; d < p.checkOut; d++ {
		days = append(days, d)
	}
	return days
}

var guestNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*$`)

type GuestName struct {
	value string
}

func NewGuestName(name string) (GuestName, error) {
	name = strings.TrimSpace(name)
	if !guestNameRegex.MatchString(name) {
		return GuestName{}, ErrGuestNameInvalid
	}
	return GuestName{value: name}, nil
}

func (g GuestName) String() string { return g.value }

func (g GuestName) Initial() string {
	if g.value == "" {
		return ""
	}
	return strings.ToUpper(g.value[:1])
}
