package reservation

import "strings"

type DiscountCode string

const (
	CodeEmployee DiscountCode = "I_WORK_HERE"
	CodeStayFour DiscountCode = "STAY4_GET1"
	CodePayday   DiscountCode = "PAYDAY"
)

const (
	employeeRate      = 0.90
	paydayRate        = 0.93
	stayFourMinNights = 5
)

var paydays = []int{15, 30}

// DiscountOutcome tells the caller what happened to the submitted code.
type DiscountOutcome string

const (
	DiscountNone        DiscountOutcome = "none"
	DiscountInvalid     DiscountOutcome = "invalid"
	DiscountApplied     DiscountOutcome = "applied"
	DiscountNotEligible DiscountOutcome = "not_eligible"
)

func (o DiscountOutcome) String() string {
	return string(o)
}

func NewDiscountCode(code string) DiscountCode {
	return DiscountCode(strings.TrimSpace(code))
}

func (c DiscountCode) String() string { return string(c) }

// Apply returns the discounted total. firstNight is the price of the
// check-in day, which STAY4_GET1 gives away.
func (c DiscountCode) Apply(total, firstNight float64, stay StayPeriod) (float64, DiscountOutcome) {
	switch c {
	case "":
		return total, DiscountNone
	case CodeEmployee:
		return total * employeeRate, DiscountApplied
	case CodeStayFour:
		if stay.Nights() < stayFourMinNights {
			return total, DiscountNotEligible
		}
		return total - firstNight, DiscountApplied
	case CodePayday:
		for _, d := range paydays {
			if stay.Covers(d) {
				return total * paydayRate, DiscountApplied
			}
		}
		return total, DiscountNotEligible
	default:
		return total, DiscountInvalid
	}
}
