//go:build unit

package reservation_test

import (
	"testing"

	"hotel-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestDiscountCodes(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		checkIn     int
		checkOut    int
		wantTotal   float64
		wantOutcome reservation.DiscountOutcome
	}{
		{name: "no code", code: "", checkIn: 1, checkOut: 6, wantTotal: 500, wantOutcome: reservation.DiscountNone},
		{name: "blank code", code: "   ", checkIn: 1, checkOut: 6, wantTotal: 500, wantOutcome: reservation.DiscountNone},
		{name: "unknown code", code: "FREE", checkIn: 1, checkOut: 6, wantTotal: 500, wantOutcome: reservation.DiscountInvalid},
		{name: "codes are case sensitive", code: "payday", checkIn: 14, checkOut: 16, wantTotal: 200, wantOutcome: reservation.DiscountInvalid},

		{name: "employee discount", code: "I_WORK_HERE", checkIn: 1, checkOut: 6, wantTotal: 450, wantOutcome: reservation.DiscountApplied},
		{name: "employee discount on one night", code: "I_WORK_HERE", checkIn: 3, checkOut: 4, wantTotal: 90, wantOutcome: reservation.DiscountApplied},

		{name: "stay four get one with five nights", code: "STAY4_GET1", checkIn: 1, checkOut: 6, wantTotal: 400, wantOutcome: reservation.DiscountApplied},
		{name: "stay four get one with four nights", code: "STAY4_GET1", checkIn: 1, checkOut: 5, wantTotal: 400, wantOutcome: reservation.DiscountNotEligible},

		{name: "payday covering the 15th", code: "PAYDAY", checkIn: 14, checkOut: 16, wantTotal: 186, wantOutcome: reservation.DiscountApplied},
		{name: "payday starting on the 30th", code: "PAYDAY", checkIn: 30, checkOut: 31, wantTotal: 93, wantOutcome: reservation.DiscountApplied},
		{name: "payday leaving on the 15th", code: "PAYDAY", checkIn: 10, checkOut: 15, wantTotal: 500, wantOutcome: reservation.DiscountNotEligible},
		{name: "payday without a payday", code: "PAYDAY", checkIn: 16, checkOut: 20, wantTotal: 400, wantOutcome: reservation.DiscountNotEligible},
		{name: "code with surrounding spaces", code: " PAYDAY ", checkIn: 15, checkOut: 16, wantTotal: 93, wantOutcome: reservation.DiscountApplied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newReservation(t, "Ana", tt.checkIn, tt.checkOut, tt.code, flatRate(100))
			assert.InDelta(t, tt.wantTotal, res.TotalPrice(), 1e-9)
			assert.Equal(t, tt.wantOutcome, res.DiscountOutcome())
		})
	}
}

func TestStayFourGetOneUsesFirstNightPrice(t *testing.T) {
	quoter := reservation.PriceQuoterFunc(func(day int) float64 {
		if day == 10 {
			return 500
		}
		return 100
	})
	res := newReservation(t, "Ana", 10, 15, "STAY4_GET1", quoter)
	assert.InDelta(t, 400.0, res.TotalPrice(), 1e-9)
}
