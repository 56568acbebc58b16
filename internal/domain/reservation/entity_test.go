//go:build unit

package reservation_test

import (
	"testing"

	"hotel-reservation/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatRate(price float64) reservation.PriceQuoter {
	return reservation.PriceQuoterFunc(func(int) float64 { return price })
}

func newReservation(t *testing.T, guest string, checkIn, checkOut int, code string, quoter reservation.PriceQuoter) *reservation.Reservation {
	t.Helper()
	g, err := reservation.NewGuestName(guest)
	require.NoError(t, err)
	stay, err := reservation.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	room := reservation.RoomSpec{ID: uuid.New(), Name: "101S"}
	return reservation.NewReservation(uuid.New(), room, g, stay, reservation.NewDiscountCode(code), quoter)
}

func TestNewReservation(t *testing.T) {
	t.Run("sums the nightly prices", func(t *testing.T) {
		res := newReservation(t, "Ana", 1, 4, "", flatRate(1299.0))
		assert.InDelta(t, 3897.0, res.TotalPrice(), 1e-9)
		assert.Equal(t, reservation.DiscountNone, res.DiscountOutcome())
	})

	t.Run("prices each night separately", func(t *testing.T) {
		quoter := reservation.PriceQuoterFunc(func(day int) float64 { return float64(day) * 100 })
		res := newReservation(t, "Ana", 2, 5, "", quoter)
		assert.InDelta(t, 900.0, res.TotalPrice(), 1e-9)
	})

	t.Run("code is room name, initial and two-digit days", func(t *testing.T) {
		res := newReservation(t, "Ana", 1, 4, "", flatRate(100))
		assert.Equal(t, "101SA0104", res.Code())

		res = newReservation(t, "zed", 12, 25, "", flatRate(100))
		assert.Equal(t, "101SZ1225", res.Code())
	})

	t.Run("keeps the submitted code and stay", func(t *testing.T) {
		res := newReservation(t, "Ana", 14, 16, "PAYDAY", flatRate(100))
		assert.Equal(t, reservation.CodePayday, res.DiscountCode())
		assert.Equal(t, 14, res.CheckIn())
		assert.Equal(t, 16, res.CheckOut())
		assert.Equal(t, "101S", res.RoomName())
		assert.Equal(t, "Ana", res.GuestName().String())
	})
}

func TestReservationIsEqual(t *testing.T) {
	a := newReservation(t, "Ana", 1, 4, "", flatRate(100))
	b := newReservation(t, "Ana", 1, 4, "", flatRate(100))

	assert.True(t, a.IsEqual(a))
	assert.True(t, a.IsEqual(b), "structurally equal reservations match")
	assert.False(t, a.IsEqual(nil))

	other := newReservation(t, "Ana", 1, 5, "", flatRate(100))
	assert.False(t, a.IsEqual(other))

	pricier := newReservation(t, "Ana", 1, 4, "", flatRate(200))
	assert.False(t, a.IsEqual(pricier))
}
