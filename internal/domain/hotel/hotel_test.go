//go:build unit

package hotel_test

import (
	"testing"

	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "simple", input: "Plaza", want: "Plaza"},
		{name: "spaces digits and hyphen", input: "My Hotel-2", want: "My Hotel-2"},
		{name: "trimmed", input: "  Plaza ", want: "Plaza"},
		{name: "blank", input: "   ", errIs: hotel.ErrNameBlank},
		{name: "leading digit", input: "1Hotel", errIs: hotel.ErrNameLeadingDigit},
		{name: "punctuation", input: "Hotel!", errIs: hotel.ErrNameInvalidChar},
		{name: "leading hyphen", input: "-Plaza", errIs: hotel.ErrNameInvalidChar},
		{name: "underscore", input: "Grand_Hotel", errIs: hotel.ErrNameInvalidChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hotel.NewName(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("names compare case-insensitively", func(t *testing.T) {
		a, _ := hotel.NewName("My Hotel")
		b, _ := hotel.NewName("my hotel")
		assert.True(t, a.SameAs(b))
	})
}

func TestProvisionRooms(t *testing.T) {
	t.Run("names rooms ten per floor with the type initial", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithoutRooms().
			WithRooms(10, room.TypeStandard).
			WithRooms(2, room.TypeDeluxe).
			BuildDomain()
		require.NoError(t, err)

		rooms := h.Rooms()
		require.Len(t, rooms, 12)
		assert.Equal(t, "101S", rooms[0].Name())
		assert.Equal(t, "110S", rooms[9].Name())
		assert.Equal(t, "201D", rooms[10].Name())
		assert.Equal(t, "202D", rooms[11].Name())
		assert.Equal(t, map[room.Type]int{
			room.TypeStandard:  10,
			room.TypeDeluxe:    2,
			room.TypeExecutive: 0,
		}, h.RoomCountByType())
	})

	t.Run("allows exactly fifty rooms", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithoutRooms().WithRooms(50, room.TypeStandard).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, hotel.MaxRooms, h.RoomCount())

		_, err = h.ProvisionRooms(1, room.TypeStandard)
		assert.ErrorIs(t, err, hotel.ErrRoomLimitExceeded)
		assert.Equal(t, 50, h.RoomCount())
	})

	t.Run("rejects a batch that would pass the limit as a whole", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithoutRooms().WithRooms(45, room.TypeStandard).BuildDomain()
		require.NoError(t, err)

		_, err = h.ProvisionRooms(6, room.TypeDeluxe)
		assert.ErrorIs(t, err, hotel.ErrRoomLimitExceeded)
		assert.Equal(t, 45, h.RoomCount())
	})

	t.Run("rejects non-positive counts and unknown types", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithoutRooms().BuildDomain()
		require.NoError(t, err)

		_, err = h.ProvisionRooms(0, room.TypeStandard)
		assert.ErrorIs(t, err, hotel.ErrRoomCountInvalid)
		_, err = h.ProvisionRooms(-3, room.TypeStandard)
		assert.ErrorIs(t, err, hotel.ErrRoomCountInvalid)
		_, err = h.ProvisionRooms(1, room.Type("SUITE"))
		assert.ErrorIs(t, err, room.ErrInvalidRoomType)
		assert.Zero(t, h.RoomCount())
	})

	t.Run("skips names freed up by removals", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithoutRooms().WithRooms(3, room.TypeStandard).BuildDomain()
		require.NoError(t, err)

		first, _ := h.RoomByName("101S")
		require.Len(t, h.RemoveRooms([]*room.Room{first}), 1)

		created, err := h.ProvisionRooms(2, room.TypeStandard)
		require.NoError(t, err)
		assert.Equal(t, "104S", created[0].Name())
		assert.Equal(t, "105S", created[1].Name())
	})
}

func TestRemoveRooms(t *testing.T) {
	h, err := builder.NewHotelBuilder().BuildDomain()
	require.NoError(t, err)
	other, err := builder.NewHotelBuilder().WithName("Other").BuildDomain()
	require.NoError(t, err)

	rooms := h.Rooms()
	_, err = builder.NewReservationBuilder().WithRoom(rooms[0]).BuildDomain(h, rooms[0])
	require.NoError(t, err)

	removed := h.RemoveRooms([]*room.Room{rooms[0], rooms[1], nil, other.Rooms()[0], rooms[2]})

	assert.Equal(t, []*room.Room{rooms[1], rooms[2]}, removed)
	assert.Equal(t, 8, h.RoomCount())
	_, stillThere := h.RoomByID(rooms[0].ID())
	assert.True(t, stillThere, "booked room stays")
	assert.Equal(t, 10, other.RoomCount())
}

func TestUpdateBasePrice(t *testing.T) {
	t.Run("applies to every room", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithRooms(2, room.TypeExecutive).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, h.UpdateBasePrice(2000))
		for _, r := range h.Rooms() {
			assert.Equal(t, 2000.0, r.BasePrice())
		}
		assert.Equal(t, 2000.0, h.BasePrice())
	})

	t.Run("minimum is inclusive", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, h.UpdateBasePrice(100))
		assert.ErrorIs(t, h.UpdateBasePrice(99.99), hotel.ErrBasePriceTooLow)
		assert.Equal(t, 100.0, h.BasePrice())
	})

	t.Run("refused while reservations exist", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		r := h.Rooms()[0]
		_, err = builder.NewReservationBuilder().BuildDomain(h, r)
		require.NoError(t, err)

		err = h.UpdateBasePrice(1500)
		assert.ErrorIs(t, err, hotel.ErrHasActiveReservations)
		assert.Equal(t, room.DefaultBasePrice, h.BasePrice())
	})

	t.Run("hotel without rooms reports zero", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithoutRooms().BuildDomain()
		require.NoError(t, err)
		assert.Zero(t, h.BasePrice())
	})
}

func TestDatePriceModifiers(t *testing.T) {
	h, err := builder.NewHotelBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		day      int
		modifier float64
		applied  bool
	}{
		{name: "lower bound", day: 1, modifier: 0.5, applied: true},
		{name: "upper bound", day: 30, modifier: 1.5, applied: true},
		{name: "day zero", day: 0, modifier: 1.1, applied: false},
		{name: "day thirty one", day: 31, modifier: 1.1, applied: false},
		{name: "modifier too low", day: 10, modifier: 0.49, applied: false},
		{name: "modifier too high", day: 10, modifier: 1.51, applied: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.applied, h.SetDatePriceModifier(tt.day, tt.modifier))
		})
	}

	assert.Equal(t, 0.5, h.DatePriceModifier(1))
	assert.Equal(t, 1.5, h.DatePriceModifier(30))
	assert.Equal(t, hotel.DefaultModifier, h.DatePriceModifier(10), "rejected values leave the default")

	mods := h.DatePriceModifiers()
	require.Len(t, mods, reservation.LastDay)
	assert.Equal(t, 0.5, mods[0])
	assert.Equal(t, 1.5, mods[29])
}

func TestPriceForRoomOnDate(t *testing.T) {
	h, err := builder.NewHotelBuilder().WithoutRooms().
		WithRooms(1, room.TypeStandard).
		WithRooms(1, room.TypeDeluxe).
		WithRooms(1, room.TypeExecutive).
		WithBasePrice(1000).
		WithModifier(5, 1.5).
		BuildDomain()
	require.NoError(t, err)

	rooms := h.Rooms()
	assert.InDelta(t, 1000.0, h.PriceForRoomOnDate(rooms[0], 4), 1e-9)
	assert.InDelta(t, 1500.0, h.PriceForRoomOnDate(rooms[0], 5), 1e-9)
	assert.InDelta(t, 1800.0, h.PriceForRoomOnDate(rooms[1], 5), 1e-9)
	assert.InDelta(t, 2025.0, h.PriceForRoomOnDate(rooms[2], 5), 1e-9)

	t.Run("stay total is the sum of nightly prices", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().WithStay(4, 7).BuildDomain(h, rooms[1])
		require.NoError(t, err)
		want := h.PriceForRoomOnDate(rooms[1], 4) + h.PriceForRoomOnDate(rooms[1], 5) + h.PriceForRoomOnDate(rooms[1], 6)
		assert.InDelta(t, want, res.TotalPrice(), 1e-9)
	})
}

func TestCreateReservation(t *testing.T) {
	t.Run("three nights at the default price", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		r, ok := h.RoomByName("101S")
		require.True(t, ok)

		res, err := h.CreateReservation("Ana", 1, 4, r, "")
		require.NoError(t, err)

		assert.Equal(t, 3897.0, res.TotalPrice())
		assert.Equal(t, "101SA0104", res.Code())
		assert.Equal(t, h.ID(), res.HotelID())
		assert.Equal(t, r.ID(), res.RoomID())
		assert.Equal(t, []*reservation.Reservation{res}, h.Reservations())
		assert.Equal(t, []*reservation.Reservation{res}, r.Reservations())
		assert.Equal(t, 3897.0, h.ActualEarnings())
	})

	t.Run("rejects overlapping stays", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		r := h.Rooms()[0]
		_, err = h.CreateReservation("Ana", 5, 8, r, "")
		require.NoError(t, err)

		_, err = h.CreateReservation("Bob", 7, 9, r, "")
		assert.ErrorIs(t, err, hotel.ErrRoomUnavailable)
		assert.Equal(t, errs.ReasonRoomUnavailable, errs.ReasonOf(err))

		_, err = h.CreateReservation("Bob", 8, 9, r, "")
		assert.NoError(t, err, "check-in on the previous check-out day")
		assert.Len(t, h.Reservations(), 2)
	})

	t.Run("validation happens before any change", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		r := h.Rooms()[0]
		foreign, err := builder.NewHotelBuilder().WithName("Other").BuildDomain()
		require.NoError(t, err)

		tests := []struct {
			name     string
			guest    string
			checkIn  int
			checkOut int
			room     *room.Room
			reason   errs.Reason
		}{
			{name: "check-in zero", guest: "Ana", checkIn: 0, checkOut: 3, room: r, reason: errs.ReasonDateRangeInvalid},
			{name: "reversed dates", guest: "Ana", checkIn: 5, checkOut: 2, room: r, reason: errs.ReasonDateRangeInvalid},
			{name: "check-out past the month", guest: "Ana", checkIn: 30, checkOut: 32, room: r, reason: errs.ReasonDateRangeInvalid},
			{name: "guest with digits", guest: "R2D2", checkIn: 1, checkOut: 2, room: r, reason: errs.ReasonGuestNameInvalid},
			{name: "room of another hotel", guest: "Ana", checkIn: 1, checkOut: 2, room: foreign.Rooms()[0], reason: errs.ReasonNotFound},
			{name: "no room", guest: "Ana", checkIn: 1, checkOut: 2, room: nil, reason: errs.ReasonNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := h.CreateReservation(tt.guest, tt.checkIn, tt.checkOut, tt.room, "")
				require.Error(t, err)
				assert.Equal(t, tt.reason, errs.ReasonOf(err))
			})
		}
		assert.Empty(t, h.Reservations())
		assert.False(t, r.HasReservations())
	})

	t.Run("full month marks the room fully booked", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().WithoutRooms().WithRooms(2, room.TypeStandard).BuildDomain()
		require.NoError(t, err)
		r := h.Rooms()[0]

		_, err = h.CreateReservation("Ana", 1, 31, r, "")
		require.NoError(t, err)

		assert.Equal(t, room.StatusFullyBooked, r.Status())
		assert.Equal(t, 1, h.AvailableRoomCount())
		assert.Equal(t, []*room.Room{h.Rooms()[1]}, h.AvailableRooms(10, 12))
		assert.Equal(t, []*room.Room{r}, h.UnavailableRooms(10, 12))
	})
}

func TestCancelReservation(t *testing.T) {
	t.Run("round trip restores the previous state", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		r := h.Rooms()[0]
		before := h.AvailableRooms(1, 31)

		res, err := h.CreateReservation("Ana", 1, 31, r, "I_WORK_HERE")
		require.NoError(t, err)
		require.Equal(t, room.StatusFullyBooked, r.Status())

		require.NoError(t, h.CancelReservation(res))

		assert.Empty(t, h.Reservations())
		assert.False(t, r.HasReservations())
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.Equal(t, before, h.AvailableRooms(1, 31))
		assert.Zero(t, h.ActualEarnings())
	})

	t.Run("second cancel reports not found", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		res, err := builder.NewReservationBuilder().BuildDomain(h, h.Rooms()[0])
		require.NoError(t, err)

		require.NoError(t, h.CancelReservation(res))
		err = h.CancelReservation(res)
		assert.ErrorIs(t, err, hotel.ErrReservationNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("reservation of another hotel is not found", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		other, err := builder.NewHotelBuilder().WithName("Other").BuildDomain()
		require.NoError(t, err)
		res, err := builder.NewReservationBuilder().BuildDomain(other, other.Rooms()[0])
		require.NoError(t, err)

		err = h.CancelReservation(res)
		assert.Equal(t, errs.ReasonNotFound, errs.ReasonOf(err))
		assert.Len(t, other.Reservations(), 1)
	})

	t.Run("removes only the matching stay", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		r := h.Rooms()[0]
		first, err := h.CreateReservation("Ana", 1, 3, r, "")
		require.NoError(t, err)
		second, err := h.CreateReservation("Bob", 3, 6, r, "")
		require.NoError(t, err)

		require.NoError(t, h.CancelReservation(first))
		assert.Equal(t, []*reservation.Reservation{second}, h.Reservations())
		assert.Equal(t, []*reservation.Reservation{second}, r.Reservations())
	})
}

func TestFindReservation(t *testing.T) {
	h, err := builder.NewHotelBuilder().BuildDomain()
	require.NoError(t, err)
	res, err := h.CreateReservation("Ana", 1, 4, h.Rooms()[0], "")
	require.NoError(t, err)

	got, ok := h.FindReservation("101SA0104")
	require.True(t, ok)
	assert.Same(t, res, got)

	_, ok = h.FindReservation("999XA0104")
	assert.False(t, ok)
}
