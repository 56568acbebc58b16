//go:build unit

package uow_test

import (
	"context"
	"sync"
	"testing"

	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/infra/uow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUoW(t *testing.T) {
	t.Run("runs the function against the shared registry", func(t *testing.T) {
		sys := system.NewReservationSystem()
		u := uow.NewMemoryUoW(sys)

		err := u.Within(context.Background(), func(_ context.Context, s *system.ReservationSystem) error {
			_, err := s.AddHotel("Plaza")
			return err
		})
		require.NoError(t, err)

		var names []string
		err = u.WithinReadOnly(context.Background(), func(_ context.Context, s *system.ReservationSystem) error {
			for _, h := range s.Hotels() {
				names = append(names, h.Name().String())
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Plaza"}, names)
	})

	t.Run("returns the function error", func(t *testing.T) {
		u := uow.NewMemoryUoW(system.NewReservationSystem())
		err := u.Within(context.Background(), func(_ context.Context, s *system.ReservationSystem) error {
			_, err := s.AddHotel("1Plaza")
			return err
		})
		assert.Error(t, err)
	})

	t.Run("canceled context never reaches the registry", func(t *testing.T) {
		u := uow.NewMemoryUoW(system.NewReservationSystem())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := u.Within(ctx, func(context.Context, *system.ReservationSystem) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)

		err = u.WithinReadOnly(ctx, func(context.Context, *system.ReservationSystem) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("concurrent bookings never double-book a night", func(t *testing.T) {
		sys := system.NewReservationSystem()
		h, err := sys.AddHotel("Plaza")
		require.NoError(t, err)
		_, err = sys.ProvisionRooms(h, 1, room.TypeStandard)
		require.NoError(t, err)
		r := h.Rooms()[0]
		u := uow.NewMemoryUoW(sys)

		const workers = 16
		var wg sync.WaitGroup
		results := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- u.Within(context.Background(), func(_ context.Context, _ *system.ReservationSystem) error {
					_, err := h.CreateReservation("Ana", 10, 12, r, "")
					return err
				})
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Len(t, r.Reservations(), 1)
	})
}
