package bootstrap

import (
	"log/slog"

	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		NewReservationSystem,
	),
)

// NewReservationSystem builds the process-wide registry, optionally seeded
// with one demo hotel.
func NewReservationSystem(cfg config.EngineConfig, logger *slog.Logger) (*system.ReservationSystem, error) {
	sys := system.NewReservationSystem()
	if !cfg.SeedDemo {
		return sys, nil
	}
	if err := seedDemo(sys, cfg); err != nil {
		return nil, errs.Wrap(err, "seed demo hotel")
	}
	logger.Info("demo hotel seeded",
		"name", cfg.SeedHotelName,
		"rooms", cfg.SeedRoomCount,
		"type", cfg.SeedRoomType)
	return sys, nil
}

func seedDemo(sys *system.ReservationSystem, cfg config.EngineConfig) error {
	t, err := room.ParseType(cfg.SeedRoomType)
	if err != nil {
		return err
	}
	h, err := sys.AddHotel(cfg.SeedHotelName)
	if err != nil {
		return err
	}
	_, err = sys.ProvisionRooms(h, cfg.SeedRoomCount, t)
	return err
}
