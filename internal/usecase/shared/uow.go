package shared

import (
	"context"

	"hotel-reservation/internal/domain/system"
)

type UnitOfWork interface {
	// Within: exclusive access for commands that mutate the registry
	Within(ctx context.Context, fn func(ctx context.Context, sys *system.ReservationSystem) error) error
	// WithinReadOnly: shared access for consistent multi-hotel reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, sys *system.ReservationSystem) error) error
}
