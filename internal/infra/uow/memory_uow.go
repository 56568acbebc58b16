package uow

import (
	"context"
	"sync"

	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"
)

var errWorkCanceled = errs.New("unit of work canceled before start")

// MemoryUoW serializes access to the in-memory registry with one RWMutex.
type MemoryUoW struct {
	mu  sync.RWMutex
	sys *system.ReservationSystem
}

func NewMemoryUoW(sys *system.ReservationSystem) shared.UnitOfWork {
	return &MemoryUoW{sys: sys}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, sys *system.ReservationSystem) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errWorkCanceled)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, u.sys)
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, sys *system.ReservationSystem) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errWorkCanceled)
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return fn(ctx, u.sys)
}
