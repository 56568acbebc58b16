package bootstrap

import (
	"log/slog"

	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.LogConfig) *slog.Logger {
	return middleware.NewLogger(cfg)
}
