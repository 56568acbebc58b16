package bootstrap

import (
	"hotel-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections hands each component only the section of Config it reads.
var ConfigSections = fx.Provide(
	engineConfig,
	logConfig,
)

func engineConfig(cfg config.Config) config.EngineConfig { return cfg.Engine }

func logConfig(cfg config.Config) config.LogConfig { return cfg.Log }
