//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"hotel-reservation/cmd/bootstrap"
	"hotel-reservation/cmd/bootstrap/components"
	"hotel-reservation/internal/domain/system"
	"hotel-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds the full application graph on a fresh registry
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *system.ReservationSystem, *fx.App) {
	var router *gin.Engine
	var sys *system.ReservationSystem

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
		bootstrap.ConfigSections,
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.EngineModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &sys),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return router, sys, app
}

// ------------------------------------------------------------
// Shared setup for E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	System *system.ReservationSystem
	Config config.Config
	app    *fx.App
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Config = config.NewTestConfig()
	s.Config.Engine.SeedDemo = true
}

// SetupTest starts every test on a freshly seeded registry.
func (s *SharedSuite) SetupTest() {
	s.setupApp(s.T())
}

func (s *SharedSuite) setupApp(t *testing.T) {
	router, sys, app := buildE2EApp(s.Config)
	require.NotNil(t, router, "router setup failed")
	require.Len(t, sys.Hotels(), 1, "demo hotel was not seeded")

	s.Router = router
	s.System = sys
	s.app = app
}

func (s *SharedSuite) TearDownTest() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx app", "error", err.Error())
	}
}
