package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Hotel       *api.HotelHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Hotel.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Hotel.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Hotel.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Hotel.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Hotel.Delete},
				{Method: http.MethodPut, Path: "/:id/base-price", Handler: h.Hotel.UpdateBasePrice},
				{Method: http.MethodGet, Path: "/:id/price-modifiers", Handler: h.Hotel.PriceModifiers},
				{Method: http.MethodPut, Path: "/:id/price-modifiers/:day", Handler: h.Hotel.SetPriceModifier},

				{Method: http.MethodPost, Path: "/:id/rooms", Handler: h.Room.Provision},
				{Method: http.MethodGet, Path: "/:id/rooms", Handler: h.Room.List},
				{Method: http.MethodDelete, Path: "/:id/rooms", Handler: h.Room.Remove},
				{Method: http.MethodGet, Path: "/:id/rooms/:roomId/calendar", Handler: h.Room.Calendar},

				{Method: http.MethodPost, Path: "/:id/reservations", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Reservation.ListByHotel},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/:code", Handler: h.Reservation.Get},
				{Method: http.MethodDelete, Path: "/:code", Handler: h.Reservation.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
