package middleware

import (
	"log/slog"
	"slices"

	"hotel-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes the request ID header so browser clients
// can quote it. A lone "*" origin allows every origin without credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	if !slices.Contains(corsCfg.ExposeHeaders, RequestIDHeader) {
		corsCfg.ExposeHeaders = append(slices.Clone(corsCfg.ExposeHeaders), RequestIDHeader)
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all_origins", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
