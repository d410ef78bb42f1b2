// Package api exposes the simulator as a JSON HTTP API.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-linear/internal/api/middleware"
	"github.com/huynhanx03/go-linear/internal/simulator"
	"github.com/huynhanx03/go-linear/pkg/common/http/handler"
	"github.com/huynhanx03/go-linear/pkg/settings"
)

// NewRouter builds the gin engine serving d.
func NewRouter(d *simulator.Dispatcher, log *zap.Logger, cfg settings.Server) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.LogMiddleware(log),
		middleware.RecoveryMiddleware(log),
		middleware.CorsMiddleware(cfg.AllowOrigins),
	)

	h := NewHandler(d)
	r.GET("/healthz", handler.WrapNoBody(h.Health))

	g := r.Group("/api")
	{
		g.POST("/operate", handler.Wrap(h.Operate))
		g.GET("/state", handler.WrapNoBody(h.State))
		g.PUT("/mode", handler.Wrap(h.SetMode))
	}

	return r
}
