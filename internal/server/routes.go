package server

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/nfrund/statframes/internal/handlers"
	"github.com/nfrund/statframes/internal/metrics"
	"github.com/nfrund/statframes/web"
)

// RegisterRoutes sets up the routes that belong to no module.
func (s *Server) RegisterRoutes(catalog *frame.Catalog) {
	homeHandler := handlers.NewHomeHandler(catalog)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	s.E.GET("/", homeHandler.HomeGet)
	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}
