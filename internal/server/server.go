package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/statframes/internal/config"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/nfrund/statframes/internal/handlers"
	"github.com/nfrund/statframes/internal/metrics"
	"github.com/nfrund/statframes/internal/middleware"
	"github.com/nfrund/statframes/internal/module"
	"github.com/nfrund/statframes/internal/rendering"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	cfg      *config.Config
	injector do.Injector
	modules  []module.Module
}

// New builds the echo instance, registers and boots every module, and
// starts watching the variants file. ctx bounds the background work the
// modules start and should live as long as the server.
func New(ctx context.Context, cfg *config.Config, injector do.Injector, modules []module.Module) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(metrics.HTTPMiddleware())
	e.Use(middleware.Sessions(cfg.SessionSecret))

	s := &Server{
		E:        e,
		cfg:      cfg,
		injector: injector,
		modules:  modules,
	}

	catalog, err := do.Invoke[*frame.Catalog](injector)
	if err != nil {
		return nil, fmt.Errorf("load variant catalog: %w", err)
	}
	s.RegisterRoutes(catalog)

	for _, m := range modules {
		if err := m.Register(injector); err != nil {
			return nil, fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	root := e.Group("")
	for _, m := range modules {
		if err := m.Boot(ctx, root, injector); err != nil {
			return nil, fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}

	if cfg.VariantsFile != "" {
		if err := catalog.Watch(ctx); err != nil {
			slog.Warn("Variants file will not be reloaded", "path", cfg.VariantsFile, "error", err)
		}
	}
	return s, nil
}
