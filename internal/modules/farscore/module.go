package farscore

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/statframes/internal/config"
	"github.com/nfrund/statframes/internal/middleware"
	"github.com/nfrund/statframes/internal/module"
	"github.com/nfrund/statframes/internal/upstream"
	"github.com/samber/do/v2"
)

// FarscoreModule serves the profile proxy route the frames read profiles from.
type FarscoreModule struct {
	module.BaseModule
}

// New creates a new instance of the FarscoreModule.
func New() *FarscoreModule {
	return &FarscoreModule{}
}

// Name returns the unique name for the module.
func (m *FarscoreModule) Name() string {
	return "farscore"
}

// Register provides the farscore Handler.
func (m *FarscoreModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Handler, error) {
		return NewHandler(do.MustInvoke[*upstream.AirstackClient](i)), nil
	})
	return nil
}

// Boot mounts the profile proxy route.
func (m *FarscoreModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	h, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}
	cfg := do.MustInvoke[*config.Config](i)
	token := do.MustInvoke[upstream.InternalToken](i)

	slog.Info("Booting FarscoreModule: Setting up routes...")
	Mount(g, h, cfg.RateLimit, token)
	return nil
}

// Mount registers GET /api/farscore limited to rateLimit requests per second
// per client. The server's own profile lookups carry token and are exempt,
// since they all come from one address.
func Mount(g *echo.Group, h *Handler, rateLimit float64, token upstream.InternalToken) {
	limiter := middleware.RateLimiter(rateLimit, middleware.SkipWithToken(upstream.HeaderInternal, string(token)))
	g.GET("/api/farscore", h.Get, limiter)
}
