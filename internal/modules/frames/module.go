package frames

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/statframes/internal/config"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/nfrund/statframes/internal/module"
	"github.com/nfrund/statframes/internal/pubsub"
	"github.com/nfrund/statframes/internal/rendering"
	"github.com/samber/do/v2"
)

// FramesModule serves the Farcaster frame endpoints.
type FramesModule struct {
	module.BaseModule
}

// New creates a new instance of the FramesModule.
func New() *FramesModule {
	return &FramesModule{}
}

// Name returns the unique name for the module.
func (m *FramesModule) Name() string {
	return "frames"
}

// Register provides the frames Handler.
func (m *FramesModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewHandler(
			do.MustInvoke[*frame.Catalog](i),
			do.MustInvoke[*frame.Builder](i),
			do.MustInvoke[rendering.Renderer](i),
			do.MustInvoke[pubsub.Publisher](i),
			cfg.AppURL,
		), nil
	})
	return nil
}

// Boot registers the frame routes.
func (m *FramesModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	h, err := do.Invoke[*Handler](i)
	if err != nil {
		return err
	}

	slog.Info("Booting FramesModule: Setting up routes...")
	h.Mount(g)
	return nil
}
