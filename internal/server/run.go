package server

import (
	"context"

	"github.com/nfrund/statframes/internal/app"
	"github.com/nfrund/statframes/internal/config"
	"github.com/spf13/afero"
)

// Run wires the application for cfg and serves until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, fs afero.Fs) error {
	injector := app.NewContainer(cfg, fs)
	s, err := New(ctx, cfg, injector, app.NewModules())
	if err != nil {
		app.Close(ctx, injector)
		return err
	}
	return s.Start(ctx)
}
