package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nfrund/statframes/internal/config"
	"github.com/nfrund/statframes/internal/domain"
	"github.com/nfrund/statframes/internal/frame"
	"github.com/nfrund/statframes/internal/pubsub"
	"github.com/nfrund/statframes/internal/rendering"
	"github.com/nfrund/statframes/internal/upstream"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewContainer creates the injector holding the core services the modules
// depend on. Services are built lazily on first use.
func NewContainer(cfg *config.Config, fs afero.Fs) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fs)
	do.ProvideValue(i, upstream.NewInternalToken())

	do.Provide(i, func(i do.Injector) (*http.Client, error) {
		return upstream.NewHTTPClient(cfg.UpstreamTimeout), nil
	})
	do.Provide(i, func(i do.Injector) (*upstream.AirstackClient, error) {
		return upstream.NewAirstackClient(do.MustInvoke[*http.Client](i), cfg.AirstackURL, cfg.AirstackAPIKey), nil
	})
	do.Provide(i, func(i do.Injector) (domain.ProfileFetcher, error) {
		return upstream.NewProfileClient(do.MustInvoke[*http.Client](i), cfg.AppURL, do.MustInvoke[upstream.InternalToken](i)), nil
	})
	do.Provide(i, func(i do.Injector) (domain.StatsFetcher, error) {
		return upstream.NewStatsClient(do.MustInvoke[*http.Client](i)), nil
	})

	do.Provide(i, func(i do.Injector) (*frame.Catalog, error) {
		return frame.LoadCatalog(do.MustInvoke[afero.Fs](i), cfg.VariantsFile, cfg.Variant)
	})
	do.Provide(i, func(i do.Injector) (*frame.Builder, error) {
		return frame.NewBuilder(
			do.MustInvoke[domain.ProfileFetcher](i),
			do.MustInvoke[domain.StatsFetcher](i),
		), nil
	})

	do.Provide(i, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	// One in-memory bus serves as both ends.
	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(i, func(i do.Injector) (pubsub.Publisher, error) {
		return do.MustInvoke[*pubsub.WatermillBridge](i), nil
	})
	do.Provide(i, func(i do.Injector) (pubsub.Subscriber, error) {
		return do.MustInvoke[*pubsub.WatermillBridge](i), nil
	})

	return i
}

// Close releases the services that hold background resources.
func Close(ctx context.Context, i do.Injector) {
	if bridge, err := do.Invoke[*pubsub.WatermillBridge](i); err == nil {
		if err := bridge.Close(); err != nil {
			slog.ErrorContext(ctx, "Failed to close event bus", "error", err)
		}
	}
}
