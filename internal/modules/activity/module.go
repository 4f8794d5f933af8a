package activity

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/statframes/internal/module"
	"github.com/nfrund/statframes/internal/pubsub"
	"github.com/samber/do/v2"
)

// ActivityModule counts rendered frames from the event bus.
type ActivityModule struct {
	module.BaseModule
}

// New creates a new instance of the ActivityModule.
func New() *ActivityModule {
	return &ActivityModule{}
}

// Name returns the unique name for the module.
func (m *ActivityModule) Name() string {
	return "activity"
}

// Boot starts the subscriber; it has no routes.
func (m *ActivityModule) Boot(ctx context.Context, _ *echo.Group, i do.Injector) error {
	sub, err := do.Invoke[pubsub.Subscriber](i)
	if err != nil {
		return err
	}
	return NewSubscriber(sub).Start(ctx)
}
