package app

import (
	"github.com/nfrund/statframes/internal/module"
	"github.com/nfrund/statframes/internal/modules/activity"
	"github.com/nfrund/statframes/internal/modules/farscore"
	"github.com/nfrund/statframes/internal/modules/frames"
)

// NewModules returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		farscore.New(),
		frames.New(),
		activity.New(),
	}
}
