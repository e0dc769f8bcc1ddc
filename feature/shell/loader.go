package shell

import (
	"wordle-web/core/navigator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the shell feature.
func NewFeature(nav *navigator.Navigator, shellTemplate string, opts Options, logger *zap.Logger) (*Feature, error) {
	h, err := NewHandler(nav, shellTemplate, opts, logger)
	if err != nil {
		return nil, err
	}
	return &Feature{handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "shell"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
