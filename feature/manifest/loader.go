package manifest

import (
	"io/fs"

	"wordle-web/core/app"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the manifest feature serving icons from assets.
func NewFeature(cfg app.Config, basePath string, assets fs.FS) (*Feature, error) {
	h, err := NewHandler(cfg, basePath, assets)
	if err != nil {
		return nil, err
	}
	return &Feature{handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "manifest"
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
