// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names it, reports
// whether it is enabled and mounts its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager keeps features in registration order and mounts the enabled
// ones with LoadAll. The shell feature registers a catch-all route, so it
// must be registered after features with fixed paths such as the manifest.
package loader
