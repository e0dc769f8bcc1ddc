package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BasePath is the URL prefix the app is served under. It starts and ends with "/".
	BasePath string `mapstructure:"base_path" default:"/wordle-web/"`
	// ApiKey, when set, is required to open the debug view.
	ApiKey string `mapstructure:"api_key" default:""`
	// ProtectedPaths lists comma separated route paths that require ApiKey.
	ProtectedPaths string `mapstructure:"protected_paths" default:"/debug"`
}

// IsValidBasePath checks that BasePath starts and ends with a slash.
func (c Config) IsValidBasePath() bool {
	return strings.HasPrefix(c.BasePath, "/") && strings.HasSuffix(c.BasePath, "/")
}

// Mount returns the prefix to mount routes under, without the trailing
// slash. The root base path mounts at "".
func (c Config) Mount() string {
	return strings.TrimSuffix(c.BasePath, "/")
}

// Protected returns the route paths that require the API key.
func (c Config) Protected() []string {
	var out []string
	for _, p := range strings.Split(c.ProtectedPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
