package chunk

import "time"

const (
	SourceEmbed   = "embed"
	SourceStorage = "storage"
)

// Config holds configuration for lazy chunk loading.
type Config struct {
	// Source selects where lazy chunks are read from (embed, storage).
	Source string `mapstructure:"source" default:"embed"`
	// Prefix is the directory or object prefix chunks live under.
	Prefix string `mapstructure:"prefix" default:"chunks"`
	// LoadTimeoutSeconds bounds a single chunk fetch.
	LoadTimeoutSeconds int `mapstructure:"load_timeout_seconds" default:"10"`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceEmbed, SourceStorage:
		return true
	default:
		return false
	}
}

// LoadTimeout returns the fetch bound, or zero when unset.
func (c Config) LoadTimeout() time.Duration {
	if c.LoadTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.LoadTimeoutSeconds) * time.Second
}
