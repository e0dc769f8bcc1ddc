package navigator

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("invalid route configuration")
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("route not found")
	// ErrLoad matches every *LoadError via errors.Is.
	ErrLoad = errors.New("view load failed")
)

// ConfigurationError reports an invalid route table. It is fatal at startup.
type ConfigurationError struct {
	// Index is the position of the offending route in the table, or -1.
	Index  int
	Path   string
	Name   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("route configuration: %s", e.Reason)
	}
	return fmt.Sprintf("route configuration: route %d (path=%q name=%q): %s", e.Index, e.Path, e.Name, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NotFoundError reports that no registered route matches Path exactly.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no route for path %q", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LoadError reports a failed lazy fetch. The route stays Unloaded and the
// next activation retries.
type LoadError struct {
	Path string
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load view %q (%s): %v", e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
