package navigator

import (
	"context"
	"strings"
)

// View is an opaque renderable handle. The navigator never inspects it.
type View any

// FetchFunc acquires a lazy view unit.
type FetchFunc func(ctx context.Context) (View, error)

// Loader produces the view for a route. Build one with Eager or Lazy.
type Loader struct {
	view  View
	fetch FetchFunc
}

// Eager returns a loader whose view is already resident.
func Eager(view View) Loader {
	return Loader{view: view}
}

// Lazy returns a loader that calls fetch on first activation and caches the
// result for the rest of the process.
func Lazy(fetch FetchFunc) Loader {
	return Loader{fetch: fetch}
}

// IsLazy reports whether the view is fetched on demand.
func (l Loader) IsLazy() bool {
	return l.fetch != nil
}

func (l Loader) valid() bool {
	return l.fetch != nil || l.view != nil
}

// Route binds an exact URL path to a named view.
type Route struct {
	// Path is matched exactly. It must start with "/" and contain no
	// parameter segments.
	Path string
	// Name is a unique human-readable identifier.
	Name string
	// Loader produces the view.
	Loader Loader
}

// RootPath is the path every route table must contain exactly once.
const RootPath = "/"

// State is the loader lifecycle state of a route.
type State int

const (
	Unloaded State = iota
	Loading
	Loaded
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name in JSON output.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RouteStatus is a point-in-time view of one route's load state.
type RouteStatus struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Lazy  bool   `json:"lazy"`
	State State  `json:"state"`
	// Fetches counts fetch attempts started for the route, failed ones included.
	Fetches int `json:"fetches"`
}

// validate returns the reason a single route is malformed, or "".
func validate(r Route) string {
	switch {
	case r.Path == "":
		return "empty path"
	case !strings.HasPrefix(r.Path, "/"):
		return "path must start with /"
	case strings.ContainsAny(r.Path, ":*?#"):
		return "parameterized or query segments are not supported"
	case strings.TrimSpace(r.Name) == "":
		return "empty name"
	case !r.Loader.valid():
		return "no loader"
	}
	return ""
}
