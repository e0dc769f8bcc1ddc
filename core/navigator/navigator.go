package navigator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultLoadTimeout bounds a single lazy fetch.
const DefaultLoadTimeout = 30 * time.Second

// Navigator resolves paths against an immutable route table and activates
// their views.
type Navigator struct {
	entries []*entry
	byPath  map[string]*entry

	sf      singleflight.Group
	logger  *zap.Logger
	timeout time.Duration
}

// entry holds the mutable load state of one route.
type entry struct {
	route Route

	mu      sync.RWMutex
	state   State
	view    View
	fetches int
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for fetch events.
func WithLogger(l *zap.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithLoadTimeout bounds each lazy fetch. Non-positive values keep the default.
func WithLoadTimeout(d time.Duration) Option {
	return func(n *Navigator) {
		if d > 0 {
			n.timeout = d
		}
	}
}

// New builds the route table. It fails with a *ConfigurationError on a
// duplicate path or name, a malformed route, or when the table does not
// contain exactly one root route.
func New(routes []Route, opts ...Option) (*Navigator, error) {
	n := &Navigator{
		entries: make([]*entry, 0, len(routes)),
		byPath:  make(map[string]*entry, len(routes)),
		logger:  zap.NewNop(),
		timeout: DefaultLoadTimeout,
	}
	for _, opt := range opts {
		opt(n)
	}

	names := make(map[string]int, len(routes))
	for i, r := range routes {
		if reason := validate(r); reason != "" {
			return nil, &ConfigurationError{Index: i, Path: r.Path, Name: r.Name, Reason: reason}
		}
		if prev, dup := n.byPath[r.Path]; dup {
			return nil, &ConfigurationError{Index: i, Path: r.Path, Name: r.Name, Reason: "duplicate path, also used by " + prev.route.Name}
		}
		if prev, dup := names[r.Name]; dup {
			return nil, &ConfigurationError{Index: i, Path: r.Path, Name: r.Name, Reason: "duplicate name, also used by " + routes[prev].Path}
		}
		names[r.Name] = i

		e := &entry{route: r}
		if !r.Loader.IsLazy() {
			e.state = Loaded
			e.view = r.Loader.view
		}
		n.entries = append(n.entries, e)
		n.byPath[r.Path] = e
	}

	if _, ok := n.byPath[RootPath]; !ok {
		return nil, &ConfigurationError{Index: -1, Reason: "no route for " + RootPath}
	}

	return n, nil
}

// Routes returns the route table in registration order.
func (n *Navigator) Routes() []Route {
	out := make([]Route, len(n.entries))
	for i, e := range n.entries {
		out[i] = e.route
	}
	return out
}

// Resolve returns the route whose path equals path exactly.
func (n *Navigator) Resolve(path string) (Route, error) {
	e, ok := n.byPath[path]
	if !ok {
		return Route{}, &NotFoundError{Path: path}
	}
	return e.route, nil
}

// Activate returns the route's view, fetching it first when the route is
// lazy and not yet loaded. Eager and cached routes return without waiting.
//
// ctx only bounds how long this caller waits; the fetch itself is shared
// by all concurrent callers and is not cancelled when they leave.
func (n *Navigator) Activate(ctx context.Context, route Route) (View, error) {
	e, ok := n.byPath[route.Path]
	if !ok || e.route.Name != route.Name {
		return nil, &NotFoundError{Path: route.Path}
	}

	if view, ok := e.loaded(); ok {
		return view, nil
	}

	ch := n.sf.DoChan(e.route.Path, func() (any, error) {
		return n.fetch(ctx, e)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, &LoadError{Path: e.route.Path, Name: e.route.Name, Err: res.Err}
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetch runs inside the singleflight group, so at most one call per route is
// active at a time.
func (n *Navigator) fetch(ctx context.Context, e *entry) (View, error) {
	// A previous flight may have finished between the fast path and here.
	if view, ok := e.loaded(); ok {
		return view, nil
	}

	e.mu.Lock()
	e.state = Loading
	e.fetches++
	attempt := e.fetches
	e.mu.Unlock()

	l := n.logger.With(zap.String("route", e.route.Name), zap.String("path", e.route.Path), zap.Int("attempt", attempt))
	l.Debug("Fetching view")
	start := time.Now()

	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	view, err := callFetch(fctx, e.route.Loader.fetch)
	if err == nil && view == nil {
		err = errors.New("loader returned no view")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = Unloaded
		l.Warn("View fetch failed", zap.Error(err), zap.Duration("took", time.Since(start)))
		return nil, err
	}
	e.state = Loaded
	e.view = view
	l.Debug("View loaded", zap.Duration("took", time.Since(start)))
	return view, nil
}

// callFetch turns a panicking loader into an error. singleflight would
// otherwise re-panic it on a goroutine no caller can recover.
func callFetch(ctx context.Context, fetch FetchFunc) (view View, err error) {
	defer func() {
		if r := recover(); r != nil {
			view, err = nil, fmt.Errorf("loader panicked: %v", r)
		}
	}()
	return fetch(ctx)
}

func (e *entry) loaded() (View, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.view, e.state == Loaded
}

// Status reports the current state of the route registered under path.
func (n *Navigator) Status(path string) (RouteStatus, error) {
	e, ok := n.byPath[path]
	if !ok {
		return RouteStatus{}, &NotFoundError{Path: path}
	}
	return e.status(), nil
}

// Snapshot reports the state of every route in registration order.
func (n *Navigator) Snapshot() []RouteStatus {
	out := make([]RouteStatus, len(n.entries))
	for i, e := range n.entries {
		out[i] = e.status()
	}
	return out
}

func (e *entry) status() RouteStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return RouteStatus{
		Path:    e.route.Path,
		Name:    e.route.Name,
		Lazy:    e.route.Loader.IsLazy(),
		State:   e.state,
		Fetches: e.fetches,
	}
}
