package navigator

import (
	"context"
	"sync"
)

// Navigation is the outcome of Session.Navigate.
type Navigation struct {
	Route Route
	View  View
	// Discarded is set when a later navigation replaced this one as the
	// session's target before its view was ready. View is nil in that case.
	Discarded bool
}

// Session tracks the active navigation target of one client. Route load
// state is shared through the Navigator; only the target is per session.
type Session struct {
	nav *Navigator

	mu     sync.Mutex
	gen    uint64
	target string
}

// NewSession starts a session with no active target.
func (n *Navigator) NewSession() *Session {
	return &Session{nav: n}
}

// Target returns the path of the most recent navigation.
func (s *Session) Target() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// Navigate resolves path, makes it the session's active target and activates
// its route. If the session's target has moved to another path by the time
// the view is ready, the result is discarded and no error is returned. The
// lazy view still stays cached for later navigations.
func (s *Session) Navigate(ctx context.Context, path string) (*Navigation, error) {
	route, err := s.nav.Resolve(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.target = path
	s.mu.Unlock()

	view, err := s.nav.Activate(ctx, route)

	if !s.current(gen, path) {
		return &Navigation{Route: route, Discarded: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Navigation{Route: route, View: view}, nil
}

// current reports whether the navigation started at gen still targets path.
// A later navigation to the same path keeps it current.
func (s *Session) current(gen uint64, path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen == gen || s.target == path
}
