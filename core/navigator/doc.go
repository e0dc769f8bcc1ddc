// Package navigator maps request paths to views and controls when a view's
// code is acquired.
//
// A Navigator is built once from an ordered route table and is immutable
// afterwards. Each route carries a Loader that is either eager (the view is
// resident from startup) or lazy (the view is fetched on the first
// activation and cached for the rest of the process).
//
// # Route Lifecycle
//
// Lazy routes move through three states:
//
//	Unloaded -> Loading -> Loaded
//	Loading  -> Unloaded   (fetch failed, retry allowed)
//
// Eager routes are created Loaded. Loaded is terminal.
//
// # Concurrency
//
// At most one fetch is in flight per route. Concurrent activations of the
// same unloaded route wait on the shared fetch and receive its result. A
// fetch is never cancelled by its callers: a caller whose context ends stops
// waiting, while the fetch runs to completion and its result is cached.
//
// # Errors
//
//   - ConfigurationError: the route table is invalid (New).
//   - NotFoundError: no route matches a path (Resolve, Activate).
//   - LoadError: a lazy view failed to fetch (Activate).
//
// # Usage
//
//	nav, err := navigator.New([]navigator.Route{
//	    {Path: "/", Name: "Game", Loader: navigator.Eager(game)},
//	    {Path: "/debug", Name: "Debug", Loader: navigator.Lazy(fetchDebug)},
//	}, navigator.WithLogger(logg))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	nav.NewSession().Navigate(ctx, "/debug")
package navigator
