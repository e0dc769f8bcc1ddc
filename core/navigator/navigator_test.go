package navigator_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wordle-web/core/navigator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type page struct{ name string }

// gatedFetch counts calls and blocks each one until release is closed.
type gatedFetch struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	err     error
	view    navigator.View
}

func newGatedFetch(view navigator.View) *gatedFetch {
	return &gatedFetch{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
		view:    view,
	}
}

func (g *gatedFetch) fetch(ctx context.Context) (navigator.View, error) {
	g.calls.Add(1)
	g.started <- struct{}{}
	<-g.release
	if g.err != nil {
		return nil, g.err
	}
	return g.view, nil
}

func instantFetch(view navigator.View, calls *atomic.Int32) navigator.FetchFunc {
	return func(ctx context.Context) (navigator.View, error) {
		calls.Add(1)
		return view, nil
	}
}

func gameAndDebug(t *testing.T, fetch navigator.FetchFunc) *navigator.Navigator {
	t.Helper()
	nav, err := navigator.New([]navigator.Route{
		{Path: "/", Name: "Game", Loader: navigator.Eager(&page{"game"})},
		{Path: "/debug", Name: "Debug", Loader: navigator.Lazy(fetch)},
	}, navigator.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	return nav
}

func TestNew_Configuration(t *testing.T) {
	eager := navigator.Eager(&page{"x"})

	tests := []struct {
		name   string
		routes []navigator.Route
		reason string
	}{
		{
			name: "DuplicatePath",
			routes: []navigator.Route{
				{Path: "/", Name: "Game", Loader: eager},
				{Path: "/", Name: "Other", Loader: eager},
			},
			reason: "duplicate path",
		},
		{
			name: "DuplicateName",
			routes: []navigator.Route{
				{Path: "/", Name: "Game", Loader: eager},
				{Path: "/debug", Name: "Game", Loader: eager},
			},
			reason: "duplicate name",
		},
		{
			name: "NoRoot",
			routes: []navigator.Route{
				{Path: "/debug", Name: "Debug", Loader: eager},
			},
			reason: "no route for /",
		},
		{
			name:   "Empty",
			routes: nil,
			reason: "no route for /",
		},
		{
			name: "Parameterized",
			routes: []navigator.Route{
				{Path: "/", Name: "Game", Loader: eager},
				{Path: "/word/:id", Name: "Word", Loader: eager},
			},
			reason: "parameterized",
		},
		{
			name: "RelativePath",
			routes: []navigator.Route{
				{Path: "debug", Name: "Debug", Loader: eager},
			},
			reason: "must start with /",
		},
		{
			name: "EmptyName",
			routes: []navigator.Route{
				{Path: "/", Name: " ", Loader: eager},
			},
			reason: "empty name",
		},
		{
			name: "NoLoader",
			routes: []navigator.Route{
				{Path: "/", Name: "Game"},
			},
			reason: "no loader",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, err := navigator.New(tt.routes)
			assert.Nil(t, nav)
			require.Error(t, err)

			var cfgErr *navigator.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.ErrorIs(t, err, navigator.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestResolve(t *testing.T) {
	var calls atomic.Int32
	nav := gameAndDebug(t, instantFetch(&page{"debug"}, &calls))

	t.Run("ExactMatch", func(t *testing.T) {
		for _, r := range nav.Routes() {
			got, err := nav.Resolve(r.Path)
			require.NoError(t, err)
			assert.Equal(t, r.Name, got.Name)
		}
	})

	t.Run("NoPartialMatch", func(t *testing.T) {
		for _, p := range []string{"/nonexistent", "/debug/", "/Debug", "/deb", "", "/debug?x=1"} {
			_, err := nav.Resolve(p)
			var nf *navigator.NotFoundError
			require.ErrorAs(t, err, &nf, p)
			assert.Equal(t, p, nf.Path)
			assert.ErrorIs(t, err, navigator.ErrNotFound)
		}
	})

	assert.Zero(t, calls.Load(), "resolve must not fetch")
}

func TestActivate_EagerNeverWaits(t *testing.T) {
	var calls atomic.Int32
	nav := gameAndDebug(t, instantFetch(&page{"debug"}, &calls))

	// A cancelled context still yields the eager view: nothing is awaited.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	route, err := nav.Resolve("/")
	require.NoError(t, err)

	view, err := nav.Activate(ctx, route)
	require.NoError(t, err)
	assert.Equal(t, &page{"game"}, view)

	st, err := nav.Status("/")
	require.NoError(t, err)
	assert.Equal(t, navigator.Loaded, st.State)
	assert.False(t, st.Lazy)
	assert.Zero(t, st.Fetches)
}

func TestActivate_LazyFetchesOnce(t *testing.T) {
	var calls atomic.Int32
	nav := gameAndDebug(t, instantFetch(&page{"debug"}, &calls))

	route, err := nav.Resolve("/debug")
	require.NoError(t, err)

	st, _ := nav.Status("/debug")
	assert.Equal(t, navigator.Unloaded, st.State)

	for i := 0; i < 5; i++ {
		view, err := nav.Activate(context.Background(), route)
		require.NoError(t, err)
		assert.Equal(t, &page{"debug"}, view)
	}

	assert.Equal(t, int32(1), calls.Load())
	st, _ = nav.Status("/debug")
	assert.Equal(t, navigator.Loaded, st.State)
	assert.Equal(t, 1, st.Fetches)
}

func TestActivate_ConcurrentCallersShareFetch(t *testing.T) {
	g := newGatedFetch(&page{"debug"})
	nav := gameAndDebug(t, g.fetch)
	route, _ := nav.Resolve("/debug")

	const callers = 8
	var wg sync.WaitGroup
	views := make([]navigator.View, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			views[i], errs[i] = nav.Activate(context.Background(), route)
		}(i)
	}

	<-g.started
	st, _ := nav.Status("/debug")
	assert.Equal(t, navigator.Loading, st.State)

	close(g.release)
	wg.Wait()

	assert.Equal(t, int32(1), g.calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, &page{"debug"}, views[i])
	}
}

func TestActivate_FailureIsRetryable(t *testing.T) {
	cause := errors.New("chunk unavailable")
	var calls atomic.Int32
	fail := true
	nav := gameAndDebug(t, func(ctx context.Context) (navigator.View, error) {
		calls.Add(1)
		if fail {
			return nil, cause
		}
		return &page{"debug"}, nil
	})
	route, _ := nav.Resolve("/debug")

	_, err := nav.Activate(context.Background(), route)
	var loadErr *navigator.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, navigator.ErrLoad)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Debug", loadErr.Name)

	st, _ := nav.Status("/debug")
	assert.Equal(t, navigator.Unloaded, st.State)

	// Other routes are untouched.
	game, _ := nav.Resolve("/")
	view, err := nav.Activate(context.Background(), game)
	require.NoError(t, err)
	assert.Equal(t, &page{"game"}, view)

	fail = false
	view, err = nav.Activate(context.Background(), route)
	require.NoError(t, err)
	assert.Equal(t, &page{"debug"}, view)
	assert.Equal(t, int32(2), calls.Load())

	st, _ = nav.Status("/debug")
	assert.Equal(t, navigator.Loaded, st.State)
	assert.Equal(t, 2, st.Fetches)
}

func TestActivate_NilViewIsLoadError(t *testing.T) {
	nav := gameAndDebug(t, func(ctx context.Context) (navigator.View, error) {
		return nil, nil
	})
	route, _ := nav.Resolve("/debug")

	_, err := nav.Activate(context.Background(), route)
	assert.ErrorIs(t, err, navigator.ErrLoad)
}

func TestActivate_PanickingLoaderIsLoadError(t *testing.T) {
	var calls atomic.Int32
	nav := gameAndDebug(t, func(ctx context.Context) (navigator.View, error) {
		if calls.Add(1) == 1 {
			panic("chunk decoder exploded")
		}
		return &page{"debug"}, nil
	})
	route, _ := nav.Resolve("/debug")

	_, err := nav.Activate(context.Background(), route)
	assert.ErrorIs(t, err, navigator.ErrLoad)
	assert.ErrorContains(t, err, "chunk decoder exploded")

	st, _ := nav.Status("/debug")
	assert.Equal(t, navigator.Unloaded, st.State)

	view, err := nav.Activate(context.Background(), route)
	require.NoError(t, err)
	assert.Equal(t, &page{"debug"}, view)
}

func TestActivate_UnknownRoute(t *testing.T) {
	var calls atomic.Int32
	nav := gameAndDebug(t, instantFetch(&page{"debug"}, &calls))

	_, err := nav.Activate(context.Background(), navigator.Route{Path: "/stats", Name: "Stats"})
	assert.ErrorIs(t, err, navigator.ErrNotFound)

	_, err = nav.Activate(context.Background(), navigator.Route{Path: "/debug", Name: "Impostor"})
	assert.ErrorIs(t, err, navigator.ErrNotFound)
}

func TestActivate_CallerLeavesFetchCompletes(t *testing.T) {
	g := newGatedFetch(&page{"debug"})
	nav := gameAndDebug(t, g.fetch)
	route, _ := nav.Resolve("/debug")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := nav.Activate(ctx, route)
		done <- err
	}()

	<-g.started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(g.release)
	require.Eventually(t, func() bool {
		st, _ := nav.Status("/debug")
		return st.State == navigator.Loaded
	}, time.Second, 5*time.Millisecond)

	view, err := nav.Activate(context.Background(), route)
	require.NoError(t, err)
	assert.Equal(t, &page{"debug"}, view)
	assert.Equal(t, int32(1), g.calls.Load())
}

func TestActivate_LoadTimeout(t *testing.T) {
	nav, err := navigator.New([]navigator.Route{
		{Path: "/", Name: "Game", Loader: navigator.Eager(&page{"game"})},
		{Path: "/debug", Name: "Debug", Loader: navigator.Lazy(func(ctx context.Context) (navigator.View, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})},
	}, navigator.WithLoadTimeout(20*time.Millisecond))
	require.NoError(t, err)

	route, _ := nav.Resolve("/debug")
	_, err = nav.Activate(context.Background(), route)
	assert.ErrorIs(t, err, navigator.ErrLoad)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSnapshot(t *testing.T) {
	var calls atomic.Int32
	nav := gameAndDebug(t, instantFetch(&page{"debug"}, &calls))

	snap := nav.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, navigator.RouteStatus{Path: "/", Name: "Game", State: navigator.Loaded}, snap[0])
	assert.Equal(t, navigator.RouteStatus{Path: "/debug", Name: "Debug", Lazy: true, State: navigator.Unloaded}, snap[1])

	_, err := nav.Status("/missing")
	assert.ErrorIs(t, err, navigator.ErrNotFound)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unloaded", navigator.Unloaded.String())
	assert.Equal(t, "loading", navigator.Loading.String())
	assert.Equal(t, "loaded", navigator.Loaded.String())
	assert.Equal(t, "unknown", navigator.State(9).String())
}
