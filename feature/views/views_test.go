package views_test

import (
	"context"
	"testing"
	"testing/fstest"

	"wordle-web/core/chunk"
	"wordle-web/core/navigator"
	"wordle-web/feature/views"
	"wordle-web/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	chunk.Source
	calls int
}

func (s *countingSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	s.calls++
	return s.Source.Fetch(ctx, name)
}

func TestRoutes_Table(t *testing.T) {
	routes, err := views.Routes(views.Options{BasePath: "/wordle-web/", Source: chunk.NewEmbedSource(web.Dist(), "chunks")})
	require.NoError(t, err)
	require.Len(t, routes, 2)

	assert.Equal(t, "/", routes[0].Path)
	assert.Equal(t, "Game", routes[0].Name)
	assert.False(t, routes[0].Loader.IsLazy())

	assert.Equal(t, "/debug", routes[1].Path)
	assert.Equal(t, "Debug", routes[1].Name)
	assert.True(t, routes[1].Loader.IsLazy())

	_, err = navigator.New(routes)
	assert.NoError(t, err)
}

func TestRoutes_NoSource(t *testing.T) {
	_, err := views.Routes(views.Options{})
	assert.Error(t, err)
}

func TestRoutes_BadGameTemplate(t *testing.T) {
	_, err := views.Routes(views.Options{Source: chunk.NewEmbedSource(web.Dist(), "chunks"), GameTemplate: "{{.Broken"})
	assert.Error(t, err)
}

func TestGameView_Renders(t *testing.T) {
	routes, err := views.Routes(views.Options{BasePath: "/", Source: chunk.NewEmbedSource(web.Dist(), "chunks")})
	require.NoError(t, err)
	nav, err := navigator.New(routes)
	require.NoError(t, err)

	route, _ := nav.Resolve("/")
	view, err := nav.Activate(context.Background(), route)
	require.NoError(t, err)

	page := view.(*views.Page)
	assert.Equal(t, "Game", page.Name())

	html, err := page.Render(views.Data{App: "Wordle Web"})
	require.NoError(t, err)
	assert.Contains(t, string(html), `data-row="5" data-col="4"`)
	assert.Contains(t, string(html), `data-key="Enter"`)
}

func TestDebugView_LoadedOnceFromChunk(t *testing.T) {
	src := &countingSource{Source: chunk.NewEmbedSource(web.Dist(), "chunks")}
	routes, err := views.Routes(views.Options{BasePath: "/wordle-web/", Source: src})
	require.NoError(t, err)
	nav, err := navigator.New(routes)
	require.NoError(t, err)

	route, _ := nav.Resolve("/debug")
	assert.Zero(t, src.calls, "debug chunk must not load at startup")

	for i := 0; i < 3; i++ {
		view, err := nav.Activate(context.Background(), route)
		require.NoError(t, err)
		html, err := view.(*views.Page).Render(views.Data{App: "Wordle Web", BasePath: "/wordle-web/", Routes: nav.Snapshot()})
		require.NoError(t, err)
		assert.Contains(t, string(html), `href="/wordle-web/debug"`)
		assert.Contains(t, string(html), "loaded")
	}
	assert.Equal(t, 1, src.calls)
}

func TestDebugView_BrokenChunkIsLoadError(t *testing.T) {
	src := chunk.NewEmbedSource(fstest.MapFS{"chunks/debug.html": {Data: []byte("{{range}")}}, "chunks")
	routes, err := views.Routes(views.Options{Source: src})
	require.NoError(t, err)
	nav, err := navigator.New(routes)
	require.NoError(t, err)

	route, _ := nav.Resolve("/debug")
	_, err = nav.Activate(context.Background(), route)
	assert.ErrorIs(t, err, navigator.ErrLoad)
}

func TestDebugView_MissingChunkIsLoadError(t *testing.T) {
	routes, err := views.Routes(views.Options{Source: chunk.NewEmbedSource(fstest.MapFS{}, "chunks")})
	require.NoError(t, err)
	nav, err := navigator.New(routes)
	require.NoError(t, err)

	route, _ := nav.Resolve("/debug")
	_, err = nav.Activate(context.Background(), route)
	assert.ErrorIs(t, err, navigator.ErrLoad)
	assert.ErrorIs(t, err, chunk.ErrNotFound)
}

func TestFuncs_Href(t *testing.T) {
	href := views.Funcs("/wordle-web/")["href"].(func(string) string)
	assert.Equal(t, "/wordle-web/", href("/"))
	assert.Equal(t, "/wordle-web/debug", href("/debug"))

	href = views.Funcs("/")["href"].(func(string) string)
	assert.Equal(t, "/debug", href("/debug"))
}
