package views

import (
	"context"
	"fmt"
	"html/template"

	"wordle-web/core/chunk"
	"wordle-web/core/navigator"
	"wordle-web/web"
)

const (
	GamePath  = navigator.RootPath
	GameName  = "Game"
	DebugPath = "/debug"
	DebugName = "Debug"

	// DebugChunk is the chunk name the debug view is fetched under.
	DebugChunk = "debug"
)

// Options configures the route table.
type Options struct {
	// BasePath is the URL prefix links are built under.
	BasePath string
	// Source supplies lazy chunks.
	Source chunk.Source
	// GameTemplate overrides the embedded game view. Tests use it.
	GameTemplate string
}

// Routes builds the route table: the game view eagerly, the debug view
// lazily from opts.Source.
func Routes(opts Options) ([]navigator.Route, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("views: no chunk source")
	}
	funcs := Funcs(opts.BasePath)

	src := opts.GameTemplate
	if src == "" {
		src = web.GameView
	}
	game, err := NewPage(GameName, "Play", src, funcs)
	if err != nil {
		return nil, err
	}

	return []navigator.Route{
		{Path: GamePath, Name: GameName, Loader: navigator.Eager(game)},
		{Path: DebugPath, Name: DebugName, Loader: navigator.Lazy(LazyChunk(opts.Source, DebugChunk, DebugName, "Debug", funcs))},
	}, nil
}

// LazyChunk returns a fetch function that reads the named chunk from src and
// parses it into a Page.
func LazyChunk(src chunk.Source, chunkName, viewName, title string, funcs template.FuncMap) navigator.FetchFunc {
	return func(ctx context.Context) (navigator.View, error) {
		data, err := src.Fetch(ctx, chunkName)
		if err != nil {
			return nil, err
		}
		return NewPage(viewName, title, string(data), funcs)
	}
}
