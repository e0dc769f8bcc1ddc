// Package web embeds the client build output: the page shell, the eagerly
// bundled game view and the dist tree holding lazily fetched chunks.
package web

import (
	"embed"
	"io/fs"
)

// ShellTemplate is the HTML document every view is rendered into.
//
//go:embed shell.html
var ShellTemplate string

// GameView is the game view fragment, bundled with the shell.
//
//go:embed views/game.html
var GameView string

//go:embed dist
var dist embed.FS

// Dist returns the build output tree: icons and favicon at the root, lazy
// chunks under chunks/.
func Dist() fs.FS {
	sub, err := fs.Sub(dist, "dist")
	if err != nil {
		// dist is embedded at compile time; Sub only fails on an invalid name.
		panic(err)
	}
	return sub
}
