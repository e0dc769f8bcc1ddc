package app

import (
	"fmt"
	"mime"
	"path"
	"strings"
)

// Config holds the installable-app metadata published in the web manifest.
type Config struct {
	// Name is the full application name.
	Name string `mapstructure:"name" default:"Wordle Web"`
	// ShortName is shown where space is limited (home screen labels).
	ShortName string `mapstructure:"short_name" default:"Wordle"`
	// Description is a one-line summary of the app.
	Description string `mapstructure:"description" default:"Web based wordle as an installable web app"`
	// ThemeColor is the browser UI colour.
	ThemeColor string `mapstructure:"theme_color" default:"#1666BA"`
	// BackgroundColor is the splash screen colour.
	BackgroundColor string `mapstructure:"background_color" default:"#ffffff"`
	// Display is the preferred display mode (standalone, fullscreen, minimal-ui, browser).
	Display string `mapstructure:"display" default:"standalone"`
	// Icons is a comma separated list of "<file> <size>" pairs relative to the base path.
	Icons string `mapstructure:"icons" default:"wordle192x192.png 192x192,wordle512x512.png 512x512"`
}

// Icon is one manifest icon entry.
type Icon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// ParseIcons splits Icons into manifest entries. The MIME type is derived
// from the file extension.
func (c Config) ParseIcons() ([]Icon, error) {
	var icons []Icon
	for _, item := range strings.Split(c.Icons, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		fields := strings.Fields(item)
		if len(fields) != 2 {
			return nil, fmt.Errorf("icon %q: want \"<file> <size>\"", item)
		}
		src, sizes := fields[0], fields[1]
		if w, h, ok := strings.Cut(sizes, "x"); !ok || w == "" || h == "" {
			return nil, fmt.Errorf("icon %q: size %q is not WxH", item, sizes)
		}

		typ := mime.TypeByExtension(path.Ext(src))
		if typ == "" {
			return nil, fmt.Errorf("icon %q: unknown file type", item)
		}
		icons = append(icons, Icon{Src: src, Sizes: sizes, Type: typ})
	}
	return icons, nil
}
