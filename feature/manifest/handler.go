package manifest

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"wordle-web/core/app"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// ContentType is the media type of web app manifests.
const ContentType = "application/manifest+json"

// Favicon is served next to the icons even though the manifest does not list it.
const Favicon = "favicon.ico"

// Manifest is the web app manifest document.
type Manifest struct {
	Name            string     `json:"name"`
	ShortName       string     `json:"short_name"`
	Description     string     `json:"description"`
	ThemeColor      string     `json:"theme_color"`
	BackgroundColor string     `json:"background_color"`
	Display         string     `json:"display"`
	StartURL        string     `json:"start_url"`
	Scope           string     `json:"scope"`
	Icons           []app.Icon `json:"icons"`
}

// Build assembles the manifest for an app served under basePath.
func Build(cfg app.Config, basePath string) (*Manifest, error) {
	icons, err := cfg.ParseIcons()
	if err != nil {
		return nil, fmt.Errorf("manifest icons: %w", err)
	}
	for i := range icons {
		icons[i].Src = basePath + icons[i].Src
	}

	return &Manifest{
		Name:            cfg.Name,
		ShortName:       cfg.ShortName,
		Description:     cfg.Description,
		ThemeColor:      cfg.ThemeColor,
		BackgroundColor: cfg.BackgroundColor,
		Display:         cfg.Display,
		StartURL:        basePath,
		Scope:           basePath,
		Icons:           icons,
	}, nil
}

// Handler serves the manifest and the icon files it points at.
type Handler struct {
	manifest *Manifest
	path     string
	mount    string
	assets   fs.FS
	// files are the request paths served from assets.
	files map[string]bool
}

// NewHandler builds the manifest once; it never changes at runtime. Every
// icon and the favicon must exist in assets.
func NewHandler(cfg app.Config, basePath string, assets fs.FS) (*Handler, error) {
	m, err := Build(cfg, basePath)
	if err != nil {
		return nil, err
	}

	names := []string{Favicon}
	for _, icon := range m.Icons {
		names = append(names, strings.TrimPrefix(icon.Src, basePath))
	}

	mount := strings.TrimSuffix(basePath, "/")
	files := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := fs.Stat(assets, name); err != nil {
			return nil, fmt.Errorf("manifest asset %s: %w", name, err)
		}
		files[mount+"/"+name] = true
	}

	return &Handler{
		manifest: m,
		path:     basePath + "manifest.webmanifest",
		mount:    mount,
		assets:   assets,
		files:    files,
	}, nil
}

// RegisterRoutes registers the manifest and asset routes. Both must come
// before the shell's catch-all.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(h.path, h.HandleManifest)

	prefix := h.mount
	if prefix == "" {
		prefix = "/"
	}
	app.Use(prefix, filesystem.New(filesystem.Config{
		Root:   http.FS(h.assets),
		MaxAge: 86400,
		Next: func(c *fiber.Ctx) bool {
			return !h.files[c.Path()]
		},
	}))
}

// HandleManifest returns the web app manifest.
// @Summary Web App Manifest
// @Description Returns the installable-app manifest (name, theme colour, icons).
// @Tags manifest
// @Produce json
// @Success 200 {object} manifest.Manifest
// @Router /manifest.webmanifest [get]
func (h *Handler) HandleManifest(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	if err := c.JSON(h.manifest); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, ContentType)
	return nil
}
