package shell

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"wordle-web/core/logger"
	"wordle-web/core/middleware/auth"
	"wordle-web/core/navigator"
	"wordle-web/feature/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// viewPrefix is the path segment, under the base path, of the JSON endpoint.
const viewPrefix = "/_view"

// renderable is what the shell needs from a view unit.
type renderable interface {
	Name() string
	Title() string
	Render(data any) (template.HTML, error)
}

// ViewResponse is the JSON body of the view endpoint.
type ViewResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Body  string `json:"body"`
}

// ErrorResponse is returned by the view endpoint on failure.
type ErrorResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
	// Fallback is the location to offer when the path is unknown.
	Fallback string `json:"fallback,omitempty"`
	// Retry is set when navigating again may succeed.
	Retry bool `json:"retry,omitempty"`
}

// Options configures the Handler.
type Options struct {
	App      string
	BasePath string
	// ThemeColor is written to the document's theme-color meta tag.
	ThemeColor string
	// ApiKey guards the Protected route paths when set.
	ApiKey    string
	Protected []string
}

// Handler serves views through the navigator.
type Handler struct {
	nav       *navigator.Navigator
	logger    *zap.Logger
	opts      Options
	mount     string
	document  *template.Template
	protected map[string]bool
}

// NewHandler parses the page shell template and creates the handler.
func NewHandler(nav *navigator.Navigator, shellTemplate string, opts Options, logger *zap.Logger) (*Handler, error) {
	doc, err := template.New("shell").Funcs(views.Funcs(opts.BasePath)).Parse(shellTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse shell template: %w", err)
	}

	protected := make(map[string]bool, len(opts.Protected))
	for _, p := range opts.Protected {
		protected[p] = true
	}

	return &Handler{
		nav:       nav,
		logger:    logger,
		opts:      opts,
		mount:     strings.TrimSuffix(opts.BasePath, "/"),
		document:  doc,
		protected: protected,
	}, nil
}

// RegisterRoutes registers the view endpoints. The page route is a
// catch-all, so it must be registered after every fixed route under the
// base path.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(h.mount+viewPrefix+"/*", h.guard(h.mount+viewPrefix), h.HandleView)
	app.Get(h.mount+"/*", h.guard(h.mount), h.HandlePage)
}

func (h *Handler) guard(prefix string) fiber.Handler {
	return auth.New(auth.Config{
		ApiKey: h.opts.ApiKey,
		Next: func(c *fiber.Ctx) bool {
			return !h.protected[routePath(c, prefix)]
		},
	})
}

// routePath maps the request path below prefix onto the route table's
// path space.
func routePath(c *fiber.Ctx, prefix string) string {
	p := strings.TrimPrefix(c.Path(), prefix)
	if p == "" {
		return navigator.RootPath
	}
	return p
}

// HandlePage renders the full document for the requested view.
// @Summary Render View
// @Description Resolves the path against the route table and renders the view inside the page shell. Lazy views are fetched on first visit.
// @Tags views
// @Produce html
// @Param path path string true "Route path below the base path"
// @Success 200 {string} string "HTML document"
// @Failure 401 {object} map[string]string "Missing API key for a protected view"
// @Failure 404 {string} string "Unknown path"
// @Failure 502 {string} string "View chunk failed to load"
// @Router /{path} [get]
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	path := routePath(c, h.mount)

	nv, err := h.nav.NewSession().Navigate(c.UserContext(), path)
	if err != nil {
		status, msg := h.failure(l, path, err)
		return h.sendDocument(c.Status(status), path, "Error", h.errorBody(status, msg, path))
	}

	page, body, err := h.render(nv)
	if err != nil {
		l.Error("View render failed", zap.String("path", path), zap.Error(err))
		status := fiber.StatusInternalServerError
		return h.sendDocument(c.Status(status), path, "Error", h.errorBody(status, "This view could not be shown. Try again.", path))
	}

	return h.sendDocument(c, path, page.Title(), body)
}

// HandleView returns the rendered view as JSON for client-side navigation.
// @Summary Fetch View Fragment
// @Description Resolves and activates the route, returning the rendered view body. Used by the page shell to switch views without a reload.
// @Tags views
// @Produce json
// @Param path path string true "Route path below the base path"
// @Success 200 {object} shell.ViewResponse
// @Failure 401 {object} map[string]string "Missing API key for a protected view"
// @Failure 404 {object} shell.ErrorResponse
// @Failure 502 {object} shell.ErrorResponse
// @Router /_view/{path} [get]
func (h *Handler) HandleView(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	path := routePath(c, h.mount+viewPrefix)

	nv, err := h.nav.NewSession().Navigate(c.UserContext(), path)
	if err != nil {
		status, msg := h.failure(l, path, err)
		resp := ErrorResponse{Error: msg, Path: path}
		switch status {
		case fiber.StatusNotFound:
			resp.Fallback = h.opts.BasePath
		case fiber.StatusBadGateway:
			resp.Retry = true
		}
		return c.Status(status).JSON(resp)
	}

	page, body, err := h.render(nv)
	if err != nil {
		l.Error("View render failed", zap.String("path", path), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error(), Path: path})
	}

	return c.JSON(ViewResponse{
		Name:  page.Name(),
		Title: page.Title(),
		Path:  nv.Route.Path,
		Body:  string(body),
	})
}

// failure maps a navigation error to a status code and a user-facing message.
func (h *Handler) failure(l *zap.Logger, path string, err error) (int, string) {
	switch {
	case errors.Is(err, navigator.ErrNotFound):
		l.Info("Unknown view requested", zap.String("path", path))
		return fiber.StatusNotFound, "Nothing here. Go back to the game."
	case errors.Is(err, navigator.ErrLoad):
		l.Warn("View failed to load", zap.String("path", path), zap.Error(err))
		return fiber.StatusBadGateway, "This view failed to load. Try again."
	default:
		l.Warn("Navigation aborted", zap.String("path", path), zap.Error(err))
		return fiber.StatusServiceUnavailable, "Navigation was interrupted. Try again."
	}
}

// errorBody renders the fallback shown in place of a view: a link back to
// the game for unknown paths, a retry link otherwise.
func (h *Handler) errorBody(status int, msg, path string) template.HTML {
	target, label := h.mount+path, "Try again"
	if status == fiber.StatusNotFound {
		target, label = h.opts.BasePath, "Back to the game"
	}
	return template.HTML(fmt.Sprintf(`<p class="error">%s</p><p><a href="%s" data-nav>%s</a></p>`,
		template.HTMLEscapeString(msg), template.HTMLEscapeString(target), label))
}

func (h *Handler) render(nv *navigator.Navigation) (renderable, template.HTML, error) {
	page, ok := nv.View.(renderable)
	if !ok {
		return nil, "", fmt.Errorf("view %s is not renderable", nv.Route.Name)
	}
	body, err := page.Render(h.data(nv.Route.Path))
	if err != nil {
		return nil, "", err
	}
	return page, body, nil
}

func (h *Handler) data(path string) views.Data {
	return views.Data{
		App:      h.opts.App,
		BasePath: h.opts.BasePath,
		Path:     path,
		Routes:   h.nav.Snapshot(),
	}
}

type document struct {
	views.Data
	Title      string
	ThemeColor string
	Body       template.HTML
}

func (h *Handler) sendDocument(c *fiber.Ctx, path, title string, body template.HTML) error {
	var buf bytes.Buffer
	err := h.document.Execute(&buf, document{
		Data:       h.data(path),
		Title:      title,
		ThemeColor: h.opts.ThemeColor,
		Body:       body,
	})
	if err != nil {
		return fmt.Errorf("render shell: %w", err)
	}
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
