package views

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"wordle-web/core/navigator"
)

// Data is passed to every view template.
type Data struct {
	// App is the application display name.
	App string
	// BasePath is the URL prefix the app is served under.
	BasePath string
	// Path is the route path being rendered.
	Path string
	// Routes is the current state of the route table.
	Routes []navigator.RouteStatus
}

// Page is a renderable view unit.
type Page struct {
	name  string
	title string
	tmpl  *template.Template
}

// NewPage parses src as an html/template fragment.
func NewPage(name, title, src string, funcs template.FuncMap) (*Page, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse view %s: %w", name, err)
	}
	return &Page{name: name, title: title, tmpl: tmpl}, nil
}

func (p *Page) Name() string  { return p.name }
func (p *Page) Title() string { return p.title }

// Render executes the view with data.
func (p *Page) Render(data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render view %s: %w", p.name, err)
	}
	return template.HTML(buf.String()), nil
}

// Funcs returns the template helpers shared by the shell and all views.
func Funcs(basePath string) template.FuncMap {
	return template.FuncMap{
		// href turns a route path into a link under the base path.
		"href": func(routePath string) string {
			return strings.TrimSuffix(basePath, "/") + routePath
		},
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		"keyboard": func() [][]string {
			return keyboardRows
		},
	}
}

var keyboardRows = [][]string{
	strings.Split("QWERTYUIOP", ""),
	strings.Split("ASDFGHJKL", ""),
	append(append([]string{"Enter"}, strings.Split("ZXCVBNM", "")...), "Back"),
}
