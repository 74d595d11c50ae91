// Package pages defines the site's page components and the registry the
// renderer resolves component names through.
package pages

import (
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/blog/internal/core"
)

// View is what a page component produces. An empty Title leaves the site
// title in place; a zero Status means 200.
type View struct {
	Title  string
	Body   g.Node
	Status int
}

type Component func(props map[string]any) View

const (
	IndexComponent = "pages/index"
	AboutComponent = "pages/about"
	PostComponent  = "pages/post"
)

type Registry struct {
	components map[string]Component
}

func NewRegistry() *Registry {
	return &Registry{components: make(map[string]Component)}
}

// Default registers every page of the site.
func Default() *Registry {
	r := NewRegistry()
	r.Register(IndexComponent, Index)
	r.Register(AboutComponent, About)
	r.Register(PostComponent, Post)
	r.Register(core.NotFoundComponent, NotFound)
	return r
}

func (r *Registry) Register(name string, c Component) {
	r.components[core.ComponentKey(name)] = c
}

func (r *Registry) Lookup(name string) (Component, bool) {
	c, ok := r.components[core.ComponentKey(name)]
	return c, ok
}

func (v View) StatusCode() int {
	if v.Status == 0 {
		return http.StatusOK
	}
	return v.Status
}
