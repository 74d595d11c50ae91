package core

import (
	"context"
	"errors"
	"net/http"
)

// ErrNotFound is returned by loaders when the requested page has no content.
var ErrNotFound = errors.New("page not found")

// NotFoundComponent renders the 404 page.
const NotFoundComponent = "pages/404"

type Mode int

const (
	ModeProd Mode = iota
	ModeDev
)

func (m Mode) String() string {
	if m == ModeDev {
		return "development"
	}
	return "production"
}

type PropsLoader func(*http.Request) (map[string]any, error)

type RedirectError interface {
	RedirectURL() string
	RedirectStatusCode() int
}

type redirectError struct {
	url    string
	status int
}

// Redirect returns an error that makes the page handler answer with a redirect.
func Redirect(url string, status int) error {
	return &redirectError{url: url, status: status}
}

func (e *redirectError) Error() string {
	return "redirect to " + e.url
}

func (e *redirectError) RedirectURL() string {
	return e.url
}

func (e *redirectError) RedirectStatusCode() int {
	return e.status
}

type PageMode int

const (
	ModeSSR PageMode = iota
	ModeStaticPrerender
)

func (m PageMode) String() string {
	if m == ModeStaticPrerender {
		return "static-prerender"
	}
	return "ssr"
}

type StaticPathData struct {
	Path  string
	Props map[string]any
}

type StaticDataLoader func(context.Context) ([]StaticPathData, error)

type PageConfig struct {
	Pattern          string
	Component        string
	Mode             PageMode
	PropsLoader      PropsLoader
	StaticDataLoader StaticDataLoader
}

type PageOption func(*PageConfig)

func WithLoader(loader PropsLoader) PageOption {
	return func(c *PageConfig) {
		c.PropsLoader = loader
	}
}

func WithStatic() PageOption {
	return func(c *PageConfig) {
		c.Mode = ModeStaticPrerender
	}
}

func WithStaticData(loader StaticDataLoader) PageOption {
	return func(c *PageConfig) {
		c.Mode = ModeStaticPrerender
		c.StaticDataLoader = loader
	}
}

// RenderedPage is the output of a component render. An empty Title leaves the
// site title in place; Status is zero unless the component asks for a specific
// response code.
type RenderedPage struct {
	Title  string
	Body   string
	Status int
}
