// Package blog serves and exports the site's pages. Routes pair a link
// template such as "/p/[id]" with a registered page component.
package blog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/blog/internal/adapters/env"
	blogfs "github.com/3-lines-studio/blog/internal/adapters/fs"
	apphttp "github.com/3-lines-studio/blog/internal/adapters/http"
	"github.com/3-lines-studio/blog/internal/adapters/metrics"
	"github.com/3-lines-studio/blog/internal/core"
	"github.com/3-lines-studio/blog/internal/pages"
	"github.com/3-lines-studio/blog/internal/usecase"
)

const DefaultSiteTitle = "My Blog"

type RedirectError = core.RedirectError

type StaticPathData = core.StaticPathData

type PageOption = core.PageOption

type Mode = core.Mode

const (
	ModeProd = core.ModeProd
	ModeDev  = core.ModeDev
)

type Route struct {
	Pattern   string
	Component string
	Options   []PageOption
}

type App struct {
	routes    []Route
	configs   []core.PageConfig
	service   *usecase.PageService
	registry  *pages.Registry
	mode      Mode
	siteTitle string
	logger    *slog.Logger
	metrics   *metrics.Metrics
	public    fs.FS
	exportFS  fs.FS
	manifest  *core.Manifest
	exported  usecase.FileReader
}

type Option func(*App)

func WithMode(mode Mode) Option {
	return func(a *App) {
		a.mode = mode
	}
}

func WithSiteTitle(title string) Option {
	return func(a *App) {
		a.siteTitle = title
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *App) {
		a.metrics = m
	}
}

// WithPublicFS serves the files of public at the site root and copies them
// into exports.
func WithPublicFS(public fs.FS) Option {
	return func(a *App) {
		a.public = public
	}
}

func WithRegistry(registry *pages.Registry) Option {
	return func(a *App) {
		a.registry = registry
	}
}

// WithExport answers requests from a previous export when its manifest lists
// the path.
func WithExport(exportFS fs.FS) Option {
	return func(a *App) {
		a.exportFS = exportFS
	}
}

func New(routes []Route, opts ...Option) (*App, error) {
	app := &App{
		routes:    routes,
		registry:  pages.Default(),
		mode:      env.DetectMode(),
		siteTitle: DefaultSiteTitle,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(app)
	}

	for _, route := range routes {
		config := buildPageConfig(route)
		if err := core.ValidateRoutePath(core.RouterPattern(route.Pattern, false)); err != nil {
			return nil, fmt.Errorf("route %q: %w", route.Pattern, err)
		}
		if _, ok := app.registry.Lookup(config.Component); !ok {
			return nil, fmt.Errorf("route %q: %w: %s", route.Pattern, core.ErrUnknownComponent, config.Component)
		}
		app.configs = append(app.configs, config)
	}

	app.service = usecase.NewPageService(newRenderer(app.registry, app.metrics), app.siteTitle)

	if app.exportFS != nil {
		files := blogfs.NewReadOnlyFileSystem(app.exportFS)
		if !files.FileExists(core.ManifestFile) {
			return nil, fmt.Errorf("export has no %s", core.ManifestFile)
		}
		data, err := files.ReadFile(core.ManifestFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read export manifest: %w", err)
		}
		manifest, err := core.ParseManifest(data)
		if err != nil {
			return nil, fmt.Errorf("invalid export manifest: %w", err)
		}
		app.manifest = manifest
		app.exported = files
	}

	return app, nil
}

func buildPageConfig(route Route) core.PageConfig {
	config := core.PageConfig{
		Pattern:   core.NormalizePath(route.Pattern),
		Component: route.Component,
		Mode:      core.ModeSSR,
	}
	for _, opt := range route.Options {
		opt(&config)
	}
	return config
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

// Wrap registers every page and public file on api and sets its 404 handler.
// Link templates become chi or ServeMux patterns.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("blog: nil router passed to Wrap; use app.Handler()")
	}

	_, serveMux := api.(*http.ServeMux)
	isDev := a.mode == ModeDev

	registered := make(map[string]bool, len(a.configs))
	for _, config := range a.configs {
		handler := apphttp.NewPageHandler(a.service, config, a.manifest, a.exported, isDev, a.logger)
		pattern := core.RouterPattern(config.Pattern, serveMux)
		api.Handle(pattern, handler)
		registered[core.NormalizePath(config.Pattern)] = true
	}

	if a.public != nil {
		routes, err := apphttp.PublicRoutes(a.public)
		if err != nil {
			a.logger.Error("public files unreadable", "error", err)
		}
		files := apphttp.NewPublicHandler(a.public)
		for _, route := range routes {
			if registered[route] {
				a.logger.Warn("public file shadowed by page", "path", route)
				continue
			}
			api.Handle(route, files)
		}
	}

	notFound := apphttp.NotFoundHandler(a.service, a.manifest, a.exported)
	if mux, ok := api.(interface{ NotFound(http.HandlerFunc) }); ok {
		mux.NotFound(notFound.ServeHTTP)
	} else if serveMux {
		api.Handle("/", notFound)
	}

	return api
}

func (a *App) Handler() http.Handler {
	return a.Wrap(chi.NewRouter())
}

// Routes returns the page configuration built from the registered routes.
func (a *App) Routes() []core.PageConfig {
	out := make([]core.PageConfig, len(a.configs))
	copy(out, a.configs)
	return out
}

func (a *App) Mode() Mode {
	return a.mode
}

func Page(pattern string, component string, opts ...PageOption) Route {
	return Route{
		Pattern:   pattern,
		Component: component,
		Options:   opts,
	}
}

func WithLoader(loader core.PropsLoader) PageOption {
	return core.WithLoader(loader)
}

func WithStatic() PageOption {
	return core.WithStatic()
}

func WithStaticData(loader core.StaticDataLoader) PageOption {
	return core.WithStaticData(loader)
}

// Redirect returns a loader error that answers the request with a redirect.
func Redirect(url string, status int) error {
	return core.Redirect(url, status)
}
