package http

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/3-lines-studio/blog/internal/core"
	"github.com/3-lines-studio/blog/internal/usecase"
)

type PageHandler struct {
	service  *usecase.PageService
	config   core.PageConfig
	manifest *core.Manifest
	files    usecase.FileReader
	isDev    bool
	logger   *slog.Logger
}

// NewPageHandler serves one page route. manifest and files are set when the
// server answers from a previous export; both may be nil.
func NewPageHandler(
	service *usecase.PageService,
	config core.PageConfig,
	manifest *core.Manifest,
	files usecase.FileReader,
	isDev bool,
	logger *slog.Logger,
) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		service:  service,
		config:   config,
		manifest: manifest,
		files:    files,
		isDev:    isDev,
		logger:   logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	input := usecase.ServePageInput{
		Config:      h.config,
		Manifest:    h.manifest,
		RequestPath: req.URL.Path,
		Request:     req,
	}

	output := h.service.ServePage(req.Context(), input)

	if output.Error != nil {
		h.handleError(w, req, output)
		return
	}

	switch output.Action {
	case core.ActionServeRouteFile:
		h.serveRouteFile(w, req, output.RoutePath)

	case core.ActionNotFound:
		if serveExportedNotFound(w, req, h.manifest, h.files) {
			return
		}
		serveHTML(w, req, output.Status, output.HTML)

	case core.ActionRenderStaticPrerender,
		core.ActionRenderSSR:
		serveHTML(w, req, output.Status, output.HTML)
	}
}

func (h *PageHandler) handleError(w http.ResponseWriter, req *http.Request, output usecase.ServePageOutput) {
	var redirect core.RedirectError
	if errors.As(output.Error, &redirect) {
		status := redirect.RedirectStatusCode()
		if status == 0 {
			status = http.StatusFound
		}
		http.Redirect(w, req, redirect.RedirectURL(), status)
		return
	}

	if output.Action == core.ActionNotFound {
		if serveExportedNotFound(w, req, h.manifest, h.files) {
			return
		}
		h.logger.Warn("not found page failed to render", "path", req.URL.Path, "error", output.Error)
		http.NotFound(w, req)
		return
	}

	h.logger.Error("page render failed",
		"component", h.config.Component,
		"path", req.URL.Path,
		"error", output.Error,
	)
	serveError(w, http.StatusInternalServerError, output.Error, h.isDev)
}

func (h *PageHandler) serveRouteFile(w http.ResponseWriter, req *http.Request, htmlPath string) {
	if h.files == nil {
		serveError(w, http.StatusInternalServerError, fmt.Errorf("no export directory configured for %s", htmlPath), h.isDev)
		return
	}

	data, err := h.files.ReadFile(htmlPath)
	if err != nil {
		h.logger.Error("exported page unreadable", "file", htmlPath, "error", err)
		serveError(w, http.StatusInternalServerError, fmt.Errorf("failed to read route file %s: %w", htmlPath, err), h.isDev)
		return
	}

	serveHTML(w, req, http.StatusOK, string(data))
}

// NotFoundHandler answers requests no route matched. When serving an export
// that carries a 404 page, that file is used; otherwise the page is rendered.
func NotFoundHandler(service *usecase.PageService, manifest *core.Manifest, files usecase.FileReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if serveExportedNotFound(w, req, manifest, files) {
			return
		}
		output := service.RenderNotFound(req.Context())
		if output.Error != nil {
			http.NotFound(w, req)
			return
		}
		serveHTML(w, req, http.StatusNotFound, output.HTML)
	})
}

func serveExportedNotFound(w http.ResponseWriter, req *http.Request, manifest *core.Manifest, files usecase.FileReader) bool {
	if manifest == nil || manifest.NotFound == "" || files == nil {
		return false
	}
	data, err := files.ReadFile(manifest.NotFound)
	if err != nil {
		return false
	}
	serveHTML(w, req, http.StatusNotFound, string(data))
	return true
}

func serveHTML(w http.ResponseWriter, req *http.Request, status int, doc string) {
	if status == 0 {
		status = http.StatusOK
	}

	body := []byte(doc)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if status == http.StatusOK {
		etag := core.ETag(body)
		w.Header().Set("ETag", etag)
		if match := req.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.WriteHeader(status)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func serveError(w http.ResponseWriter, status int, err error, isDev bool) {
	data := core.NewErrorData(status, err, isDev)

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
