package http

import (
	iofs "io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/3-lines-studio/blog/internal/core"
)

// PublicHandler serves files from the public filesystem at the site root. It
// is registered once per file so requests pass through the router's
// middleware.
type PublicHandler struct {
	public iofs.FS
}

func NewPublicHandler(public iofs.FS) http.Handler {
	return &PublicHandler{public: public}
}

func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(path.Clean(req.URL.Path), "/")
	data, err := iofs.ReadFile(h.public, name)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	etag := core.ETag(data)
	w.Header().Set("Content-Type", core.GetContentType(name))
	w.Header().Set("ETag", etag)
	if match := req.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}

// PublicRoutes lists the request path of every file in public, in lexical
// order. Names a router pattern cannot express are skipped.
func PublicRoutes(public iofs.FS) ([]string, error) {
	var routes []string
	err := iofs.WalkDir(public, ".", func(name string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.ContainsAny(name, " {}*?#[]") {
			return nil
		}
		routes = append(routes, "/"+name)
		return nil
	})
	return routes, err
}
