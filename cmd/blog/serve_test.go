package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/blog/internal/adapters/metrics"
	"github.com/3-lines-studio/blog/internal/config"
	"github.com/3-lines-studio/blog/internal/core"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	return testRouterWithLog(t, io.Discard)
}

func testRouterWithLog(t *testing.T, w io.Writer) http.Handler {
	t.Helper()
	cfg := &config.Config{Mode: core.ModeProd, SiteTitle: "My Blog", ExportConcurrency: 1}
	logger := slog.New(slog.NewTextHandler(w, nil))
	m := metrics.New()

	app, err := newApp(cfg, logger, m)
	require.NoError(t, err)
	return newRouter(app, m, logger)
}

func TestRouterServesPagesAndOps(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{path: "/", status: http.StatusOK, body: "My Blog"},
		{path: "/about", status: http.StatusOK, body: "This is the about page"},
		{path: "/p/hello-nextjs", status: http.StatusOK, body: "This is the blog post content."},
		{path: "/robots.txt", status: http.StatusOK, body: "User-agent"},
		{path: "/health", status: http.StatusOK, body: "ok"},
		{path: "/nowhere", status: http.StatusNotFound, body: "This page could not be found."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, string(body), tt.body)
		})
	}
}

func TestRouterExposesMetrics(t *testing.T) {
	handler := testRouter(t)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/p/learn-nextjs", nil))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `blog_http_requests_total{route="/p/{id}",status="200"} 1`)
	assert.True(t, strings.Contains(body, "blog_renders_total"))
}

func TestRouterLogsAndCountsPublicFiles(t *testing.T) {
	var logs bytes.Buffer
	handler := testRouterWithLog(t, &logs)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	etag := rr.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	req.Header.Set("If-None-Match", etag)
	conditional := httptest.NewRecorder()
	handler.ServeHTTP(conditional, req)
	assert.Equal(t, http.StatusNotModified, conditional.Code)

	assert.Contains(t, logs.String(), "path=/robots.txt")
	assert.Contains(t, logs.String(), "request_id=")

	scrape := httptest.NewRecorder()
	handler.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := scrape.Body.String()
	assert.Contains(t, body, `blog_http_requests_total{route="/robots.txt",status="200"} 1`)
	assert.Contains(t, body, `blog_http_requests_total{route="/robots.txt",status="304"} 1`)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, server, time.Second, logger)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
