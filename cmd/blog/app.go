package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/blog"
	"github.com/3-lines-studio/blog/internal/adapters/metrics"
	"github.com/3-lines-studio/blog/internal/config"
	"github.com/3-lines-studio/blog/internal/content"
	"github.com/3-lines-studio/blog/internal/core"
	"github.com/3-lines-studio/blog/public"
)

// loadConfig reads the environment and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("dev") {
		dev, _ := flags.GetBool("dev")
		cfg.Mode = core.ModeProd
		if dev {
			cfg.Mode = core.ModeDev
		}
	}
	if flags.Changed("posts") {
		cfg.PostsFile, _ = flags.GetString("posts")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Lookup("from") != nil && flags.Changed("from") {
		cfg.ServeFrom, _ = flags.GetString("from")
	}
	if flags.Lookup("out") != nil && flags.Changed("out") {
		cfg.ExportDir, _ = flags.GetString("out")
	}
	if flags.Lookup("concurrency") != nil && flags.Changed("concurrency") {
		cfg.ExportConcurrency, _ = flags.GetInt("concurrency")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes JSON in production and readable text in development.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func newApp(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*blog.App, error) {
	catalog := content.Default()
	if cfg.PostsFile != "" {
		loaded, err := content.LoadFile(cfg.PostsFile)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}

	opts := []blog.Option{
		blog.WithMode(cfg.Mode),
		blog.WithLogger(logger),
		blog.WithSiteTitle(cfg.SiteTitle),
		blog.WithPublicFS(public.FS()),
	}
	if m != nil {
		opts = append(opts, blog.WithMetrics(m))
	}
	if cfg.ServeFrom != "" {
		opts = append(opts, blog.WithExport(os.DirFS(cfg.ServeFrom)))
	}

	logger.Debug("site loaded", "posts", catalog.Len(), "mode", cfg.Mode.String())
	return blog.New(blog.Site(catalog), opts...)
}
