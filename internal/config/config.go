package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/3-lines-studio/blog/internal/adapters/env"
	"github.com/3-lines-studio/blog/internal/core"
)

// Config holds all configuration for the site.
type Config struct {
	// Server
	Addr            string
	Mode            core.Mode
	ShutdownTimeout time.Duration

	// Content
	SiteTitle string
	PostsFile string // empty means the built-in posts

	// Export
	ExportDir         string
	ExportConcurrency int
	ServeFrom         string // serve a previous export instead of rendering
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            getEnv("BLOG_ADDR", ":"+getEnv("PORT", "8080")),
		Mode:            env.DetectMode(),
		ShutdownTimeout: 30 * time.Second,

		SiteTitle: getEnv("BLOG_SITE_TITLE", "My Blog"),
		PostsFile: os.Getenv("BLOG_POSTS"),

		ExportDir: getEnv("BLOG_EXPORT_DIR", "out"),
		ServeFrom: os.Getenv("BLOG_SERVE_FROM"),
	}

	concurrency, err := getEnvInt("BLOG_EXPORT_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}
	cfg.ExportConcurrency = concurrency

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SiteTitle == "" {
		return fmt.Errorf("site title cannot be empty")
	}
	if c.ExportConcurrency < 1 {
		return fmt.Errorf("export concurrency must be at least 1, got %d", c.ExportConcurrency)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Mode == core.ModeDev
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
