package blog

import (
	"github.com/3-lines-studio/blog/internal/adapters/metrics"
	"github.com/3-lines-studio/blog/internal/adapters/render"
	"github.com/3-lines-studio/blog/internal/core"
	"github.com/3-lines-studio/blog/internal/pages"
)

func newRenderer(registry *pages.Registry, m *metrics.Metrics) core.Renderer {
	if m == nil {
		return render.NewRenderer(registry, nil)
	}
	return render.NewRenderer(registry, m)
}
