package render

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/3-lines-studio/blog/internal/core"
	"github.com/3-lines-studio/blog/internal/pages"
)

// Observer is told about every render, successful or not.
type Observer interface {
	ObserveRender(component string, duration time.Duration, err error)
}

// Renderer renders registered page components in process.
type Renderer struct {
	registry *pages.Registry
	observer Observer
}

func NewRenderer(registry *pages.Registry, observer Observer) *Renderer {
	return &Renderer{
		registry: registry,
		observer: observer,
	}
}

func (r *Renderer) Render(ctx context.Context, component string, props map[string]any) (core.RenderedPage, error) {
	start := time.Now()
	page, err := r.render(ctx, component, props)
	if r.observer != nil {
		r.observer.ObserveRender(core.ComponentKey(component), time.Since(start), err)
	}
	return page, err
}

func (r *Renderer) render(ctx context.Context, component string, props map[string]any) (core.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return core.RenderedPage{}, err
	}

	c, ok := r.registry.Lookup(component)
	if !ok {
		return core.RenderedPage{}, fmt.Errorf("%w: %s", core.ErrUnknownComponent, component)
	}

	if props == nil {
		props = map[string]any{}
	}
	view := c(props)

	var body bytes.Buffer
	if view.Body != nil {
		if err := view.Body.Render(&body); err != nil {
			return core.RenderedPage{}, fmt.Errorf("render %s: %w", component, err)
		}
	}

	return core.RenderedPage{
		Title:  view.Title,
		Body:   body.String(),
		Status: view.StatusCode(),
	}, nil
}
