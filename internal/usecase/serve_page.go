package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/3-lines-studio/blog/internal/core"
)

type ServePageInput struct {
	Config      core.PageConfig
	Manifest    *core.Manifest
	RequestPath string
	Request     *http.Request
}

type ServePageOutput struct {
	Action    core.PageAction
	HTML      string
	Status    int
	RoutePath string
	Props     map[string]any
	Error     error
}

type PageService struct {
	renderer  Renderer
	siteTitle string
}

func NewPageService(renderer Renderer, siteTitle string) *PageService {
	return &PageService{
		renderer:  renderer,
		siteTitle: siteTitle,
	}
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	decision := core.DecidePageAction(core.PageRequest{
		Mode:        input.Config.Mode,
		RequestPath: input.RequestPath,
		Manifest:    input.Manifest,
	})

	switch decision.Action {
	case core.ActionServeRouteFile:
		return ServePageOutput{
			Action:    core.ActionServeRouteFile,
			RoutePath: decision.HTMLPath,
		}

	case core.ActionNotFound:
		return s.RenderNotFound(ctx)

	case core.ActionRenderStaticPrerender:
		return s.renderStaticPrerender(ctx, input)

	default:
		return s.renderSSR(ctx, input)
	}
}

func (s *PageService) renderStaticPrerender(ctx context.Context, input ServePageInput) ServePageOutput {
	props := map[string]any{}

	if input.Config.StaticDataLoader != nil {
		entries, err := input.Config.StaticDataLoader(ctx)
		if err != nil {
			return ServePageOutput{
				Action: core.ActionRenderStaticPrerender,
				Error:  fmt.Errorf("failed to load static data: %w", err),
			}
		}

		matched, found := core.MatchStaticPath(entries, input.RequestPath)
		if !found {
			return s.RenderNotFound(ctx)
		}
		if matched != nil {
			props = matched
		}
	}

	html, status, err := s.RenderPage(ctx, input.Config.Component, props)
	return ServePageOutput{
		Action: core.ActionRenderStaticPrerender,
		HTML:   html,
		Status: status,
		Props:  props,
		Error:  err,
	}
}

func (s *PageService) renderSSR(ctx context.Context, input ServePageInput) ServePageOutput {
	props := map[string]any{}
	if input.Config.PropsLoader != nil {
		loaded, err := input.Config.PropsLoader(input.Request)
		if errors.Is(err, core.ErrNotFound) {
			return s.RenderNotFound(ctx)
		}
		if err != nil {
			return ServePageOutput{
				Action: core.ActionRenderSSR,
				Error:  err,
			}
		}
		if loaded != nil {
			props = loaded
		}
	}

	html, status, err := s.RenderPage(ctx, input.Config.Component, props)
	return ServePageOutput{
		Action: core.ActionRenderSSR,
		HTML:   html,
		Status: status,
		Props:  props,
		Error:  err,
	}
}

// RenderPage renders component with props into a full HTML document.
func (s *PageService) RenderPage(ctx context.Context, component string, props map[string]any) (string, int, error) {
	if s.renderer == nil {
		return "", 0, fmt.Errorf("renderer not available for %s", component)
	}

	page, err := s.renderer.Render(ctx, component, props)
	if err != nil {
		return "", 0, err
	}

	html, err := core.RenderHTMLShell(page, s.siteTitle)
	if err != nil {
		return "", 0, err
	}

	status := page.Status
	if status == 0 {
		status = http.StatusOK
	}
	return html, status, nil
}

// RenderNotFound renders the 404 page.
func (s *PageService) RenderNotFound(ctx context.Context) ServePageOutput {
	html, _, err := s.RenderPage(ctx, core.NotFoundComponent, nil)
	return ServePageOutput{
		Action: core.ActionNotFound,
		HTML:   html,
		Status: http.StatusNotFound,
		Error:  err,
	}
}
