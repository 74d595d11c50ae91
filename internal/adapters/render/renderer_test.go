package render

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/blog/internal/components"
	"github.com/3-lines-studio/blog/internal/core"
	"github.com/3-lines-studio/blog/internal/pages"
)

type recordingObserver struct {
	components []string
	errs       []error
}

func (o *recordingObserver) ObserveRender(component string, _ time.Duration, err error) {
	o.components = append(o.components, component)
	o.errs = append(o.errs, err)
}

func TestRendererRendersRegisteredComponent(t *testing.T) {
	obs := &recordingObserver{}
	r := NewRenderer(pages.Default(), obs)

	page, err := r.Render(context.Background(), "./pages/post.go", map[string]any{"id": "hello-nextjs", "body": "text"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.Contains(page.Body, "<h1>hello-nextjs</h1>") {
		t.Errorf("body missing heading:\n%s", page.Body)
	}
	if page.Title != "hello-nextjs" {
		t.Errorf("Title = %q", page.Title)
	}
	if page.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200", page.Status)
	}

	if len(obs.components) != 1 || obs.components[0] != "pages/post" {
		t.Errorf("observer saw %v, want [pages/post]", obs.components)
	}
}

func TestRendererUnknownComponent(t *testing.T) {
	obs := &recordingObserver{}
	r := NewRenderer(pages.NewRegistry(), obs)

	_, err := r.Render(context.Background(), "pages/missing", nil)
	if !errors.Is(err, core.ErrUnknownComponent) {
		t.Fatalf("Render() error = %v, want ErrUnknownComponent", err)
	}
	if len(obs.errs) != 1 || obs.errs[0] == nil {
		t.Errorf("observer should record the failure, got %v", obs.errs)
	}
}

func TestRendererPropagatesNodeErrors(t *testing.T) {
	registry := pages.NewRegistry()
	registry.Register("pages/broken", func(map[string]any) pages.View {
		return pages.View{Body: components.Link(core.LinkTarget{Href: "/p/[id]"}, g.Text("x"))}
	})

	_, err := NewRenderer(registry, nil).Render(context.Background(), "pages/broken", nil)
	if !errors.Is(err, core.ErrMissingParam) {
		t.Errorf("Render() error = %v, want ErrMissingParam", err)
	}
}

func TestRendererNotFoundStatus(t *testing.T) {
	page, err := NewRenderer(pages.Default(), nil).Render(context.Background(), core.NotFoundComponent, nil)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if page.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", page.Status)
	}
}

func TestRendererHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer(pages.Default(), nil).Render(ctx, pages.AboutComponent, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}
