package pages

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/3-lines-studio/blog/internal/core"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func renderView(t *testing.T, v View) string {
	t.Helper()
	var b strings.Builder
	if err := v.Body.Render(&b); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return b.String()
}

func TestIndexListsPostsInOrder(t *testing.T) {
	ids := []string{"hello-nextjs", "learn-nextjs", "deploy-nextjs"}
	out := renderView(t, Index(map[string]any{"posts": ids}))

	if !strings.Contains(out, "<h1>My Blog</h1>") {
		t.Errorf("missing heading:\n%s", out)
	}

	last := -1
	for _, id := range ids {
		target := `href="/p/` + id + `"`
		if n := strings.Count(out, target); n != 1 {
			t.Errorf("expected one link to %s, got %d", id, n)
		}
		label := ">" + id + "</a>"
		if n := strings.Count(out, label); n != 1 {
			t.Errorf("expected one label %s, got %d", id, n)
		}
		pos := strings.Index(out, target)
		if pos < last {
			t.Errorf("%s rendered out of order", id)
		}
		last = pos
	}

	snaps.MatchSnapshot(t, out)
}

func TestIndexAcceptsDecodedProps(t *testing.T) {
	out := renderView(t, Index(map[string]any{"posts": []any{"a", 42, "b"}}))

	if strings.Count(out, "<li>") != 2 {
		t.Errorf("expected two items from mixed list:\n%s", out)
	}
}

func TestIndexWithoutPosts(t *testing.T) {
	out := renderView(t, Index(map[string]any{}))
	if !strings.Contains(out, "<ul></ul>") {
		t.Errorf("expected empty list:\n%s", out)
	}
}

func TestAbout(t *testing.T) {
	v := About(nil)
	if v.Title != "About" {
		t.Errorf("Title = %q, want About", v.Title)
	}
	out := renderView(t, v)
	if !strings.Contains(out, "<p>This is the about page</p>") {
		t.Errorf("missing about text:\n%s", out)
	}
}

func TestPost(t *testing.T) {
	v := Post(map[string]any{"id": "learn-nextjs", "body": "Body <b>text</b>"})
	if v.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want 200", v.StatusCode())
	}

	out := renderView(t, v)
	if !strings.Contains(out, "<h1>learn-nextjs</h1>") {
		t.Errorf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, "Body &lt;b&gt;text&lt;/b&gt;") {
		t.Errorf("body should be escaped:\n%s", out)
	}
}

func TestNotFound(t *testing.T) {
	v := NotFound(nil)
	if v.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want 404", v.StatusCode())
	}
}

func TestRegistry(t *testing.T) {
	r := Default()

	for _, name := range []string{IndexComponent, AboutComponent, PostComponent} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("%s should be registered", name)
		}
	}

	if _, ok := r.Lookup("./pages/index.go"); !ok {
		t.Error("Lookup should normalize component paths")
	}
	if _, ok := r.Lookup(core.NotFoundComponent); !ok {
		t.Error("404 page should be registered")
	}
	if _, ok := r.Lookup("pages/missing"); ok {
		t.Error("unexpected component pages/missing")
	}
}

func TestIndexLinksToAboutThenParagraph(t *testing.T) {
	out := renderView(t, Index(nil))

	want := `<a href="/about" title="About Page">About Page</a><p>My first Next.js projec</p></div>`
	if !strings.HasSuffix(out, want) {
		t.Errorf("expected about link followed by the paragraph:\n%s", out)
	}
}
