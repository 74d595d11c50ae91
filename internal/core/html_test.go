package core

import (
	"strings"
	"testing"
)

func TestRenderHTMLShell(t *testing.T) {
	t.Run("uses site title when the page has none", func(t *testing.T) {
		doc, err := RenderHTMLShell(RenderedPage{Body: "<p>hi</p>"}, "My <Blog>")
		if err != nil {
			t.Fatalf("RenderHTMLShell() error: %v", err)
		}
		if !strings.Contains(doc, "<title>My &lt;Blog&gt;</title>") {
			t.Errorf("expected escaped site title, got:\n%s", doc)
		}
		if !strings.Contains(doc, `<div id="__blog"><p>hi</p></div>`) {
			t.Errorf("expected body inside container, got:\n%s", doc)
		}
	})

	t.Run("page title replaces site title", func(t *testing.T) {
		doc, err := RenderHTMLShell(RenderedPage{Body: "x", Title: "About"}, "My Blog")
		if err != nil {
			t.Fatalf("RenderHTMLShell() error: %v", err)
		}
		if strings.Count(doc, "<title>") != 1 {
			t.Errorf("expected exactly one title, got:\n%s", doc)
		}
		if !strings.Contains(doc, "<title>About</title>") {
			t.Errorf("expected page title, got:\n%s", doc)
		}
		if strings.Contains(doc, "<title>My Blog</title>") {
			t.Error("site title should not be rendered when the page sets one")
		}
	})

	t.Run("document structure", func(t *testing.T) {
		doc, err := RenderHTMLShell(RenderedPage{Body: "<p>hi</p>", Title: "A & B"}, "My Blog")
		if err != nil {
			t.Fatalf("RenderHTMLShell() error: %v", err)
		}
		want := `<!doctype html><html lang="en"><head><meta charset="UTF-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1.0">` +
			`<title>A &amp; B</title></head><body><div id="__blog"><p>hi</p></div></body></html>`
		if doc != want {
			t.Errorf("RenderHTMLShell() =\n%s\nwant\n%s", doc, want)
		}
	})

	t.Run("missing site title", func(t *testing.T) {
		if _, err := RenderHTMLShell(RenderedPage{}, ""); err == nil {
			t.Error("expected error for empty site title")
		}
	})
}

func TestManifestRoundTrip(t *testing.T) {
	m := NewManifest()
	m.Routes["/about"] = "/about/index.html"
	m.NotFound = "/404.html"

	data, err := m.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	parsed, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() error: %v", err)
	}

	if got, ok := parsed.Lookup("/about/"); !ok || got != "/about/index.html" {
		t.Errorf("Lookup(/about/) = %q, %v", got, ok)
	}
	if parsed.NotFound != "/404.html" {
		t.Errorf("NotFound = %q, want /404.html", parsed.NotFound)
	}
}

func TestParseManifestRejectsUnknownVersion(t *testing.T) {
	if _, err := ParseManifest([]byte(`{"version": 7, "routes": {}}`)); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestETagStable(t *testing.T) {
	a := ETag([]byte("<p>hello</p>"))
	b := ETag([]byte("<p>hello</p>"))
	c := ETag([]byte("<p>world</p>"))
	if a != b {
		t.Errorf("ETag not stable: %s != %s", a, b)
	}
	if a == c {
		t.Errorf("ETag collision for different content: %s", a)
	}
	if !strings.HasPrefix(a, `W/"`) {
		t.Errorf("ETag = %s, want weak validator", a)
	}
}

func TestGetContentType(t *testing.T) {
	if got := GetContentType("robots.txt"); got != "text/plain; charset=utf-8" {
		t.Errorf("GetContentType(robots.txt) = %q", got)
	}
	if got := GetContentType("a.unknown"); got != "application/octet-stream" {
		t.Errorf("GetContentType(a.unknown) = %q", got)
	}
}
