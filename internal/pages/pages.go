package pages

import (
	"net/http"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/blog/internal/components"
	"github.com/3-lines-studio/blog/internal/core"
)

// Index lists every post id under the blog heading. props["posts"] holds the
// ids.
func Index(props map[string]any) View {
	return View{
		Body: components.Layout(
			h.H1(g.Text("My Blog")),
			components.PostList(stringList(props, "posts")),
			components.Link(core.LinkTarget{Href: "/about"}, h.Title("About Page"), g.Text("About Page")),
			h.P(g.Text("My first Next.js projec")),
		),
	}
}

func About(map[string]any) View {
	return View{
		Title: "About",
		Body: components.Layout(
			h.P(g.Text("This is the about page")),
		),
	}
}

// Post renders a single post from props["id"] and props["body"].
func Post(props map[string]any) View {
	id := stringProp(props, "id")
	return View{
		Title: id,
		Body: components.Layout(
			h.H1(g.Text(id)),
			h.P(g.Text(stringProp(props, "body"))),
		),
	}
}

func NotFound(map[string]any) View {
	return View{
		Title:  "404: This page could not be found",
		Status: http.StatusNotFound,
		Body: components.Layout(
			h.H1(g.Text("404")),
			h.P(g.Text("This page could not be found.")),
		),
	}
}

func stringProp(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

// stringList accepts both []string and the []any produced by decoding JSON or
// YAML props.
func stringList(props map[string]any, key string) []string {
	switch v := props[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
