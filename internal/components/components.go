// Package components holds the shared building blocks of every page.
package components

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/3-lines-studio/blog/internal/core"
)

// PostRoute is the link template of a single post.
const PostRoute = "/p/[id]"

// Layout renders the header followed by children inside the bordered
// container.
func Layout(children ...g.Node) g.Node {
	return h.Div(
		g.Attr("style", LayoutStyle.String()),
		Header(),
		g.Group(children),
	)
}

func Header() g.Node {
	return h.Nav(
		Link(core.LinkTarget{Href: "/"}, g.Attr("style", LinkStyle.String()), g.Text("Home")),
		Link(core.LinkTarget{Href: "/about"}, g.Attr("style", LinkStyle.String()), g.Text("About")),
	)
}

// Link renders an anchor for target. When the target has a display path the
// template is kept in data-href. A target that cannot be resolved fails the
// render.
func Link(target core.LinkTarget, children ...g.Node) g.Node {
	href, err := target.Resolve()
	if err != nil {
		return g.NodeFunc(func(io.Writer) error {
			return fmt.Errorf("link %s: %w", target.Href, err)
		})
	}

	attrs := []g.Node{h.Href(href)}
	if target.As != "" && target.As != target.Href {
		attrs = append(attrs, g.Attr("data-href", target.Href))
	}

	return h.A(append(attrs, children...)...)
}

// PostLink is one list item of the blog index. The label and the link target
// come from the same id.
func PostLink(id string) g.Node {
	return h.Li(
		Link(core.LinkTarget{Href: PostRoute, As: "/p/" + id}, g.Text(id)),
	)
}

// PostList renders one PostLink per id, in order.
func PostList(ids []string) g.Node {
	return h.Ul(g.Map(ids, PostLink))
}
