package core

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// RenderHTMLShell wraps a rendered page body in a full document. siteTitle is
// used when the page does not set its own title.
func RenderHTMLShell(page RenderedPage, siteTitle string) (string, error) {
	if siteTitle == "" {
		return "", fmt.Errorf("missing site title")
	}

	title := page.Title
	if title == "" {
		title = siteTitle
	}

	var b strings.Builder
	err := h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("UTF-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(title)),
			),
			h.Body(
				h.Div(h.ID("__blog"), g.Raw(page.Body)),
			),
		),
	).Render(&b)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
