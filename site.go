package blog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/3-lines-studio/blog/internal/components"
	"github.com/3-lines-studio/blog/internal/content"
	"github.com/3-lines-studio/blog/internal/core"
	"github.com/3-lines-studio/blog/internal/pages"
)

// Site returns the blog's routes for catalog: the index, the about page, one
// page per post and the legacy /post?title= form that redirects to it.
func Site(catalog *content.Catalog) []Route {
	return []Route{
		Page("/", pages.IndexComponent, WithStaticData(indexData(catalog))),
		Page("/about", pages.AboutComponent, WithStatic()),
		Page(components.PostRoute, pages.PostComponent, WithStaticData(postData(catalog))),
		Page("/post", pages.PostComponent, WithLoader(legacyPostRedirect(catalog))),
	}
}

func indexData(catalog *content.Catalog) core.StaticDataLoader {
	return func(context.Context) ([]StaticPathData, error) {
		return []StaticPathData{{
			Path:  "/",
			Props: map[string]any{"posts": catalog.IDs()},
		}}, nil
	}
}

func postData(catalog *content.Catalog) core.StaticDataLoader {
	return func(context.Context) ([]StaticPathData, error) {
		posts := catalog.Posts()
		entries := make([]StaticPathData, 0, len(posts))
		for _, post := range posts {
			path, err := core.FillTemplate(components.PostRoute, map[string]string{"id": post.ID})
			if err != nil {
				return nil, err
			}
			entries = append(entries, StaticPathData{
				Path:  path,
				Props: map[string]any{"id": post.ID, "body": post.Body},
			})
		}
		return entries, nil
	}
}

func legacyPostRedirect(catalog *content.Catalog) core.PropsLoader {
	return func(req *http.Request) (map[string]any, error) {
		title := req.URL.Query().Get("title")
		if title == "" {
			return nil, core.ErrNotFound
		}
		post, err := catalog.Lookup(title)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrNotFound, err)
		}
		path, err := core.FillTemplate(components.PostRoute, map[string]string{"id": post.ID})
		if err != nil {
			return nil, err
		}
		return nil, Redirect(path, http.StatusMovedPermanently)
	}
}
