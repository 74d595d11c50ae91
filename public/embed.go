// Package public embeds the files served verbatim at the site root.
package public

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticFS embed.FS

// FS returns the public files rooted at the site root.
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
