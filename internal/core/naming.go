package core

import (
	"path/filepath"
	"strings"
)

// ComponentKey turns a component reference such as "./pages/index.go" into
// the registry key "pages/index".
func ComponentKey(componentPath string) string {
	name := strings.TrimPrefix(componentPath, "./")
	name = strings.TrimPrefix(name, "/")
	name = filepath.ToSlash(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" {
		return "pages/index"
	}
	return name
}
