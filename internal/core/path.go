package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func ValidateRoutePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(path, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(path, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(path, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	if strings.ContainsAny(path, "[]") {
		return fmt.Errorf("path cannot contain unresolved parameters")
	}

	return nil
}

// ExportFilePath maps a request path to the file that holds its exported
// HTML, relative to the export root: "/" is "index.html", "/about" is
// "about/index.html".
func ExportFilePath(requestPath string) string {
	normalized := NormalizePath(requestPath)
	if normalized == "/" {
		return "index.html"
	}
	return path.Join(strings.TrimPrefix(normalized, "/"), "index.html")
}

// ExportHTMLPath is the manifest form of ExportFilePath.
func ExportHTMLPath(requestPath string) string {
	return "/" + ExportFilePath(requestPath)
}
