package core

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrMissingParam = errors.New("missing link parameter")

// LinkTarget follows the client-side link convention: Href is a path template
// such as "/p/[id]" and As, when set, is the path the browser actually shows.
type LinkTarget struct {
	Href   string
	As     string
	Params map[string]string
}

// Resolve returns the path the rendered anchor points at.
func (t LinkTarget) Resolve() (string, error) {
	if t.As != "" {
		return t.As, nil
	}
	return FillTemplate(t.Href, t.Params)
}

// FillTemplate replaces every "[name]" segment of pattern with the escaped
// value of params[name].
func FillTemplate(pattern string, params map[string]string) (string, error) {
	if !strings.Contains(pattern, "[") {
		return pattern, nil
	}

	segments := strings.Split(pattern, "/")
	for i, segment := range segments {
		name, ok := paramName(segment)
		if !ok {
			continue
		}
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w %q in %s", ErrMissingParam, name, pattern)
		}
		segments[i] = url.PathEscape(value)
	}

	return strings.Join(segments, "/"), nil
}

// TemplateParams lists the parameter names of pattern in order.
func TemplateParams(pattern string) []string {
	var names []string
	for _, segment := range strings.Split(pattern, "/") {
		if name, ok := paramName(segment); ok {
			names = append(names, name)
		}
	}
	return names
}

// MatchTemplate reports whether path fits pattern and returns the captured
// parameters.
func MatchTemplate(pattern, path string) (map[string]string, bool) {
	patternSegments := strings.Split(NormalizePath(pattern), "/")
	pathSegments := strings.Split(NormalizePath(path), "/")
	if len(patternSegments) != len(pathSegments) {
		return nil, false
	}

	params := map[string]string{}
	for i, segment := range patternSegments {
		if name, ok := paramName(segment); ok {
			value, err := url.PathUnescape(pathSegments[i])
			if err != nil || value == "" {
				return nil, false
			}
			params[name] = value
			continue
		}
		if segment != pathSegments[i] {
			return nil, false
		}
	}
	return params, true
}

// RouterPattern converts a link template into a router pattern. ServeMux
// needs "{$}" to pin the root path; chi matches "/" exactly.
func RouterPattern(pattern string, serveMux bool) string {
	pattern = NormalizePath(pattern)
	if pattern == "/" {
		if serveMux {
			return "/{$}"
		}
		return "/"
	}

	segments := strings.Split(pattern, "/")
	for i, segment := range segments {
		if name, ok := paramName(segment); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

func paramName(segment string) (string, bool) {
	if len(segment) < 3 || segment[0] != '[' || segment[len(segment)-1] != ']' {
		return "", false
	}
	return segment[1 : len(segment)-1], true
}
