package core

type PageAction int

const (
	ActionServeRouteFile PageAction = iota
	ActionNotFound
	ActionRenderStaticPrerender
	ActionRenderSSR
)

func (a PageAction) String() string {
	switch a {
	case ActionServeRouteFile:
		return "serve-route-file"
	case ActionNotFound:
		return "not-found"
	case ActionRenderStaticPrerender:
		return "render-static"
	default:
		return "render-ssr"
	}
}

type PageRequest struct {
	Mode        PageMode
	RequestPath string
	Manifest    *Manifest
}

type PageDecision struct {
	Action   PageAction
	HTMLPath string
}

// DecidePageAction picks how a request is answered. An export manifest is
// authoritative for static pages: a static path missing from it is a 404.
func DecidePageAction(req PageRequest) PageDecision {
	if req.Manifest != nil {
		if htmlPath, ok := req.Manifest.Lookup(req.RequestPath); ok {
			return PageDecision{Action: ActionServeRouteFile, HTMLPath: htmlPath}
		}
		if req.Mode == ModeStaticPrerender {
			return PageDecision{Action: ActionNotFound}
		}
	}

	if req.Mode == ModeStaticPrerender {
		return PageDecision{Action: ActionRenderStaticPrerender}
	}

	return PageDecision{Action: ActionRenderSSR}
}

// MatchStaticPath finds the static entry for requestPath.
func MatchStaticPath(entries []StaticPathData, requestPath string) (map[string]any, bool) {
	normalized := NormalizePath(requestPath)
	for _, entry := range entries {
		if NormalizePath(entry.Path) == normalized {
			return entry.Props, true
		}
	}
	return nil, false
}
