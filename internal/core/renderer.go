package core

import (
	"context"
	"errors"
)

var ErrUnknownComponent = errors.New("unknown component")

type Renderer interface {
	Render(ctx context.Context, component string, props map[string]any) (RenderedPage, error)
}
