package ports

import (
	"context"

	"schoolmenu/internal/types"
)

// RendererPort is the host capability that turns a template and its
// parameters into an image. A nil image with a nil error means the host
// produced nothing.
type RendererPort interface {
	Render(ctx context.Context, dims types.Dimensions, templateID string, styleID string, params types.RenderParams) ([]byte, error)
}

type DeviceConfigPort interface {
	Resolution() types.Dimensions
	Config(key string) string
}
