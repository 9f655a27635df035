package render

import (
	"context"
)

// ContentTypeHTML is reported by renderers producing HTML fragments.
const ContentTypeHTML = "text/html; charset=utf-8"

// Renderer converts a render Context into a byte representation of a single
// named fragment.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, data Context, options RenderOptions) ([]byte, error)
}
