package render

import (
	"context"
	"errors"
	"fmt"
)

// Render looks up name in registry and renders data, applying options.
func Render(ctx context.Context, registry *Registry, name string, data Context, options RenderOptions) ([]byte, error) {
	if registry == nil {
		return nil, errors.New("render: registry is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer, err := registry.Get(name)
	if err != nil {
		return nil, err
	}

	out, err := renderer.Render(ctx, data, RenderOptions{})
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", name, err)
	}
	return Finish(out, options)
}

// Finish applies sanitising and writer fan-out to rendered bytes. Renderers
// call it so both Render and direct renderer use honour RenderOptions.
func Finish(out []byte, options RenderOptions) ([]byte, error) {
	if options.Sanitize {
		out = SanitizeFragment(out)
	}
	if options.Writer != nil {
		if _, err := options.Writer.Write(out); err != nil {
			return nil, fmt.Errorf("render: write output: %w", err)
		}
	}
	return out, nil
}
