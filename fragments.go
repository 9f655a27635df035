package fragments

import (
	"context"
	"fmt"

	"github.com/goliatone/go-fragment/pkg/render"
	"github.com/goliatone/go-fragment/pkg/render/template"
	"github.com/goliatone/go-fragment/pkg/renderers/native"
	"github.com/goliatone/go-fragment/pkg/renderers/templated"
)

// Context aliases render.Context for callers using the root package only.
type Context = render.Context

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Fragment names served by the native backend. Prefix them with
// templated.Prefix to use the pongo2 templates instead.
const (
	Greeting   = native.NameGreeting
	List       = native.NameList
	ListInList = native.NameListInList
)

// Option configures NewRegistry.
type Option func(*options)

type options struct {
	skipTemplates bool
	engine        template.TemplateRenderer
}

// WithoutTemplates registers only the native renderers.
func WithoutTemplates() Option {
	return func(o *options) {
		o.skipTemplates = true
	}
}

// WithTemplateRenderer replaces the embedded template engine.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// NewRegistry returns a registry holding the native renderers and, unless
// disabled, the templated ones.
func NewRegistry(opts ...Option) (*render.Registry, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	registry := render.NewRegistry()
	if err := native.RegisterAll(registry); err != nil {
		return nil, fmt.Errorf("fragments: register native renderers: %w", err)
	}
	if cfg.skipTemplates {
		return registry, nil
	}
	if err := templated.RegisterAll(registry, templated.WithTemplateRenderer(cfg.engine)); err != nil {
		return nil, fmt.Errorf("fragments: register templated renderers: %w", err)
	}
	return registry, nil
}

// RenderHTML renders the named fragment with a fresh default registry. It is
// the simplest entry point for callers that just want HTML output.
func RenderHTML(ctx context.Context, name string, data Context, renderOptions ...RenderOptions) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	var opts RenderOptions
	if len(renderOptions) > 0 {
		opts = renderOptions[0]
	}
	return render.Render(ctx, registry, name, data, opts)
}
