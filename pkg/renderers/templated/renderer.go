// Package templated renders the fragments from pongo2 templates. Output
// matches the native renderers for every well-formed context.
package templated

import (
	"context"
	"fmt"

	"github.com/goliatone/go-fragment/pkg/render"
	"github.com/goliatone/go-fragment/pkg/render/template"
	"github.com/goliatone/go-fragment/pkg/render/template/gotemplate"
)

// Prefix is prepended to every templated renderer name.
const Prefix = "tpl."

// Template names, without extension, looked up in the engine.
const (
	// TemplateGreeting is the greeting template.
	TemplateGreeting = "greeting"
	// TemplateList is the list template. list_in_list includes it per group.
	TemplateList = "list"
	// TemplateListInList is the list-of-lists template.
	TemplateListInList = "list_in_list"
)

type kind int

const (
	kindGreeting kind = iota
	kindList
	kindListInList
)

// Renderer renders one fragment template.
type Renderer struct {
	name     string
	template string
	kind     kind
	engine   template.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// Option configures the renderer set.
type Option func(*options)

type options struct {
	engine template.TemplateRenderer
}

// WithTemplateRenderer swaps the engine, for example to load overridden
// templates from disk or to run them on gotemplate.NewGoTemplate.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(o *options) {
		if engine != nil {
			o.engine = engine
		}
	}
}

// New returns the greeting, list and listInList template renderers sharing
// one engine. Without WithTemplateRenderer the embedded templates are used.
func New(opts ...Option) ([]*Renderer, error) {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.engine == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("templated: init engine: %w", err)
		}
		cfg.engine = engine
	}

	return []*Renderer{
		{name: Prefix + "greeting", template: TemplateGreeting, kind: kindGreeting, engine: cfg.engine},
		{name: Prefix + "list", template: TemplateList, kind: kindList, engine: cfg.engine},
		{name: Prefix + "listInList", template: TemplateListInList, kind: kindListInList, engine: cfg.engine},
	}, nil
}

// RegisterAll builds the renderers and adds them to registry.
func RegisterAll(registry *render.Registry, opts ...Option) error {
	renderers, err := New(opts...)
	if err != nil {
		return err
	}
	for _, r := range renderers {
		if err := registry.Register(r); err != nil {
			return err
		}
	}
	return nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string { return r.name }

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string { return render.ContentTypeHTML }

// Render validates data the same way the native renderers do, then executes
// the template with the normalised values.
func (r *Renderer) Render(ctx context.Context, data render.Context, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view, err := r.view(data)
	if err != nil {
		return nil, err
	}
	out, err := r.engine.RenderTemplate(r.template, view)
	if err != nil {
		return nil, fmt.Errorf("templated: %s: %w", r.name, err)
	}
	return render.Finish([]byte(out), opts)
}

func (r *Renderer) view(data render.Context) (map[string]any, error) {
	switch r.kind {
	case kindList:
		list, err := data.List()
		if err != nil {
			return nil, err
		}
		return map[string]any{render.KeyName: list.Name, render.KeyList: list.Items}, nil
	case kindListInList:
		nested, err := data.ListInList()
		if err != nil {
			return nil, err
		}
		return map[string]any{render.KeyName: nested.Name, render.KeyList: nested.Groups}, nil
	default:
		return nil, nil
	}
}
