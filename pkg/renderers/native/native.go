// Package native registers the pkg/fragment renderers with a render.Registry.
package native

import (
	"context"

	"github.com/goliatone/go-fragment/pkg/fragment"
	"github.com/goliatone/go-fragment/pkg/render"
)

// Registry names of the native renderers.
const (
	// NameGreeting renders the fixed greeting.
	NameGreeting = "greeting"
	// NameList renders "name: a, b".
	NameList = "list"
	// NameListInList renders one list per group, concatenated.
	NameListInList = "listInList"
)

// Greeting renders the greeting fragment, ignoring its data.
type Greeting struct{}

// List renders the list fragment.
type List struct{}

// ListInList renders the list-of-lists fragment.
type ListInList struct{}

var (
	_ render.Renderer = Greeting{}
	_ render.Renderer = List{}
	_ render.Renderer = ListInList{}
)

// Renderers returns the three fragment renderers.
func Renderers() []render.Renderer {
	return []render.Renderer{Greeting{}, List{}, ListInList{}}
}

// RegisterAll adds every fragment renderer to registry.
func RegisterAll(registry *render.Registry) error {
	for _, r := range Renderers() {
		if err := registry.Register(r); err != nil {
			return err
		}
	}
	return nil
}

func (Greeting) Name() string        { return NameGreeting }
func (Greeting) ContentType() string { return render.ContentTypeHTML }

func (Greeting) Render(ctx context.Context, _ render.Context, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return render.Finish([]byte(fragment.Greeting()), options)
}

func (List) Name() string        { return NameList }
func (List) ContentType() string { return render.ContentTypeHTML }

func (List) Render(ctx context.Context, data render.Context, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list, err := data.List()
	if err != nil {
		return nil, err
	}
	return render.Finish([]byte(fragment.RenderList(list)), options)
}

func (ListInList) Name() string        { return NameListInList }
func (ListInList) ContentType() string { return render.ContentTypeHTML }

func (ListInList) Render(ctx context.Context, data render.Context, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	nested, err := data.ListInList()
	if err != nil {
		return nil, err
	}
	return render.Finish([]byte(fragment.RenderListInList(nested)), options)
}
