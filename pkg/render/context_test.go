package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fragment/pkg/fragment"
	"github.com/goliatone/go-fragment/pkg/render"
)

func TestContext_List(t *testing.T) {
	ctx := render.Context{"name": "A", "list": []any{"x", 2, int64(3), uint64(4), 1.5, false}}

	got, err := ctx.List()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := fragment.List{Name: "A", Items: []string{"x", "2", "3", "4", "1.5", "false"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

type label string

type level uint16

func TestContext_ScalarKinds(t *testing.T) {
	ctx := render.Context{
		"name": label("kinds"),
		"list": []any{
			int8(-8), int16(16), int32(-32), uint(1), uint8(8), uint16(160), uint32(320),
			uintptr(7), float32(0.1), float32(2), level(3), label("<x>"),
		},
	}

	got, err := ctx.List()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := fragment.List{
		Name:  "kinds",
		Items: []string{"-8", "16", "-32", "1", "8", "160", "320", "7", "0.1", "2", "3", "<x>"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if out := fragment.RenderList(got); out != "kinds: -8, 16, -32, 1, 8, 160, 320, 7, 0.1, 2, 3, &lt;x&gt;" {
		t.Fatalf("rendered mismatch: %q", out)
	}
}

func TestContext_RoundTripTyped(t *testing.T) {
	list := fragment.List{Name: "<n>", Items: []string{"a", "b"}}
	gotList, err := render.ContextFromList(list).List()
	if err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if diff := cmp.Diff(list, gotList); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	nested := fragment.ListInList{Name: "n", Groups: [][]string{{"a"}, {}, {"b", "c"}}}
	gotNested, err := render.ContextFromListInList(nested).ListInList()
	if err != nil {
		t.Fatalf("decode nested: %v", err)
	}
	if diff := cmp.Diff(nested, gotNested); diff != "" {
		t.Fatalf("nested mismatch (-want +got):\n%s", diff)
	}

	direct, err := render.Context{"list": [][]string{{"z"}}}.Groups()
	if err != nil {
		t.Fatalf("decode direct groups: %v", err)
	}
	if diff := cmp.Diff([][]string{{"z"}}, direct); diff != "" {
		t.Fatalf("direct mismatch (-want +got):\n%s", diff)
	}
}

func TestContext_MissingName(t *testing.T) {
	name, err := render.Context{"list": []any{}}.Name()
	if err != nil || name != "" {
		t.Fatalf("expected empty name, got %q, %v", name, err)
	}
}

func TestContext_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		ctx   render.Context
		field string
		fn    func(render.Context) error
	}{
		{
			name:  "nil context",
			ctx:   nil,
			field: "list",
			fn:    func(c render.Context) error { _, err := c.Items(); return err },
		},
		{
			name:  "list is text",
			ctx:   render.Context{"list": "x"},
			field: "list",
			fn:    func(c render.Context) error { _, err := c.Items(); return err },
		},
		{
			name:  "leaf is a map",
			ctx:   render.Context{"list": []any{"a", map[string]any{"k": "v"}}},
			field: "list[1]",
			fn:    func(c render.Context) error { _, err := c.Items(); return err },
		},
		{
			name:  "group is text",
			ctx:   render.Context{"list": []any{[]any{"a"}, "b"}},
			field: "list[1]",
			fn:    func(c render.Context) error { _, err := c.Groups(); return err },
		},
		{
			name:  "group leaf is nil",
			ctx:   render.Context{"list": []any{[]any{"a", nil}}},
			field: "list[0][1]",
			fn:    func(c render.Context) error { _, err := c.Groups(); return err },
		},
		{
			name:  "name is a list",
			ctx:   render.Context{"name": []any{"a"}, "list": []any{}},
			field: "name",
			fn:    func(c render.Context) error { _, err := c.List(); return err },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn(tc.ctx)
			if !errors.Is(err, render.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var inputErr *render.InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected *InputError, got %T", err)
			}
			if inputErr.Field != tc.field {
				t.Fatalf("field mismatch: want %q got %q", tc.field, inputErr.Field)
			}
		})
	}
}
