// Package fragments renders small HTML fragments (a greeting, a name-prefixed
// list, and a list of such lists) through a registry of named renderers.
//
// The typed API lives in pkg/fragment. This package wires the native and
// pongo2-backed renderers together:
//
//	out, err := fragments.RenderHTML(ctx, fragments.List, fragments.Context{
//		"name": "Fruit",
//		"list": []any{"apple", "pear"},
//	})
//	// out == "Fruit: apple, pear"
package fragments
