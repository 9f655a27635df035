package render

import "io"

// RenderOptions describe per-call settings applied around a renderer without
// changing the fragment it produces.
type RenderOptions struct {
	// Sanitize passes the rendered fragment through a strict HTML policy that
	// strips any markup, keeping only escaped text.
	Sanitize bool
	// Writer, when set, receives the final bytes in addition to the returned
	// slice.
	Writer io.Writer
}
