// Package template defines the engine seam used by template-backed fragment
// renderers. The gotemplate subpackage provides the pongo2 implementation.
package template
