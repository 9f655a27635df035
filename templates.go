package fragments

import (
	"io/fs"

	"github.com/goliatone/go-fragment/pkg/renderers/templated"
)

// EmbeddedTemplates exposes the built-in fragment templates so callers can
// copy or extend them.
func EmbeddedTemplates() fs.FS {
	return templated.TemplatesFS()
}
