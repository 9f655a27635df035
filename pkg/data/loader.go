// Package data loads render contexts from JSON or YAML documents.
package data

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fragment/pkg/render"
)

// Load reads a .json, .yaml or .yml file into a render context.
func Load(path string) (render.Context, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("data: path is required")
	}
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("data: read %s: %w", path, err)
	}
	return Parse(raw, path)
}

// LoadFS is Load against an fs.FS.
func LoadFS(fsys fs.FS, path string) (render.Context, error) {
	if fsys == nil {
		return nil, fmt.Errorf("data: fs is required")
	}
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("data: read %s: %w", path, err)
	}
	return Parse(raw, path)
}

// Parse decodes raw as JSON, falling back to YAML. source only labels errors.
func Parse(raw []byte, source string) (render.Context, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("data: file %s is empty", source)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err == nil {
		return render.Context(doc), nil
	}

	doc = nil
	if err := yaml.Unmarshal(raw, &doc); err == nil && doc != nil {
		normalised, ok := normalise(doc).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("data: parse %s: expected a mapping", source)
		}
		return render.Context(normalised), nil
	}

	return nil, fmt.Errorf("data: parse %s: invalid JSON or YAML mapping", source)
}

func checkExtension(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("data: unsupported file extension %q", filepath.Ext(path))
	}
}

// normalise converts YAML maps with non-string keys into map[string]any.
func normalise(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalise(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalise(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalise(item)
		}
		return out
	default:
		return v
	}
}
