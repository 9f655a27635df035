// Package testsupport holds golden-file and fixture helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fragment/pkg/render"
)

// Case pairs a fragment name with its input and expected HTML.
type Case struct {
	Name     string         `json:"name"`
	Fragment string         `json:"fragment"`
	Data     render.Context `json:"data"`
	Want     string         `json:"want"`
}

// LoadCases reads a JSON array of cases without requiring testing.T.
func LoadCases(path string) ([]Case, error) {
	if path == "" {
		return nil, errors.New("testsupport: cases path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read cases: %w", err)
	}
	return parseCases(data)
}

func parseCases(data []byte) ([]Case, error) {
	var out []Case
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal cases: %w", err)
	}
	return out, nil
}

// MustLoadCases is LoadCases failing the test on error.
func MustLoadCases(t *testing.T, path string) []Case {
	t.Helper()

	cases, err := LoadCases(path)
	if err != nil {
		t.Fatalf("load cases: %v", err)
	}
	return cases
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}

//go:embed testdata/cases.json
var embeddedCases []byte

// Cases returns the shared fragment cases every backend must satisfy.
func Cases(t *testing.T) []Case {
	t.Helper()

	out, err := parseCases(embeddedCases)
	if err != nil {
		t.Fatalf("embedded cases: %v", err)
	}
	return out
}
