package gotemplate_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-fragment/pkg/render/template/gotemplate"
	"github.com/goliatone/go-fragment/pkg/testsupport"
)

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if want := "Hello, Ada!"; result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if result != written {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
}

func TestEngine_EscapeFilterNotDoubleEscaped(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString(`{{ name|escapehtml }}|{{ missing|escapehtml }}`, map[string]any{"name": `<a href="x">it's</a>`})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	want := "&lt;a href=&quot;x&quot;&gt;it&#39;s&lt;/a&gt;|"
	if got != want {
		t.Fatalf("escape filter mismatch\nwant: %q\n got: %q", want, got)
	}
}

type namedContext map[string]any

func TestEngine_RenderAcceptsNamedMapsAndStructs(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("hello", namedContext{"name": "Grace"})
	if err != nil {
		t.Fatalf("render named map: %v", err)
	}
	if got != "Hello, Grace!" {
		t.Fatalf("named map mismatch: %q", got)
	}

	got, err = engine.Render("{{ Name }}", struct{ Name string }{Name: "Linus"})
	if err != nil {
		t.Fatalf("render struct: %v", err)
	}
	if got != "Linus" {
		t.Fatalf("struct mismatch: %q", got)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS()),
		gotemplate.WithGlobalData(map[string]any{"site": "docs"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := engine.GlobalContext(map[string]any{"env": "staging"}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.RenderTemplate("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "docs/staging" {
		t.Fatalf("global mismatch: %q", got)
	}
}

var filterSeq atomic.Int64

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	name := fmt.Sprintf("shout%d", filterSeq.Add(1))

	err := engine.RegisterFilter(name, func(input any, _ any) (any, error) {
		return strings.ToUpper(fmt.Sprint(input)) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter(name, func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderString("{{ name|"+name+" }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("filter mismatch: %q", got)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if err := engine.RegisterFilter(" ", nil); err == nil {
		t.Fatalf("expected error for empty filter")
	}
}

func TestEngine_WithBaseDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "disk.tpl"), []byte("{{ name|escapehtml }} from disk"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithBaseDir(" " + dir + " "))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.RenderTemplate("disk", map[string]any{"name": "<b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "&lt;b&gt; from disk" {
		t.Fatalf("base dir mismatch: %q", got)
	}

	goEngine, err := gotemplate.NewGoTemplate(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new go-template engine: %v", err)
	}
	got, err = goEngine.RenderTemplate("disk", map[string]any{"name": "<b>"})
	if err != nil {
		t.Fatalf("go-template render: %v", err)
	}
	if got != "&lt;b&gt; from disk" {
		t.Fatalf("go-template base dir mismatch: %q", got)
	}
}

func TestNewGoTemplate(t *testing.T) {
	engine, err := gotemplate.NewGoTemplate(
		gotemplate.WithFS(templatesFS()),
		gotemplate.WithGlobalData(map[string]any{"site": "docs", "env": "prod"}),
	)
	if err != nil {
		t.Fatalf("new go-template engine: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello, Ada!" || written != result {
		t.Fatalf("render template mismatch: result %q written %q", result, written)
	}

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render globals: %v", err)
	}
	if got != "docs/prod" {
		t.Fatalf("global mismatch: %q", got)
	}

	got, err = engine.RenderString(`{{ name|escapehtml }}`, map[string]any{"name": `"it's"`})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "&quot;it&#39;s&quot;" {
		t.Fatalf("escape filter mismatch: %q", got)
	}
}

func TestNewGoTemplate_PassesEngineOptions(t *testing.T) {
	withBang := gotemplatepkg.Option(func(e *gotemplatepkg.Engine) {
		e.RegisterPostHook(func(ctx *gotemplatepkg.HookContext) (string, error) {
			return ctx.Output + "!", nil
		})
	})

	engine, err := gotemplate.NewGoTemplate(
		gotemplate.WithFS(templatesFS()),
		gotemplate.WithGoTemplateOptions(nil, withBang),
	)
	if err != nil {
		t.Fatalf("new go-template engine: %v", err)
	}
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello, Ada!!" {
		t.Fatalf("post hook not applied: %q", got)
	}

	if _, err := gotemplate.NewGoTemplate(); err == nil {
		t.Fatalf("expected error without template source")
	}
}

func templatesFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello, {{ name }}!")},
		"use-global.tpl": {Data: []byte("{{ site }}/{{ env }}")},
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS()), gotemplate.WithExtension("tpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
