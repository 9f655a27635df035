package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	fragments "github.com/goliatone/go-fragment"
	"github.com/goliatone/go-fragment/pkg/data"
	"github.com/goliatone/go-fragment/pkg/prompt"
	"github.com/goliatone/go-fragment/pkg/render"
	"github.com/goliatone/go-fragment/pkg/render/template/gotemplate"
	"github.com/goliatone/go-fragment/pkg/renderers/templated"
)

const (
	enginePongo2     = "pongo2"
	engineGoTemplate = "go-template"
)

type config struct {
	fragment    string
	dataPath    string
	output      string
	interactive bool
	sanitize    bool
	verbose     bool
	list        bool
	engine      string
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.fragment, "fragment", fragments.Greeting, "fragment to render (see -list)")
	flag.StringVar(&cfg.dataPath, "data", "", "JSON or YAML file holding name and list")
	flag.StringVar(&cfg.output, "output", "", "output file (stdout if empty)")
	flag.BoolVar(&cfg.interactive, "interactive", false, "prompt for name and items")
	flag.BoolVar(&cfg.sanitize, "sanitize", false, "strip markup from the output")
	flag.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")
	flag.BoolVar(&cfg.list, "list", false, "list available fragments and exit")
	flag.StringVar(&cfg.engine, "engine", enginePongo2, "template engine for tpl.* fragments (pongo2, go-template)")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), cfg, logger, prompt.NewSurveyDriver(), os.Stdout); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("fragment-cli: %v", err)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger, driver prompt.Driver, stdout io.Writer) error {
	engineOpt, err := engineOption(cfg.engine)
	if err != nil {
		return err
	}
	registry, err := fragments.NewRegistry(engineOpt)
	if err != nil {
		return err
	}

	if cfg.list {
		for _, name := range registry.List() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	name := strings.TrimSpace(cfg.fragment)
	if !registry.Has(name) {
		return fmt.Errorf("%w: %q", render.ErrUnknownRenderer, name)
	}

	input, err := loadInput(ctx, cfg, name, driver)
	if err != nil {
		return err
	}
	logger.Debug("rendering fragment", "fragment", name, "sanitize", cfg.sanitize, "data", cfg.dataPath)

	out, err := render.Render(ctx, registry, name, input, render.RenderOptions{Sanitize: cfg.sanitize})
	if err != nil {
		return err
	}

	if cfg.output != "" {
		if err := os.WriteFile(cfg.output, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("fragment written", "path", cfg.output, "bytes", len(out))
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func engineOption(name string) (fragments.Option, error) {
	switch strings.TrimSpace(name) {
	case "", enginePongo2:
		return nil, nil
	case engineGoTemplate:
		engine, err := gotemplate.NewGoTemplate(gotemplate.WithFS(templated.TemplatesFS()))
		if err != nil {
			return nil, err
		}
		return fragments.WithTemplateRenderer(engine), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want %s or %s)", name, enginePongo2, engineGoTemplate)
	}
}

func loadInput(ctx context.Context, cfg config, name string, driver prompt.Driver) (render.Context, error) {
	switch {
	case cfg.dataPath != "":
		return data.Load(cfg.dataPath)
	case cfg.interactive && strings.HasSuffix(name, fragments.Greeting):
		return nil, nil
	case cfg.interactive && strings.HasSuffix(name, fragments.ListInList):
		return prompt.Collect(ctx, driver, prompt.ModeListInList)
	case cfg.interactive:
		return prompt.Collect(ctx, driver, prompt.ModeList)
	default:
		return nil, nil
	}
}
