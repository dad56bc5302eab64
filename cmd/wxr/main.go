package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	parsecmd "github.com/goliatone/go-wxr/internal/commands/parse"
	"github.com/goliatone/go-wxr/internal/content"
	"github.com/goliatone/go-wxr/internal/di"
	"github.com/goliatone/go-wxr/internal/domain"
	"github.com/goliatone/go-wxr/internal/markdown"
	"github.com/goliatone/go-wxr/internal/output"
	"github.com/goliatone/go-wxr/internal/runtimeconfig"
)

var containerBuilder = di.NewContainer

const usage = `usage: wxr <command> [flags]

commands:
  parse:xml  convert an export into JSON, YAML or a summary, optionally writing markdown files
  preview    render one post (from an export or an exported markdown file) as HTML`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("wxr: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "parse:xml", "parse":
		return runParse(args[1:], stdout)
	case "preview":
		return runPreview(args[1:], stdout)
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runParse(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wxr-parse", flag.ContinueOnError)
	path := fs.String("path", "", "Path to the WordPress export (WXR) file")
	fs.StringVar(path, "p", "", "Shorthand for -path")
	configPath := fs.String("config", "", "Optional YAML settings file")
	format := fs.String("format", "", "Output format: json, yaml or summary (defaults to config)")
	exportDir := fs.String("export-dir", "", "Write one markdown file with front matter per post into this directory")
	normalizeSlugs := fs.Bool("normalize-slugs", false, "Normalise slugs derived from titles")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*path) == "" {
		return errors.New("-path is required")
	}

	cfg, err := runtimeconfig.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *exportDir != "" {
		cfg.Output.ExportDir = *exportDir
	}
	if *normalizeSlugs {
		cfg.Parser.NormalizeTitleSlugs = true
	}

	outFormat, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	container, err := containerBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap container: %w", err)
	}

	handler := container.ParseHandler(func(_ context.Context, _ parsecmd.ParseExportCommand, result *domain.WordpressContent) error {
		if dir := cfg.Output.ExportDir; dir != "" {
			files, err := output.ExportMarkdown(dir, result)
			if err != nil {
				return fmt.Errorf("export markdown: %w", err)
			}
			if outFormat == output.FormatSummary {
				fmt.Fprintf(stdout, "wrote %d markdown files to %s\n", len(files), dir)
			}
		}
		return output.Write(stdout, outFormat, result)
	})

	cmd := parsecmd.ParseExportCommand{
		Path:                *path,
		NormalizeTitleSlugs: cfg.Parser.NormalizeTitleSlugs,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute parse command: %w", err)
	}
	return nil
}

func runPreview(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wxr-preview", flag.ContinueOnError)
	path := fs.String("path", "", "Export (.xml) or exported markdown (.md) file")
	slugValue := fs.String("slug", "", "Slug of the post to preview when -path is an export")
	configPath := fs.String("config", "", "Optional YAML settings file")
	safe := fs.Bool("safe", false, "Drop raw HTML from the rendered body")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*path) == "" {
		return errors.New("-path is required")
	}

	var (
		fm   markdown.FrontMatter
		body []byte
	)
	if strings.EqualFold(filepath.Ext(*path), ".md") {
		raw, err := os.ReadFile(*path)
		if err != nil {
			return fmt.Errorf("read markdown: %w", err)
		}
		fm, body, err = markdown.ParseFrontMatter(raw)
		if err != nil {
			return err
		}
	} else {
		if *slugValue == "" {
			return errors.New("-slug is required when previewing an export")
		}
		cfg, err := runtimeconfig.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		container, err := containerBuilder(cfg)
		if err != nil {
			return fmt.Errorf("bootstrap container: %w", err)
		}
		result, err := container.Pipeline().ParseFile(context.Background(), *path)
		if err != nil {
			return fmt.Errorf("parse export: %w", err)
		}
		post, ok := result.FindPost(*slugValue)
		if !ok {
			return fmt.Errorf("no post with slug %q", *slugValue)
		}
		fm = markdown.FrontMatterFromPost(post)
		body = []byte(post.Content)
	}

	renderer := markdown.NewPreviewRenderer(
		markdown.WithPreviewSanitizer(content.NewSanitizer()),
		markdown.WithSafeMode(*safe),
	)
	html, err := renderer.Render(body)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	meta, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("encode front matter: %w", err)
	}
	fmt.Fprintf(stdout, "Front matter:\n%s\nRendered HTML:\n%s\n", meta, html)
	return nil
}
