// Package gologger routes wxr logs through github.com/goliatone/go-logger.
// Stage loggers such as "wxr.importer" become named go-logger children, so
// Focus can narrow output to one stage, and pipeline failures are logged with
// their go-errors category, text code and metadata.
package gologger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

const namespace = "wxr"

// Config captures the options exposed by the go-logger adapter. Focus entries
// may name a stage ("importer") or a full logger name ("wxr.importer").
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

var formats = map[string]func() glog.Option{
	"":        glog.WithLoggerTypeJSON,
	"json":    glog.WithLoggerTypeJSON,
	"console": glog.WithLoggerTypeConsole,
	"pretty":  glog.WithLoggerTypePretty,
}

var levels = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// Provider hands out one go-logger child per stage.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider constructs a logger provider backed by go-logger.
func NewProvider(cfg Config) (*Provider, error) {
	format, ok := formats[strings.ToLower(strings.TrimSpace(cfg.Format))]
	if !ok {
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", cfg.Format)
	}

	options := []glog.Option{format(), glog.WithRichErrorHandler(errorAttrs)}
	if level, ok := levels[strings.ToLower(strings.TrimSpace(cfg.Level))]; ok {
		options = append(options, glog.WithLevel(level))
	}
	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	root := glog.NewLogger(options...)
	if focus := stageNames(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{root: root}, nil
}

// GetLogger satisfies interfaces.LoggerProvider.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return wrap(p.root)
	}
	return wrap(p.root.GetLogger(qualify(name)))
}

// qualify places a bare stage name under the wxr namespace.
func qualify(name string) string {
	if name == namespace || strings.HasPrefix(name, namespace+".") {
		return name
	}
	return namespace + "." + name
}

func stageNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, qualify(trimmed))
		}
	}
	return out
}

// errorAttrs expands go-errors failures into flat attributes.
func errorAttrs(err error) []slog.Attr {
	var categorized *goerrors.Error
	if !errors.As(err, &categorized) {
		return nil
	}
	attrs := []slog.Attr{slog.String("error_category", string(categorized.Category))}
	if categorized.TextCode != "" {
		attrs = append(attrs, slog.String("error_text_code", categorized.TextCode))
	}
	if categorized.Code != 0 {
		attrs = append(attrs, slog.Int("error_code", categorized.Code))
	}
	for key, value := range categorized.Metadata {
		attrs = append(attrs, slog.Any("error_"+key, value))
	}
	return attrs
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

var (
	_ interfaces.Logger       = (*adapter)(nil)
	_ interfaces.FieldsLogger = (*adapter)(nil)
)

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

// WithFields requires a go-logger implementation that accepts structured
// fields; other loggers keep their existing fields.
func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	with, ok := l.inner.(glog.FieldsLogger)
	if len(fields) == 0 || !ok {
		return l
	}
	return wrap(with.WithFields(maps.Clone(fields)))
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.inner.WithContext(ctx))
}
