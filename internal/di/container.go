// Package di wires the parser's collaborators from runtime configuration.
package di

import (
	"fmt"
	"io"

	"github.com/goliatone/go-wxr/internal/commands"
	parsecmd "github.com/goliatone/go-wxr/internal/commands/parse"
	"github.com/goliatone/go-wxr/internal/importer"
	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/internal/logging/console"
	"github.com/goliatone/go-wxr/internal/logging/gologger"
	"github.com/goliatone/go-wxr/internal/pipeline"
	"github.com/goliatone/go-wxr/internal/runtimeconfig"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// Container holds the configured services for one process.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer
	loader         interfaces.DocumentLoader
	importerOpts   []importer.Option

	importer *importer.Importer
	pipeline *pipeline.Pipeline
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithLogWriter redirects the console provider. Defaults to stderr.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// WithLoader overrides the document loader.
func WithLoader(l interfaces.DocumentLoader) Option {
	return func(c *Container) {
		c.loader = l
	}
}

// WithImporterOptions appends importer options after the configured ones.
func WithImporterOptions(opts ...importer.Option) Option {
	return func(c *Container) {
		c.importerOpts = append(c.importerOpts, opts...)
	}
}

// NewContainer validates cfg and builds the services it describes.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}

	importerOpts := []importer.Option{
		importer.WithLoggerProvider(c.loggerProvider),
		importer.WithNormalizeTitleSlugs(cfg.Parser.NormalizeTitleSlugs),
	}
	c.importer = importer.New(append(importerOpts, c.importerOpts...)...)
	c.pipeline = pipeline.New(
		pipeline.WithLoggerProvider(c.loggerProvider),
		pipeline.WithLoader(c.loader),
		pipeline.WithImporter(c.importer),
	)

	logging.RootLogger(c.loggerProvider).Debug("container.configured",
		"logging_provider", runtimeconfig.NormalizeProvider(cfg.Logging.Provider),
		"logging_enabled", cfg.Logging.Enabled,
		"normalize_title_slugs", cfg.Parser.NormalizeTitleSlugs,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Logging.Enabled {
		return nil
	}

	logCfg := c.Config.Logging
	switch runtimeconfig.NormalizeProvider(logCfg.Provider) {
	case "console":
		opts := console.Options{Writer: c.logWriter}
		if level, ok := console.ParseLevel(logCfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure gologger provider: %w", err)
		}
		c.loggerProvider = provider
	default:
		return fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, logCfg.Provider)
	}
	return nil
}

// LoggerProvider returns the configured provider, or nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Importer returns the configured importer.
func (c *Container) Importer() *importer.Importer {
	return c.importer
}

// Pipeline returns the load-parse-import pipeline.
func (c *Container) Pipeline() *pipeline.Pipeline {
	return c.pipeline
}

// ParseHandler builds the parse command handler bound to the pipeline, using
// the configured command timeout.
func (c *Container) ParseHandler(onResult parsecmd.ResultFunc) *parsecmd.ParseExportHandler {
	return parsecmd.NewParseExportHandler(
		c.pipeline,
		commands.CommandLogger(c.loggerProvider, "parse"),
		onResult,
		commands.WithTimeout[parsecmd.ParseExportCommand](c.Config.Commands.Timeout),
	)
}
