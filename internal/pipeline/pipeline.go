// Package pipeline reads an export document and runs it through the importer.
package pipeline

import (
	"bytes"
	"context"

	"github.com/goliatone/go-wxr/internal/domain"
	"github.com/goliatone/go-wxr/internal/importer"
	"github.com/goliatone/go-wxr/internal/loader"
	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/internal/xmltree"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// Pipeline loads, parses and imports exports.
type Pipeline struct {
	loader   interfaces.DocumentLoader
	builder  xmltree.TreeBuilder
	importer *importer.Importer
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithLoader overrides the document loader.
func WithLoader(l interfaces.DocumentLoader) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.loader = l
		}
	}
}

// WithTreeBuilder overrides the XML tree builder.
func WithTreeBuilder(b xmltree.TreeBuilder) Option {
	return func(p *Pipeline) {
		if b != nil {
			p.builder = b
		}
	}
}

// WithImporter overrides the importer.
func WithImporter(i *importer.Importer) Option {
	return func(p *Pipeline) {
		if i != nil {
			p.importer = i
		}
	}
}

// WithLoggerProvider sets the provider used by the default collaborators.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(p *Pipeline) {
		p.provider = provider
	}
}

// New builds a Pipeline reading from the host filesystem.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		builder: xmltree.BuilderFunc(xmltree.Build),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.logger = logging.RootLogger(p.provider)
	if p.loader == nil {
		p.loader = loader.New(logging.LoaderLogger(p.provider))
	}
	if p.importer == nil {
		p.importer = importer.New(importer.WithLoggerProvider(p.provider))
	}
	return p
}

// Parse transforms an in-memory export. Extra importer options apply to this
// call only.
func (p *Pipeline) Parse(ctx context.Context, data []byte, opts ...importer.Option) (*domain.WordpressContent, error) {
	if err := xmltree.DetectRSS(data); err != nil {
		return nil, err
	}
	root, err := p.builder.Build(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	imp := p.importer
	if len(opts) > 0 {
		imp = imp.With(opts...)
	}
	return imp.Import(ctx, root)
}

// ParseFile loads the export at path and transforms it.
func (p *Pipeline) ParseFile(ctx context.Context, path string, opts ...importer.Option) (*domain.WordpressContent, error) {
	data, err := p.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("pipeline.document.loaded", "path", path, "bytes", len(data))

	opts = append([]importer.Option{importer.WithSource(path)}, opts...)
	return p.Parse(ctx, data, opts...)
}
