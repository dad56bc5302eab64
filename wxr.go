// Package wxr converts WordPress eXtended RSS exports into structured content:
// site title, category and tag registries, and normalised posts and pages
// with markdown bodies, plain text excerpts, unique slugs and UTC dates.
package wxr

import (
	"context"

	"github.com/goliatone/go-wxr/internal/di"
	"github.com/goliatone/go-wxr/internal/domain"
	"github.com/goliatone/go-wxr/internal/failure"
	"github.com/goliatone/go-wxr/internal/importer"
	"github.com/goliatone/go-wxr/internal/pipeline"
)

type (
	// WordpressContent is the result of parsing one export.
	WordpressContent = domain.WordpressContent
	Post             = domain.Post
	Category         = domain.Category
	Tag              = domain.Tag
	Status           = domain.Status
)

const (
	StatusPublished = domain.StatusPublished
	StatusDraft     = domain.StatusDraft
)

// Option customises a single Parse or ParseFile call.
type Option = importer.Option

var (
	WithLoggerProvider      = importer.WithLoggerProvider
	WithSanitizer           = importer.WithSanitizer
	WithMarkdownConverter   = importer.WithMarkdownConverter
	WithTextConverter       = importer.WithTextConverter
	WithNormalizeTitleSlugs = importer.WithNormalizeTitleSlugs
	WithSlugNormalizer      = importer.WithSlugNormalizer
)

// Parse converts an in-memory export document.
func Parse(ctx context.Context, data []byte, opts ...Option) (*WordpressContent, error) {
	return newPipeline(opts).Parse(ctx, data)
}

// ParseFile reads and converts the export at path.
func ParseFile(ctx context.Context, path string, opts ...Option) (*WordpressContent, error) {
	return newPipeline(opts).ParseFile(ctx, path)
}

func newPipeline(opts []Option) *pipeline.Pipeline {
	return pipeline.New(pipeline.WithImporter(importer.New(opts...)))
}

// IsIOError reports an export that could not be read.
func IsIOError(err error) bool { return failure.IsIO(err) }

// IsParseError reports malformed XML, a non-RSS document or a missing required element.
func IsParseError(err error) bool { return failure.IsParse(err) }

// IsDataError reports well-formed input carrying unusable values.
func IsDataError(err error) bool { return failure.IsData(err) }

// Module bundles the services built from a Config.
type Module struct {
	container *di.Container
}

// New constructs a Module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// ParseFile reads and converts the export at path with the module's configuration.
func (m *Module) ParseFile(ctx context.Context, path string) (*WordpressContent, error) {
	return m.container.Pipeline().ParseFile(ctx, path)
}

// Parse converts an in-memory export with the module's configuration.
func (m *Module) Parse(ctx context.Context, data []byte) (*WordpressContent, error) {
	return m.container.Pipeline().Parse(ctx, data)
}
