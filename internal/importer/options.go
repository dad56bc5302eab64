package importer

import (
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// Option customises an Importer.
type Option func(*Importer)

// WithLoggerProvider routes importer, taxonomy and content logs through provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(i *Importer) {
		i.provider = provider
	}
}

// WithSanitizer overrides the HTML sanitizer applied to post bodies.
func WithSanitizer(s interfaces.HTMLSanitizer) Option {
	return func(i *Importer) {
		i.sanitizer = s
	}
}

// WithMarkdownConverter overrides the HTML to markdown converter.
func WithMarkdownConverter(c interfaces.MarkdownConverter) Option {
	return func(i *Importer) {
		i.markdown = c
	}
}

// WithTextConverter overrides the HTML to plain text converter.
func WithTextConverter(c interfaces.TextConverter) Option {
	return func(i *Importer) {
		i.text = c
	}
}

// WithBodyNormalizer replaces the whole body normalisation step.
func WithBodyNormalizer(n BodyNormalizer) Option {
	return func(i *Importer) {
		i.normalizer = n
	}
}

// WithNormalizeTitleSlugs runs slugs derived from titles through the go-slug
// default rules.
func WithNormalizeTitleSlugs(enabled bool) Option {
	return func(i *Importer) {
		if enabled {
			i.slugNormalizer = slug.Default()
		} else {
			i.slugNormalizer = nil
		}
	}
}

// WithSlugNormalizer sets a custom normalizer for title-derived slugs.
func WithSlugNormalizer(n slug.Normalizer) Option {
	return func(i *Importer) {
		i.slugNormalizer = n
	}
}

// WithSource records the export location on every log entry.
func WithSource(path string) Option {
	return func(i *Importer) {
		i.source = path
	}
}
