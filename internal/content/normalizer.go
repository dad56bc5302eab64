// Package content turns raw WordPress post bodies into markdown and a plain
// text excerpt.
package content

import (
	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/internal/shortcode"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// Result holds the renditions of one post body.
type Result struct {
	HTML     string
	Markdown string
	Text     string
}

// Normalizer runs the shortcode pipeline, sanitizes the result and converts
// it to markdown and plain text.
type Normalizer struct {
	pipeline  shortcode.Pipeline
	sanitizer interfaces.HTMLSanitizer
	markdown  interfaces.MarkdownConverter
	text      interfaces.TextConverter
	logger    interfaces.Logger
}

// NormalizerOption customises a Normalizer.
type NormalizerOption func(*Normalizer)

// WithSanitizer overrides the HTML sanitizer.
func WithSanitizer(s interfaces.HTMLSanitizer) NormalizerOption {
	return func(n *Normalizer) {
		if s != nil {
			n.sanitizer = s
		}
	}
}

// WithMarkdownConverter overrides the HTML to markdown converter.
func WithMarkdownConverter(c interfaces.MarkdownConverter) NormalizerOption {
	return func(n *Normalizer) {
		if c != nil {
			n.markdown = c
		}
	}
}

// WithTextConverter overrides the HTML to plain text converter.
func WithTextConverter(c interfaces.TextConverter) NormalizerOption {
	return func(n *Normalizer) {
		if c != nil {
			n.text = c
		}
	}
}

// WithLogger sets the logger used for per-body debug entries.
func WithLogger(logger interfaces.Logger) NormalizerOption {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithPipeline overrides the shortcode passes.
func WithPipeline(p shortcode.Pipeline) NormalizerOption {
	return func(n *Normalizer) {
		if p != nil {
			n.pipeline = p
		}
	}
}

// NewNormalizer builds a Normalizer with the default collaborators.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		pipeline:  shortcode.DefaultPipeline(),
		sanitizer: NewSanitizer(),
		markdown:  NewMarkdownConverter(),
		text:      NewTextConverter(),
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Normalize converts one raw post body.
func (n *Normalizer) Normalize(raw string) (Result, error) {
	cleaned := n.sanitizer.Sanitize(n.pipeline.Run(raw))

	markdown, err := n.markdown.ToMarkdown(cleaned)
	if err != nil {
		return Result{}, err
	}
	text, err := n.text.ToText(cleaned)
	if err != nil {
		return Result{}, err
	}

	n.logger.Debug("content.normalized",
		"raw_bytes", len(raw),
		"html_bytes", len(cleaned),
		"markdown_bytes", len(markdown),
	)
	return Result{HTML: cleaned, Markdown: markdown, Text: text}, nil
}
