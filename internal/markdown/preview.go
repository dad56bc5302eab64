package markdown

import (
	"bytes"

	goerrors "github.com/goliatone/go-errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-wxr/internal/domain"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// PreviewOption configures a PreviewRenderer.
type PreviewOption func(*PreviewRenderer)

// WithPreviewSanitizer runs rendered HTML through s.
func WithPreviewSanitizer(s interfaces.HTMLSanitizer) PreviewOption {
	return func(r *PreviewRenderer) {
		r.sanitizer = s
	}
}

// WithSafeMode drops raw HTML blocks (audio and video embeds included)
// instead of passing them through.
func WithSafeMode(enabled bool) PreviewOption {
	return func(r *PreviewRenderer) {
		r.safe = enabled
	}
}

// WithHardWraps renders single newlines inside a paragraph as <br>.
func WithHardWraps(enabled bool) PreviewOption {
	return func(r *PreviewRenderer) {
		r.hardWraps = enabled
	}
}

// PreviewRenderer turns the markdown body of an exported post back into
// HTML. The goldmark engine is built once and shared by every call.
type PreviewRenderer struct {
	sanitizer interfaces.HTMLSanitizer
	safe      bool
	hardWraps bool
	engine    goldmark.Markdown
}

var _ interfaces.PostRenderer = (*PreviewRenderer)(nil)

func NewPreviewRenderer(opts ...PreviewOption) *PreviewRenderer {
	r := &PreviewRenderer{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	var rendererOptions []renderer.Option
	if r.hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !r.safe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	r.engine = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)
	return r
}

// Render converts a markdown body to HTML.
func (r *PreviewRenderer) Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(body, &buf); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "render markdown preview")
	}
	if r.sanitizer == nil {
		return buf.Bytes(), nil
	}
	return []byte(r.sanitizer.Sanitize(buf.String())), nil
}

// RenderPost renders post.Content, or the title as a heading when the body
// is empty.
func (r *PreviewRenderer) RenderPost(post domain.Post) ([]byte, error) {
	if len(bytes.TrimSpace([]byte(post.Content))) == 0 {
		return r.Render([]byte("# " + post.Title + "\n"))
	}
	return r.Render([]byte(post.Content))
}
