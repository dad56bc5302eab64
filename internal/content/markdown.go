package content

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	goerrors "github.com/goliatone/go-errors"
)

// mediaTags have no markdown form and are carried through as raw HTML blocks.
var mediaTags = []string{"audio", "video"}

// MarkdownConverter renders sanitized HTML as markdown.
type MarkdownConverter struct {
	conv *converter.Converter
}

// NewMarkdownConverter returns the html-to-markdown backed converter with the
// commonmark rules plus raw passthrough for audio and video embeds.
func NewMarkdownConverter() *MarkdownConverter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	for _, tag := range mediaTags {
		conv.Register.RendererFor(tag, converter.TagTypeBlock, base.RenderAsHTML, converter.PriorityEarly)
	}
	return &MarkdownConverter{conv: conv}
}

// ToMarkdown implements interfaces.MarkdownConverter.
func (c *MarkdownConverter) ToMarkdown(html string) (string, error) {
	if c == nil || c.conv == nil {
		c = NewMarkdownConverter()
	}
	markdown, err := c.conv.ConvertString(html)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "content: convert html to markdown")
	}
	return markdown, nil
}
