package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/net/html"
)

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "ol": true, "p": true,
	"pre": true, "section": true, "table": true, "td": true, "th": true,
	"tr": true, "ul": true,
}

var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}

// TextConverter extracts a single-line plain text rendition of HTML.
type TextConverter struct{}

// NewTextConverter returns the goquery backed converter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// ToText implements interfaces.TextConverter. Block boundaries become line
// breaks, then every run of line breaks collapses to one space.
func (TextConverter) ToText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "content: parse html for text")
	}

	var b strings.Builder
	for _, node := range doc.Selection.Nodes {
		writeText(&b, node)
	}
	return collapseLines(b.String()), nil
}

func writeText(b *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(node.Data)
		return
	case html.ElementNode:
		if skippedElements[node.Data] {
			return
		}
	}

	block := node.Type == html.ElementNode && blockElements[node.Data]
	if block {
		b.WriteByte('\n')
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeText(b, child)
	}
	if block {
		b.WriteByte('\n')
	}
}

func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
