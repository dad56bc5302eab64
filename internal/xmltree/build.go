// Package xmltree folds an XML document into an in-memory element tree using
// the goxpp pull parser.
package xmltree

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"
	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"

	"github.com/goliatone/go-wxr/internal/failure"
)

var errUnbalanced = errors.New("xmltree: unbalanced element nesting")

// Build reads the whole document and returns a synthetic root node whose
// children are the top-level elements. Tokenizer failures are reported as
// parse failures.
func Build(r io.Reader) (*Node, error) {
	p := xpp.NewXMLPullParser(r, true, charset.NewReaderLabel)

	root := newNode("", nil)
	stack := []*Node{root}
	texts := []*strings.Builder{{}}

	for {
		event, err := p.Next()
		if err != nil {
			return nil, failure.Malformed(err)
		}

		switch event {
		case xpp.StartTag:
			node := newNode(qualifiedName(p), attributes(p))
			stack[len(stack)-1].append(node)
			stack = append(stack, node)
			texts = append(texts, &strings.Builder{})
		case xpp.Text:
			texts[len(texts)-1].WriteString(p.Text)
		case xpp.EndTag:
			if len(stack) < 2 {
				return nil, failure.Malformed(errUnbalanced)
			}
			stack[len(stack)-1].Text = texts[len(texts)-1].String()
			stack = stack[:len(stack)-1]
			texts = texts[:len(texts)-1]
		case xpp.EndDocument:
			if len(stack) != 1 {
				return nil, failure.Malformed(io.ErrUnexpectedEOF)
			}
			return root, nil
		}
	}
}

// Parse checks that data is an RSS document and builds its tree.
func Parse(data []byte) (*Node, error) {
	if err := DetectRSS(data); err != nil {
		return nil, err
	}
	return Build(bytes.NewReader(data))
}

// DetectRSS reports a parse failure unless data looks like an RSS feed.
func DetectRSS(data []byte) error {
	if gofeed.DetectFeedType(bytes.NewReader(data)) != gofeed.FeedTypeRSS {
		return failure.NotRSS()
	}
	return nil
}

// qualifiedName renders the element name with the prefix declared for its
// namespace. Undeclared prefixes are left as the decoder reported them.
func qualifiedName(p *xpp.XMLPullParser) string {
	if p.Space == "" {
		return p.Name
	}
	prefix, ok := p.Spaces[p.Space]
	if !ok {
		prefix = p.Space
	}
	if prefix == "" {
		return p.Name
	}
	return prefix + ":" + p.Name
}

func attributes(p *xpp.XMLPullParser) map[string]string {
	var attrs map[string]string
	for _, attr := range p.Attrs {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		if attrs == nil {
			attrs = make(map[string]string, len(p.Attrs))
		}
		attrs[attr.Name.Local] = attr.Value
	}
	return attrs
}

// TreeBuilder folds a document into a Node tree.
type TreeBuilder interface {
	Build(r io.Reader) (*Node, error)
}

// BuilderFunc adapts a function to TreeBuilder.
type BuilderFunc func(r io.Reader) (*Node, error)

// Build implements TreeBuilder.
func (f BuilderFunc) Build(r io.Reader) (*Node, error) { return f(r) }
