package interfaces

import "context"

// DocumentLoader reads a raw export document from a location such as a file path.
type DocumentLoader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// HTMLSanitizer strips unsafe markup while preserving structural tags.
type HTMLSanitizer interface {
	Sanitize(html string) string
}

// TextConverter extracts the readable plain text from an HTML fragment.
type TextConverter interface {
	ToText(html string) (string, error)
}
