package interfaces

// MarkdownConverter turns sanitized HTML into Markdown.
type MarkdownConverter interface {
	ToMarkdown(html string) (string, error)
}

// PostRenderer renders a post's markdown body back to HTML for preview.
type PostRenderer interface {
	Render(body []byte) ([]byte, error)
}
