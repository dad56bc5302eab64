package shortcode

// Pass is one named rewrite step.
type Pass struct {
	Name  string
	Apply func(string) string
}

// Pipeline is an ordered list of passes.
type Pipeline []Pass

// DefaultPipeline returns the WordPress body rewrites in the order they must run.
// Paragraph insertion is last so it sees the <pre> blocks produced by RewriteCode.
func DefaultPipeline() Pipeline {
	return Pipeline{
		{Name: "line_endings", Apply: NormalizeLineEndings},
		{Name: "code", Apply: RewriteCode},
		{Name: "caption", Apply: StripCaption},
		{Name: "audio", Apply: ExpandAudio},
		{Name: "video", Apply: ExpandVideo},
		{Name: "paragraphs", Apply: InsertParagraphs},
	}
}

// Run applies every pass in order.
func (p Pipeline) Run(html string) string {
	for _, pass := range p {
		html = pass.Apply(html)
	}
	return html
}
