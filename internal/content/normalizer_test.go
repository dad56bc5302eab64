package content

import (
	"errors"
	"strings"
	"testing"
)

type recordingSanitizer struct {
	seen string
}

func (s *recordingSanitizer) Sanitize(html string) string {
	s.seen = html
	return html
}

type failingMarkdown struct{}

func (failingMarkdown) ToMarkdown(string) (string, error) {
	return "", errors.New("boom")
}

func TestSanitizerKeepsEmbedsAndDropsScripts(t *testing.T) {
	s := NewSanitizer()
	out := s.Sanitize(`<script>alert(1)</script><p>ok</p><audio controls><source src="a.mp3"></audio><pre><code>x</code></pre>`)

	if strings.Contains(out, "script") {
		t.Fatalf("expected script to be removed, got %q", out)
	}
	for _, want := range []string{"<p>ok</p>", "<audio", `src="a.mp3"`, "<pre><code>x</code></pre>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestTextConverterCollapsesLineBreaks(t *testing.T) {
	text, err := NewTextConverter().ToText("<p>Hello <b>world</b></p>\n\n<p>Second\nline</p><ul><li>one</li><li>two</li></ul>")
	if err != nil {
		t.Fatalf("ToText: %v", err)
	}
	if text != "Hello world Second line one two" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestMarkdownConverter(t *testing.T) {
	md, err := NewMarkdownConverter().ToMarkdown("<p>Hello <strong>world</strong></p>")
	if err != nil {
		t.Fatalf("ToMarkdown: %v", err)
	}
	if strings.TrimSpace(md) != "Hello **world**" {
		t.Fatalf("unexpected markdown %q", md)
	}
}

func TestNormalizerRunsShortcodesBeforeSanitize(t *testing.T) {
	sanitizer := &recordingSanitizer{}
	n := NewNormalizer(WithSanitizer(sanitizer))

	result, err := n.Normalize("Intro\r\n\r\n[code]x[/code]")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if sanitizer.seen != "Intro<pre><code>x</code></pre>" {
		t.Fatalf("sanitizer saw %q", sanitizer.seen)
	}
	if !strings.Contains(result.Markdown, "x") || !strings.Contains(result.Markdown, "```") {
		t.Fatalf("expected fenced code block in markdown, got %q", result.Markdown)
	}
	if result.Text != "Intro x" {
		t.Fatalf("unexpected text %q", result.Text)
	}
}

func TestNormalizerPropagatesConverterErrors(t *testing.T) {
	n := NewNormalizer(WithMarkdownConverter(failingMarkdown{}))
	if _, err := n.Normalize("<p>x</p>"); err == nil {
		t.Fatalf("expected converter error")
	}
}

func TestNormalizerKeepsMediaEmbedsInMarkdown(t *testing.T) {
	n := NewNormalizer()

	result, err := n.Normalize("Listen:\n\n[audio \"a.mp3\" \"b.mp3\"]\n\n[video \"clip.mp4\"]\n\n[code]x[/code]")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	md := result.Markdown
	if strings.Count(md, "<source") != 3 {
		t.Fatalf("expected three source entries in markdown, got %q", md)
	}
	first, second := strings.Index(md, `src="a.mp3"`), strings.Index(md, `src="b.mp3"`)
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected a.mp3 before b.mp3, got %q", md)
	}
	if !strings.Contains(md, "<audio") || !strings.Contains(md, "<video") || !strings.Contains(md, `type="video/mp4"`) {
		t.Fatalf("expected audio and typed video embeds, got %q", md)
	}
	if !strings.Contains(md, "```") {
		t.Fatalf("expected fenced code block alongside media, got %q", md)
	}
}
