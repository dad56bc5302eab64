// Package shortcode rewrites WordPress shortcodes in post bodies into plain
// HTML. Each rewrite is a pure string transform; Pipeline applies them in a
// fixed order.
package shortcode

import (
	"path"
	"regexp"
	"strings"
)

// codePattern matches either block in one alternation so the first block
// claims its whole body, nested shortcodes included.
var codePattern = regexp.MustCompile(`(?s)\[(?:sourcecode[^\]]*\]\n*(.*?)\n*\[/sourcecode\]|code[^\]]*\]\n*(.*?)\n*\[/code\])`)

var (
	captionPattern  = regexp.MustCompile(`\[caption.+\](.+)\[/caption\]`)
	audioPattern    = regexp.MustCompile(`\[audio\s(.+)\]`)
	videoPattern    = regexp.MustCompile(`\[video\s(.+)\]`)
	quotedPattern   = regexp.MustCompile(`["'](.+?)["']`)
	dquotedPattern  = regexp.MustCompile(`"(.+?)"`)
	preBlockPattern = regexp.MustCompile(`(?s)<pre>.*?</pre>`)
)

const paragraphBreak = "<p>"

// NormalizeLineEndings rewrites CRLF and lone CR line endings to LF.
func NormalizeLineEndings(html string) string {
	html = strings.ReplaceAll(html, "\r\n", "\n")
	return strings.ReplaceAll(html, "\r", "\n")
}

// RewriteCode turns [code] and [sourcecode] blocks, with or without
// attributes, into <pre><code> blocks. Inner text, including any shortcode
// nested in it, is kept verbatim apart from newlines touching the opening and
// closing tags.
func RewriteCode(html string) string {
	if !strings.Contains(html, "code") {
		return html
	}
	return codePattern.ReplaceAllStringFunc(html, func(block string) string {
		groups := codePattern.FindStringSubmatch(block)
		inner := groups[1]
		if strings.HasPrefix(block, "[code") {
			inner = groups[2]
		}
		return "<pre><code>" + inner + "</code></pre>"
	})
}

// StripCaption replaces [caption] blocks with their inner content.
func StripCaption(html string) string {
	return captionPattern.ReplaceAllString(html, "$1")
}

// ExpandAudio turns [audio "a.mp3" 'b.ogg'] into an <audio> element with one
// <source> per quoted URL, in order.
func ExpandAudio(html string) string {
	return audioPattern.ReplaceAllStringFunc(html, func(match string) string {
		var b strings.Builder
		b.WriteString("<audio controls>")
		for _, src := range quotedValues(quotedPattern, match) {
			b.WriteString(`<source src="` + src + `">`)
		}
		b.WriteString("</audio>")
		return b.String()
	})
}

// ExpandVideo turns [video "a.mp4"] into a <video> element. Every source gets
// a video/<ext> type taken from its file extension.
func ExpandVideo(html string) string {
	return videoPattern.ReplaceAllStringFunc(html, func(match string) string {
		var b strings.Builder
		b.WriteString("<video controls>")
		for _, src := range quotedValues(dquotedPattern, match) {
			b.WriteString(`<source src="` + src + `"`)
			if subtype := extension(src); subtype != "" {
				b.WriteString(` type="video/` + subtype + `"`)
			}
			b.WriteString(">")
		}
		b.WriteString("</video>")
		return b.String()
	})
}

// InsertParagraphs turns blank lines into paragraph breaks, leaving the
// bodies of <pre> blocks untouched.
func InsertParagraphs(html string) string {
	html = strings.ReplaceAll(html, "\n\n", paragraphBreak)
	html = preBlockPattern.ReplaceAllStringFunc(html, func(block string) string {
		return strings.ReplaceAll(block, paragraphBreak, "\n\n")
	})
	return strings.ReplaceAll(html, paragraphBreak+"<pre>", "<pre>")
}

func quotedValues(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, m[1])
	}
	return values
}

func extension(src string) string {
	return strings.TrimPrefix(path.Ext(src), ".")
}
