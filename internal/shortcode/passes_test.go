package shortcode

import "testing"

func TestRewriteCode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "[code]x[/code]", want: "<pre><code>x</code></pre>"},
		{name: "attributes", in: `[code lang="go"]fmt.Println()[/code]`, want: "<pre><code>fmt.Println()</code></pre>"},
		{name: "sourcecode", in: "[sourcecode language=\"php\"]\n<?php echo 1;\n[/sourcecode]", want: "<pre><code><?php echo 1;</code></pre>"},
		{name: "keeps inner blank lines", in: "[code]\na\n\nb\n[/code]", want: "<pre><code>a\n\nb</code></pre>"},
		{name: "no shortcode", in: "<p>hello</p>", want: "<p>hello</p>"},
		{name: "code inside sourcecode", in: `[sourcecode lang="text"]use [code]x[/code] for inline[/sourcecode]`, want: "<pre><code>use [code]x[/code] for inline</code></pre>"},
		{name: "sourcecode inside code", in: "[code]see [sourcecode]y[/sourcecode][/code]", want: "<pre><code>see [sourcecode]y[/sourcecode]</code></pre>"},
		{name: "consecutive blocks", in: "[code]a[/code] and [sourcecode]b[/sourcecode]", want: "<pre><code>a</code></pre> and <pre><code>b</code></pre>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RewriteCode(tc.in); got != tc.want {
				t.Fatalf("RewriteCode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStripCaption(t *testing.T) {
	in := `[caption id="attachment_1" align="alignnone"]<img src="a.jpg"/> A cat[/caption]`
	want := `<img src="a.jpg"/> A cat`
	if got := StripCaption(in); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExpandAudioEmitsSourcePerURL(t *testing.T) {
	got := ExpandAudio(`[audio "a.mp3" 'b.ogg']`)
	want := `<audio controls><source src="a.mp3"><source src="b.ogg"></audio>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExpandVideoInfersType(t *testing.T) {
	got := ExpandVideo(`[video mp4="https://example.com/clip.mp4"]`)
	want := `<video controls><source src="https://example.com/clip.mp4" type="video/mp4"></video>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got = ExpandVideo(`[video src="stream"]`)
	want = `<video controls><source src="stream"></video>`
	if got != want {
		t.Fatalf("expected no type for extensionless source, got %q", got)
	}
}

func TestInsertParagraphsSkipsPreBlocks(t *testing.T) {
	in := "one\n\ntwo\n\n<pre>a\n\nb</pre>"
	want := "one<p>two<pre>a\n\nb</pre>"
	if got := InsertParagraphs(in); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	if got := NormalizeLineEndings("a\r\nb\rc"); got != "a\nb\nc" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestDefaultPipelineOrder(t *testing.T) {
	in := "Intro\r\n\r\n[code]\r\nx := 1\r\n\r\ny := 2\r\n[/code]\r\n\r\n[audio \"a.mp3\"]"
	want := "Intro<pre><code>x := 1\n\ny := 2</code></pre><p><audio controls><source src=\"a.mp3\"></audio>"
	if got := DefaultPipeline().Run(in); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
