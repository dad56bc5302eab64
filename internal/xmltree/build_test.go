package xmltree

import (
	"strings"
	"testing"

	"github.com/goliatone/go-wxr/internal/failure"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:wp="http://wordpress.org/export/1.2/">
<channel>
	<title>Field Notes</title>
	<wp:category><wp:term_id>3</wp:term_id><wp:category_nicename>news</wp:category_nicename></wp:category>
	<wp:category><wp:term_id>4</wp:term_id><wp:category_nicename>misc</wp:category_nicename></wp:category>
	<item>
		<title>First</title>
		<content:encoded><![CDATA[<p>Hello & welcome</p>]]></content:encoded>
		<wp:post_name></wp:post_name>
		<category domain="category" nicename="news"><![CDATA[News]]></category>
		<category>Loose</category>
	</item>
</channel>
</rss>`

func TestBuildIndexesRepeatedElementsInOrder(t *testing.T) {
	root, err := Parse([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	channel := root.Path("rss", "channel")
	if channel == nil {
		t.Fatal("expected rss/channel")
	}
	if got := channel.Field("title").String(); got != "Field Notes" {
		t.Fatalf("expected channel title, got %q", got)
	}

	cats := channel.Children("wp:category")
	if len(cats) != 2 {
		t.Fatalf("expected 2 wp:category nodes, got %d", len(cats))
	}
	if cats[0].Field("wp:term_id").String() != "3" || cats[1].Field("wp:term_id").String() != "4" {
		t.Fatal("expected categories in document order")
	}
}

func TestBuildKeepsCDATAAndAttributes(t *testing.T) {
	root, err := Parse([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	item := root.Path("rss", "channel", "item")

	if got := item.Field("content:encoded").String(); got != "<p>Hello & welcome</p>" {
		t.Fatalf("unexpected content %q", got)
	}

	refs := item.Children("category")
	if len(refs) != 2 {
		t.Fatalf("expected 2 category refs, got %d", len(refs))
	}
	if nicename, ok := refs[0].Attr("nicename"); !ok || nicename != "news" {
		t.Fatalf("expected nicename attribute, got %q", nicename)
	}
	if refs[1].HasAttrs() {
		t.Fatal("expected bare category to carry no attributes")
	}
	rss := root.Child("rss")
	if version, _ := rss.Attr("version"); version != "2.0" {
		t.Fatalf("expected version attribute, got %q", version)
	}
	if _, ok := rss.Attr("wp"); ok {
		t.Fatal("expected xmlns declarations to be dropped")
	}
}

func TestFieldDistinguishesAbsentFromEmpty(t *testing.T) {
	root, err := Parse([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	item := root.Path("rss", "channel", "item")

	empty := item.Field("wp:post_name")
	if !empty.IsPresent() || !empty.Blank() {
		t.Fatalf("expected present blank field, got %+v", empty)
	}
	missing := item.Field("wp:status")
	if missing.IsPresent() {
		t.Fatal("expected absent field")
	}
	if missing.Or("fallback") != "fallback" || empty.Or("fallback") != "fallback" {
		t.Fatal("expected fallback for blank fields")
	}
}

func TestBuildReportsMalformedDocuments(t *testing.T) {
	_, err := Build(strings.NewReader(`<rss><channel><title>x</channel></rss>`))
	if err == nil {
		t.Fatal("expected malformed document error")
	}
	if !failure.IsParse(err) {
		t.Fatalf("expected parse category, got %v", err)
	}
}

func TestBuildReportsTruncatedDocuments(t *testing.T) {
	_, err := Build(strings.NewReader(`<rss><channel>`))
	if !failure.IsParse(err) {
		t.Fatalf("expected parse category for truncated input, got %v", err)
	}
}

func TestParseRejectsNonRSS(t *testing.T) {
	_, err := Parse([]byte(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
	if !failure.IsParse(err) {
		t.Fatalf("expected parse category, got %v", err)
	}
	_, err = Parse([]byte(`not xml at all`))
	if !failure.IsParse(err) {
		t.Fatalf("expected parse category for plain text, got %v", err)
	}
}

func TestPathStopsAtMissingStep(t *testing.T) {
	root, err := Parse([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if root.Path("rss", "missing", "item") != nil {
		t.Fatal("expected nil for missing path")
	}
	var nilNode *Node
	if nilNode.Child("x") != nil || nilNode.Field("x").IsPresent() {
		t.Fatal("expected nil node reads to be safe")
	}
}
