package pipeline

import (
	"context"
	"io"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-wxr/internal/failure"
	"github.com/goliatone/go-wxr/internal/importer"
	"github.com/goliatone/go-wxr/internal/loader"
	"github.com/goliatone/go-wxr/internal/xmltree"
)

const export = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:wp="http://wordpress.org/export/1.2/">
<channel>
	<title>Pipeline Site</title>
	<item>
		<title>Only Post</title>
		<content:encoded><![CDATA[[code]x[/code]]]></content:encoded>
		<wp:post_id>1</wp:post_id>
		<wp:post_date>2021-05-06 07:08:09</wp:post_date>
		<wp:post_modified>2021-05-06 07:08:09</wp:post_modified>
		<wp:post_name>only-post</wp:post_name>
		<wp:status>publish</wp:status>
		<wp:post_type>post</wp:post_type>
	</item>
</channel>
</rss>`

func TestParseFileFromFS(t *testing.T) {
	fsys := fstest.MapFS{"exports/site.xml": {Data: []byte(export)}}
	p := New(WithLoader(loader.NewFS(fsys, nil)))

	result, err := p.ParseFile(context.Background(), "exports/site.xml")
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if *result.Title != "Pipeline Site" || len(result.Posts) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Posts[0].SlugValue() != "only-post" {
		t.Fatalf("unexpected slug %q", result.Posts[0].SlugValue())
	}
}

func TestParseFileMissing(t *testing.T) {
	p := New(WithLoader(loader.NewFS(fstest.MapFS{}, nil)))
	if _, err := p.ParseFile(context.Background(), "missing.xml"); !failure.IsIO(err) {
		t.Fatalf("expected io failure, got %v", err)
	}
}

func TestParseRejectsNonRSS(t *testing.T) {
	_, err := New().Parse(context.Background(), []byte(`<html><body>nope</body></html>`))
	if !failure.IsParse(err) {
		t.Fatalf("expected parse failure, got %v", err)
	}
}

func TestParseUsesInjectedBuilderAndPerCallOptions(t *testing.T) {
	calls := 0
	builder := xmltree.BuilderFunc(func(r io.Reader) (*xmltree.Node, error) {
		calls++
		return xmltree.Build(r)
	})
	p := New(WithTreeBuilder(builder))

	result, err := p.Parse(context.Background(), []byte(export), importer.WithNormalizeTitleSlugs(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected injected builder to run once, ran %d", calls)
	}
	if result.Posts[0].SlugValue() != "only-post" {
		t.Fatalf("declared slug should be kept, got %q", result.Posts[0].SlugValue())
	}
}
