package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-wxr/internal/di"
	"github.com/goliatone/go-wxr/internal/runtimeconfig"
)

const export = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:wp="http://wordpress.org/export/1.2/">
<channel>
	<title>Field notes</title>
	<item>
		<title>Hello World</title>
		<content:encoded><![CDATA[First <strong>post</strong>.]]></content:encoded>
		<wp:post_id>7</wp:post_id>
		<wp:post_date><![CDATA[2021-05-06 07:08:09]]></wp:post_date>
		<wp:post_date_gmt><![CDATA[2021-05-06 07:08:09]]></wp:post_date_gmt>
		<wp:post_modified><![CDATA[2021-05-06 07:08:09]]></wp:post_modified>
		<wp:post_modified_gmt><![CDATA[2021-05-06 07:08:09]]></wp:post_modified_gmt>
		<wp:post_name><![CDATA[]]></wp:post_name>
		<wp:status><![CDATA[publish]]></wp:status>
		<wp:post_type><![CDATA[post]]></wp:post_type>
	</item>
</channel>
</rss>`

func quietContainers(t *testing.T) {
	t.Helper()
	original := containerBuilder
	t.Cleanup(func() { containerBuilder = original })
	containerBuilder = func(cfg runtimeconfig.Config, opts ...di.Option) (*di.Container, error) {
		return original(cfg, append(opts, di.WithLogWriter(io.Discard))...)
	}
}

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.xml")
	if err := os.WriteFile(path, []byte(export), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

func TestRunParseWritesJSON(t *testing.T) {
	quietContainers(t)
	path := writeExport(t)

	var out bytes.Buffer
	if err := run([]string{"parse:xml", "-path", path, "-normalize-slugs"}, &out); err != nil {
		t.Fatalf("run parse: %v", err)
	}

	var decoded struct {
		Title string `json:"title"`
		Posts []struct {
			Slug string `json:"slug"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if decoded.Title != "Field notes" || len(decoded.Posts) != 1 {
		t.Fatalf("unexpected output %+v", decoded)
	}
	if decoded.Posts[0].Slug != "hello-world" {
		t.Fatalf("expected normalized slug, got %q", decoded.Posts[0].Slug)
	}
}

func TestRunParseExportsMarkdownThenPreview(t *testing.T) {
	quietContainers(t)
	path := writeExport(t)
	dir := t.TempDir()

	var out bytes.Buffer
	if err := run([]string{"parse", "-p", path, "-format", "summary", "-export-dir", dir}, &out); err != nil {
		t.Fatalf("run parse: %v", err)
	}
	if !strings.Contains(out.String(), "wrote 1 markdown files") {
		t.Fatalf("expected export notice, got %q", out.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one exported file, got %v (%v)", entries, err)
	}

	out.Reset()
	if err := run([]string{"preview", "-path", filepath.Join(dir, entries[0].Name())}, &out); err != nil {
		t.Fatalf("run preview: %v", err)
	}
	if !strings.Contains(out.String(), "<strong>post</strong>") {
		t.Fatalf("expected rendered body, got %q", out.String())
	}
}

func TestRunPreviewFromExport(t *testing.T) {
	quietContainers(t)
	path := writeExport(t)

	var out bytes.Buffer
	if err := run([]string{"preview", "-path", path, "-slug", "Hello World"}, &out); err != nil {
		t.Fatalf("run preview: %v", err)
	}
	if !strings.Contains(out.String(), "title: Hello World") {
		t.Fatalf("expected front matter, got %q", out.String())
	}

	if err := run([]string{"preview", "-path", path, "-slug", "missing"}, &out); err == nil {
		t.Fatal("expected error for unknown slug")
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	quietContainers(t)
	var out bytes.Buffer

	if err := run(nil, &out); err == nil {
		t.Fatal("expected usage error")
	}
	if err := run([]string{"bogus"}, &out); err == nil {
		t.Fatal("expected unknown command error")
	}
	if err := run([]string{"parse"}, &out); err == nil {
		t.Fatal("expected missing path error")
	}
	if err := run([]string{"parse", "-path", writeExport(t), "-format", "xml"}, &out); err == nil {
		t.Fatal("expected invalid format error")
	}
	if err := run([]string{"parse", "-path", filepath.Join(t.TempDir(), "none.xml")}, &out); err == nil {
		t.Fatal("expected missing file error")
	}
}
