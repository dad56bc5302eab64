package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-wxr/internal/failure"
)

func TestLoadReadsFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"exports/site.xml": &fstest.MapFile{Data: []byte("<rss/>")},
	}
	l := NewFS(fsys, nil)

	data, err := l.Load(context.Background(), " exports/site.xml ")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(data) != "<rss/>" {
		t.Fatalf("unexpected data %q", data)
	}
}

func TestLoadReportsMissingFileAsIO(t *testing.T) {
	l := NewFS(fstest.MapFS{}, nil)

	_, err := l.Load(context.Background(), "missing.xml")
	if !failure.IsIO(err) {
		t.Fatalf("expected io failure, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist to be preserved, got %v", err)
	}
}

func TestLoadFromHostFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.xml")
	if err := os.WriteFile(path, []byte("<rss></rss>"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := New(nil).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(data) != "<rss></rss>" {
		t.Fatalf("unexpected data %q", data)
	}
}

func TestLoadHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(nil).Load(ctx, "whatever.xml"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
