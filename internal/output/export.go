package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-wxr/internal/domain"
	"github.com/goliatone/go-wxr/internal/markdown"
)

// ExportMarkdown writes one markdown file with YAML front matter per post
// into dir and returns the written paths in post order.
func ExportMarkdown(dir string, content *domain.WordpressContent) ([]string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("output: export directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("output: create export directory: %w", err)
	}

	taken := map[string]struct{}{}
	paths := make([]string, 0, len(content.Posts))
	for _, post := range content.Posts {
		doc, err := markdown.EncodeDocument(post)
		if err != nil {
			return nil, err
		}

		name := fileName(post, taken)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, doc, 0o644); err != nil {
			return nil, fmt.Errorf("output: write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// fileName derives a filesystem-safe name from the post slug. Slugs that
// normalise to a name already written fall back to "<name>-<id>", then
// "<name>-<id>-2", "<name>-<id>-3" and so on until the name is unused.
func fileName(post domain.Post, taken map[string]struct{}) string {
	id := strconv.Itoa(post.ID)
	base, err := slug.Normalize(post.SlugValue())
	if err != nil || base == "" {
		base = "post-" + id
	}

	name := base
	for n := 1; isTaken(taken, name); n++ {
		name = base + "-" + id
		if n > 1 {
			name += "-" + strconv.Itoa(n)
		}
	}
	taken[name] = struct{}{}
	return name + ".md"
}

func isTaken(taken map[string]struct{}, name string) bool {
	_, ok := taken[name]
	return ok
}
