// Package output renders parsed exports for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-wxr/internal/domain"
)

// Format names a renderer.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatSummary Format = "summary"
)

// ParseFormat maps a configured name onto a Format. Blank means JSON.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatSummary:
		return FormatSummary, nil
	default:
		return "", fmt.Errorf("output: unsupported format %q", name)
	}
}

// Write renders content to w in format.
func Write(w io.Writer, format Format, content *domain.WordpressContent) error {
	switch format {
	case FormatJSON, "":
		return WriteJSON(w, content)
	case FormatYAML:
		return WriteYAML(w, content)
	case FormatSummary:
		return WriteSummary(w, content)
	default:
		return fmt.Errorf("output: unsupported format %q", format)
	}
}

// WriteJSON writes content as indented JSON.
func WriteJSON(w io.Writer, content *domain.WordpressContent) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(content)
}

// WriteYAML writes content as a YAML document.
func WriteYAML(w io.Writer, content *domain.WordpressContent) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(content); err != nil {
		return err
	}
	return enc.Close()
}

// WriteSummary writes a short human readable overview: site title, counts
// and one row per post.
func WriteSummary(w io.Writer, content *domain.WordpressContent) error {
	title := "(untitled)"
	if content.Title != nil && *content.Title != "" {
		title = *content.Title
	}

	pages := 0
	for _, post := range content.Posts {
		if post.IsPage {
			pages++
		}
	}

	if _, err := fmt.Fprintf(w, "Site: %s\nCategories: %d  Tags: %d  Posts: %d  Pages: %d\n\n",
		title, len(content.Categories), len(content.Tags), len(content.Posts)-pages, pages); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tSLUG\tCREATED")
	for _, post := range content.Posts {
		kind := "post"
		if post.IsPage {
			kind = "page"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			post.ID, kind, post.Status, post.SlugValue(), post.CreatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
