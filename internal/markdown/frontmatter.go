package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-wxr/internal/domain"
)

const frontMatterDelimiter = "---\n"

// FrontMatter is the metadata block written ahead of an exported post body.
type FrontMatter struct {
	ID            int        `yaml:"id"`
	Title         string     `yaml:"title"`
	Slug          string     `yaml:"slug"`
	Status        string     `yaml:"status"`
	IsPage        bool       `yaml:"isPage"`
	Summary       string     `yaml:"summary,omitempty"`
	CreatedAt     time.Time  `yaml:"createdAt"`
	UpdatedAt     time.Time  `yaml:"updatedAt"`
	PublishedDate *time.Time `yaml:"publishedDate,omitempty"`
	Categories    []string   `yaml:"categories,omitempty"`
	Tags          []string   `yaml:"tags,omitempty"`
}

// FrontMatterFromPost projects a post onto its front matter. Terms are listed by slug.
func FrontMatterFromPost(post domain.Post) FrontMatter {
	fm := FrontMatter{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.SlugValue(),
		Status:        string(post.Status),
		IsPage:        post.IsPage,
		Summary:       post.ContentText,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
		PublishedDate: post.PublishedDate,
	}
	for _, category := range post.Categories {
		fm.Categories = append(fm.Categories, category.Slug)
	}
	for _, tag := range post.Tags {
		fm.Tags = append(fm.Tags, tag.Slug)
	}
	return fm
}

// EncodeDocument renders a post as a markdown document with YAML front matter.
func EncodeDocument(post domain.Post) ([]byte, error) {
	meta, err := yaml.Marshal(FrontMatterFromPost(post))
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.Write(meta)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	buf.WriteString(post.Content)
	if len(post.Content) > 0 && post.Content[len(post.Content)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// ParseFrontMatter extracts metadata and the markdown body from source.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, bytes.TrimLeft(body, "\n"), nil
}
