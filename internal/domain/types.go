// Package domain holds the structured shape produced from a WordPress export.
package domain

import "time"

// Status is the normalised publication state of a post or page.
type Status string

const (
	// StatusPublished marks content WordPress reported as "publish".
	StatusPublished Status = "published"
	// StatusDraft covers every other WordPress status, including missing ones.
	StatusDraft Status = "draft"
)

// StatusFromCode maps a raw wp:status code onto a Status. The mapping is
// total: anything other than "publish" is a draft.
func StatusFromCode(code string) Status {
	switch code {
	case "publish":
		return StatusPublished
	default:
		return StatusDraft
	}
}

// Category is a declared wp:category term.
type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Slug string `json:"slug" yaml:"slug"`
	Name string `json:"name" yaml:"name"`
}

// Tag is a declared wp:tag term.
type Tag struct {
	ID   int    `json:"id" yaml:"id"`
	Slug string `json:"slug" yaml:"slug"`
	Name string `json:"name" yaml:"name"`
}

// Post is a normalised post or page item.
type Post struct {
	ID            int        `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Content       string     `json:"content" yaml:"content"`
	ContentText   string     `json:"contentText" yaml:"contentText"`
	Status        Status     `json:"status" yaml:"status"`
	Slug          *string    `json:"slug" yaml:"slug"`
	IsPage        bool       `json:"isPage" yaml:"isPage"`
	PublishedDate *time.Time `json:"publishedDate" yaml:"publishedDate"`
	Categories    []Category `json:"categories" yaml:"categories"`
	Tags          []Tag      `json:"tags" yaml:"tags"`
	CreatedAt     time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" yaml:"updatedAt"`
}

// SlugValue returns the post slug or an empty string when unset.
func (p Post) SlugValue() string {
	if p.Slug == nil {
		return ""
	}
	return *p.Slug
}

// WordpressContent is the complete result of transforming one export.
type WordpressContent struct {
	Title      *string    `json:"title" yaml:"title"`
	Categories []Category `json:"categories" yaml:"categories"`
	Tags       []Tag      `json:"tags" yaml:"tags"`
	Posts      []Post     `json:"posts" yaml:"posts"`
}

// FindPost returns the first post carrying the given slug.
func (c *WordpressContent) FindPost(slug string) (Post, bool) {
	if c == nil {
		return Post{}, false
	}
	for _, post := range c.Posts {
		if post.SlugValue() == slug {
			return post, true
		}
	}
	return Post{}, false
}
