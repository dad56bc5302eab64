// Package taxonomy reads the category and tag declarations of an export
// channel into read-only registries indexed by slug.
package taxonomy

import (
	"strconv"

	"github.com/goliatone/go-wxr/internal/domain"
	"github.com/goliatone/go-wxr/internal/failure"
	"github.com/goliatone/go-wxr/internal/xmltree"
)

const (
	categoryElement = "wp:category"
	tagElement      = "wp:tag"
	termIDElement   = "wp:term_id"
)

// Registry holds the declared categories and tags in document order.
// When two terms of the same taxonomy share a slug the later one wins the
// slug lookup; both remain in the ordered list.
type Registry struct {
	categories []domain.Category
	tags       []domain.Tag

	categoryBySlug map[string]domain.Category
	tagBySlug      map[string]domain.Tag
}

// Extract builds a Registry from the wp:category and wp:tag children of
// channel. A missing section yields an empty registry.
func Extract(channel *xmltree.Node) (*Registry, error) {
	nodes := channel.Children(categoryElement)
	reg := &Registry{
		categories:     make([]domain.Category, 0, len(nodes)),
		categoryBySlug: make(map[string]domain.Category, len(nodes)),
	}
	for _, node := range nodes {
		id, err := termID(node, categoryElement)
		if err != nil {
			return nil, err
		}
		category := domain.Category{
			ID:   id,
			Slug: node.Field("wp:category_nicename").String(),
			Name: node.Field("wp:cat_name").String(),
		}
		reg.categories = append(reg.categories, category)
		reg.categoryBySlug[category.Slug] = category
	}

	nodes = channel.Children(tagElement)
	reg.tags = make([]domain.Tag, 0, len(nodes))
	reg.tagBySlug = make(map[string]domain.Tag, len(nodes))
	for _, node := range nodes {
		id, err := termID(node, tagElement)
		if err != nil {
			return nil, err
		}
		tag := domain.Tag{
			ID:   id,
			Slug: node.Field("wp:tag_slug").String(),
			Name: node.Field("wp:tag_name").String(),
		}
		reg.tags = append(reg.tags, tag)
		reg.tagBySlug[tag.Slug] = tag
	}

	return reg, nil
}

func termID(node *xmltree.Node, element string) (int, error) {
	raw := node.Field(termIDElement).Trimmed()
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.InvalidID(element+"/"+termIDElement, raw)
	}
	return id, nil
}

// Categories returns a copy of the declared categories.
func (r *Registry) Categories() []domain.Category {
	if r == nil {
		return []domain.Category{}
	}
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Tags returns a copy of the declared tags.
func (r *Registry) Tags() []domain.Tag {
	if r == nil {
		return []domain.Tag{}
	}
	out := make([]domain.Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// Category looks up a category by slug.
func (r *Registry) Category(slug string) (domain.Category, bool) {
	if r == nil {
		return domain.Category{}, false
	}
	category, ok := r.categoryBySlug[slug]
	return category, ok
}

// Tag looks up a tag by slug.
func (r *Registry) Tag(slug string) (domain.Tag, bool) {
	if r == nil {
		return domain.Tag{}, false
	}
	tag, ok := r.tagBySlug[slug]
	return tag, ok
}

// Summary returns the category and tag counts, used for logging.
func (r *Registry) Summary() (categories, tags int) {
	if r == nil {
		return 0, 0
	}
	return len(r.categories), len(r.tags)
}
