// Package importer walks a parsed export tree once and assembles the
// structured site content.
package importer

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-wxr/internal/content"
	"github.com/goliatone/go-wxr/internal/dates"
	"github.com/goliatone/go-wxr/internal/domain"
	"github.com/goliatone/go-wxr/internal/failure"
	"github.com/goliatone/go-wxr/internal/logging"
	"github.com/goliatone/go-wxr/internal/slugs"
	"github.com/goliatone/go-wxr/internal/taxonomy"
	"github.com/goliatone/go-wxr/internal/xmltree"
	"github.com/goliatone/go-wxr/pkg/interfaces"
)

// UntitledPost replaces blank item titles.
const UntitledPost = "Untitled post"

const (
	postTypePost = "post"
	postTypePage = "page"

	domainCategory = "category"
	domainTag      = "post_tag"
)

// BodyNormalizer converts a raw post body into its markdown and text renditions.
type BodyNormalizer interface {
	Normalize(raw string) (content.Result, error)
}

// Importer turns an export tree into domain.WordpressContent. An Importer
// holds no per-run state and may be reused.
type Importer struct {
	provider       interfaces.LoggerProvider
	sanitizer      interfaces.HTMLSanitizer
	markdown       interfaces.MarkdownConverter
	text           interfaces.TextConverter
	normalizer     BodyNormalizer
	slugNormalizer slug.Normalizer
	source         string

	opts []Option
}

// New builds an Importer with the default collaborators.
func New(opts ...Option) *Importer {
	i := &Importer{opts: opts}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	if i.normalizer == nil {
		i.normalizer = content.NewNormalizer(
			content.WithSanitizer(i.sanitizer),
			content.WithMarkdownConverter(i.markdown),
			content.WithTextConverter(i.text),
			content.WithLogger(logging.ContentLogger(i.provider)),
		)
	}
	return i
}

// With returns a new Importer carrying the receiver's options followed by opts.
func (i *Importer) With(opts ...Option) *Importer {
	combined := make([]Option, 0, len(i.opts)+len(opts))
	combined = append(combined, i.opts...)
	combined = append(combined, opts...)
	return New(combined...)
}

// run is the state of one Import call.
type run struct {
	registry *taxonomy.Registry
	slugs    *slugs.Resolver
	logger   interfaces.Logger
}

// Import transforms the tree rooted at root. Any failure aborts the whole
// import and no partial result is returned.
func (i *Importer) Import(ctx context.Context, root *xmltree.Node) (*domain.WordpressContent, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.WithItemContext(logging.ImporterLogger(i.provider), i.source, "", "").WithContext(ctx)

	rss := root.Child("rss")
	if rss == nil {
		return nil, failure.MissingField("rss")
	}
	channel := rss.Child("channel")
	if channel == nil {
		return nil, failure.MissingField("rss/channel")
	}

	registry, err := taxonomy.Extract(channel)
	if err != nil {
		return nil, err
	}
	categoryCount, tagCount := registry.Summary()
	logging.TaxonomyLogger(i.provider).Debug("taxonomy.extracted", "categories", categoryCount, "tags", tagCount)

	var slugOpts []slugs.Option
	if i.slugNormalizer != nil {
		slugOpts = append(slugOpts, slugs.WithNormalizer(i.slugNormalizer))
	}
	state := &run{
		registry: registry,
		slugs:    slugs.NewResolver(slugOpts...),
		logger:   logger,
	}

	items := channel.Children("item")
	logger.Debug("importer.started", "items", len(items))

	posts := make([]domain.Post, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		postType, ok := item.Field("wp:post_type").Value()
		if !ok {
			return nil, failure.MissingField("item/wp:post_type")
		}
		if postType != postTypePost && postType != postTypePage {
			logger.Debug("importer.item.skipped", "post_type", postType)
			continue
		}

		post, err := i.assemble(state, item, postType)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	result := &domain.WordpressContent{
		Title:      channelTitle(channel),
		Categories: registry.Categories(),
		Tags:       registry.Tags(),
		Posts:      posts,
	}
	logger.Info("importer.completed",
		"posts", len(posts),
		"skipped", len(items)-len(posts),
		"categories", categoryCount,
		"tags", tagCount,
	)
	return result, nil
}

func channelTitle(channel *xmltree.Node) *string {
	field := channel.Field("title")
	if !field.IsPresent() {
		return nil
	}
	title := field.String()
	return &title
}

func (i *Importer) assemble(state *run, item *xmltree.Node, postType string) (domain.Post, error) {
	rawID, ok := item.Field("wp:post_id").Value()
	if !ok {
		return domain.Post{}, failure.MissingField("item/wp:post_id")
	}
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return domain.Post{}, failure.InvalidID("wp:post_id", rawID)
	}
	logger := logging.WithItemContext(state.logger, "", strconv.Itoa(id), postType)

	titleField := item.Field("title")
	title := titleField.String()
	if titleField.Blank() {
		title = UntitledPost
	}

	body, ok := item.Field("content:encoded").Value()
	if !ok {
		return domain.Post{}, failure.MissingField("item/content:encoded")
	}
	normalized, err := i.normalizer.Normalize(body)
	if err != nil {
		return domain.Post{}, err
	}

	createdAt, err := dates.Resolve(item, dates.Created)
	if err != nil {
		return domain.Post{}, err
	}
	updatedAt, err := dates.Resolve(item, dates.Modified)
	if err != nil {
		return domain.Post{}, err
	}
	published, err := dates.ParseAnnouncement(item.Field("pubDate"))
	if err != nil {
		logger.Warn("importer.item.pubdate_invalid", "error", err.Error())
		published = nil
	}

	categories, tags, err := resolveTerms(state.registry, item)
	if err != nil {
		return domain.Post{}, err
	}

	slugValue := state.slugs.Resolve(item.Field("wp:post_name").Trimmed(), title)

	post := domain.Post{
		ID:            id,
		Title:         title,
		Content:       normalized.Markdown,
		ContentText:   normalized.Text,
		Status:        domain.StatusFromCode(item.Field("wp:status").Trimmed()),
		Slug:          &slugValue,
		IsPage:        postType == postTypePage,
		PublishedDate: published,
		Categories:    categories,
		Tags:          tags,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	logger.Debug("importer.item.assembled", "slug", slugValue, "status", post.Status)
	return post, nil
}

// resolveTerms maps the item's category references onto declared terms.
// References without attributes and unknown domains are ignored.
func resolveTerms(registry *taxonomy.Registry, item *xmltree.Node) ([]domain.Category, []domain.Tag, error) {
	categories := []domain.Category{}
	tags := []domain.Tag{}
	seenCategories := map[int]struct{}{}
	seenTags := map[int]struct{}{}

	for _, ref := range item.Children("category") {
		if !ref.HasAttrs() {
			continue
		}
		refDomain, _ := ref.Attr("domain")
		nicename, _ := ref.Attr("nicename")

		switch refDomain {
		case domainCategory:
			category, ok := registry.Category(nicename)
			if !ok {
				return nil, nil, failure.UnknownTerm(domainCategory, nicename)
			}
			if _, dup := seenCategories[category.ID]; dup {
				continue
			}
			seenCategories[category.ID] = struct{}{}
			categories = append(categories, category)
		case domainTag:
			tag, ok := registry.Tag(nicename)
			if !ok {
				return nil, nil, failure.UnknownTerm(domainTag, nicename)
			}
			if _, dup := seenTags[tag.ID]; dup {
				continue
			}
			seenTags[tag.ID] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return categories, tags, nil
}
