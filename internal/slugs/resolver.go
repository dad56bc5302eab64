// Package slugs assigns unique slugs to posts and pages sharing one namespace.
package slugs

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-slug"
)

var trailingNumber = regexp.MustCompile(`-\d*$`)

// Resolver tracks every slug handed out so far. It is not safe for
// concurrent use; one Resolver serves one import.
type Resolver struct {
	used       map[string]struct{}
	normalizer slug.Normalizer
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithNormalizer runs title-derived slugs through normalizer before
// collision checks. Declared slugs are never rewritten.
func WithNormalizer(normalizer slug.Normalizer) Option {
	return func(r *Resolver) {
		r.normalizer = normalizer
	}
}

// WithDefaultNormalizer enables the go-slug default rules for title-derived slugs.
func WithDefaultNormalizer() Option {
	return WithNormalizer(slug.Default())
}

// NewResolver returns an empty Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{used: make(map[string]struct{})}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Resolve returns the slug for an item and records it. The declared slug is
// preferred, then the title. On collision the title without any trailing
// "-<number>" is tried, then "<that>-2", "<that>-3" and so on.
func (r *Resolver) Resolve(declared, title string) string {
	candidate := declared
	if candidate == "" {
		candidate = r.fromTitle(title)
	}
	if !r.taken(candidate) {
		return r.claim(candidate)
	}

	replacement := trailingNumber.ReplaceAllString(r.fromTitle(title), "")
	if replacement != "" && !r.taken(replacement) {
		return r.claim(replacement)
	}
	for n := 2; ; n++ {
		next := replacement + "-" + strconv.Itoa(n)
		if !r.taken(next) {
			return r.claim(next)
		}
	}
}

// Used reports whether value has already been assigned.
func (r *Resolver) Used(value string) bool {
	return r.taken(value)
}

func (r *Resolver) fromTitle(title string) string {
	if r.normalizer == nil {
		return title
	}
	normalized, err := r.normalizer.Normalize(strings.TrimSpace(title))
	if err != nil || normalized == "" {
		return title
	}
	return normalized
}

func (r *Resolver) taken(value string) bool {
	_, ok := r.used[value]
	return ok
}

func (r *Resolver) claim(value string) string {
	r.used[value] = struct{}{}
	return value
}
