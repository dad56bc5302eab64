package content

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips unsafe markup from post bodies while keeping the
// structural tags produced by shortcode expansion.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer built on the bluemonday UGC policy with
// audio and video embeds allowed.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("controls").OnElements("audio", "video")
	policy.AllowAttrs("src", "type").OnElements("source")
	return &Sanitizer{policy: policy}
}

// Sanitize implements interfaces.HTMLSanitizer.
func (s *Sanitizer) Sanitize(html string) string {
	if s == nil || s.policy == nil {
		return html
	}
	return s.policy.Sanitize(html)
}
