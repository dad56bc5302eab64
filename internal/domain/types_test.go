package domain

import "testing"

func TestStatusFromCodeIsTotal(t *testing.T) {
	cases := map[string]Status{
		"publish": StatusPublished,
		"draft":   StatusDraft,
		"pending": StatusDraft,
		"private": StatusDraft,
		"future":  StatusDraft,
		"inherit": StatusDraft,
		"":        StatusDraft,
		"Publish": StatusDraft,
	}
	for code, want := range cases {
		if got := StatusFromCode(code); got != want {
			t.Fatalf("StatusFromCode(%q) = %s, want %s", code, got, want)
		}
	}
}

func TestFindPost(t *testing.T) {
	hello := "hello"
	content := &WordpressContent{Posts: []Post{{ID: 1}, {ID: 2, Slug: &hello}}}

	post, ok := content.FindPost("hello")
	if !ok || post.ID != 2 {
		t.Fatalf("expected post 2, got %+v (found=%v)", post, ok)
	}
	if _, ok := content.FindPost("missing"); ok {
		t.Fatal("expected missing slug not to be found")
	}
	var empty *WordpressContent
	if _, ok := empty.FindPost("hello"); ok {
		t.Fatal("expected nil content to find nothing")
	}
}
