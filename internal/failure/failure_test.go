package failure

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestKindsAreDistinguishable(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		check func(error) bool
		code  string
	}{
		{"io", IO(fs.ErrNotExist, "export.xml"), IsIO, CodeUnreadable},
		{"malformed", Malformed(errors.New("unexpected EOF")), IsParse, CodeMalformed},
		{"not rss", NotRSS(), IsParse, CodeNotRSS},
		{"missing", MissingField("rss/channel"), IsParse, CodeMissingField},
		{"id", InvalidID("wp:term_id", "abc"), IsData, CodeInvalidID},
		{"term", UnknownTerm("category", "news"), IsData, CodeUnknownTerm},
		{"date", InvalidDate(errors.New("bad"), "wp:post_date", "x"), IsData, CodeInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.check(tc.err) {
				t.Fatalf("expected category check to pass for %v", tc.err)
			}
			var typed *goerrors.Error
			if !errors.As(tc.err, &typed) {
				t.Fatalf("expected *goerrors.Error, got %T", tc.err)
			}
			if typed.TextCode != tc.code {
				t.Fatalf("expected text code %s, got %s", tc.code, typed.TextCode)
			}
		})
	}
}

func TestIOPreservesSource(t *testing.T) {
	err := IO(fs.ErrPermission, "/tmp/export.xml")
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected wrapped fs.ErrPermission, got %v", err)
	}
	if IsParse(err) || IsData(err) {
		t.Fatalf("io error must not match other kinds: %v", err)
	}
	if !strings.Contains(err.Error(), "/tmp/export.xml") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}
