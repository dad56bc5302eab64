// Package failure defines the error kinds surfaced by the export pipeline.
// Every kind is a go-errors category so callers can branch with IsCategory
// regardless of how deeply the error was wrapped.
package failure

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	// CategoryIO marks an export that could not be read.
	CategoryIO goerrors.Category = "io"
	// CategoryParse marks malformed XML or a required element that is missing.
	CategoryParse goerrors.Category = "parse"
	// CategoryData marks well-formed XML carrying values the pipeline cannot use.
	CategoryData goerrors.Category = "data"
)

const (
	CodeUnreadable   = "WXR_IO_UNREADABLE"
	CodeMalformed    = "WXR_PARSE_MALFORMED"
	CodeNotRSS       = "WXR_PARSE_NOT_RSS"
	CodeMissingField = "WXR_PARSE_MISSING_FIELD"
	CodeInvalidID    = "WXR_DATA_INVALID_ID"
	CodeUnknownTerm  = "WXR_DATA_UNKNOWN_TERM"
	CodeInvalidDate  = "WXR_DATA_INVALID_DATE"
)

// IO wraps a read failure for the supplied location.
func IO(err error, location string) error {
	return goerrors.Wrap(err, CategoryIO, fmt.Sprintf("read export %q", location)).
		WithTextCode(CodeUnreadable).
		WithMetadata(map[string]any{"path": location})
}

// Malformed wraps a tokenizer failure from the XML tree builder.
func Malformed(err error) error {
	return goerrors.Wrap(err, CategoryParse, "malformed export document").
		WithTextCode(CodeMalformed)
}

// NotRSS reports a document whose root element is not an RSS channel.
func NotRSS() error {
	return goerrors.New("export document is not an RSS feed", CategoryParse).
		WithTextCode(CodeNotRSS)
}

// MissingField reports a required element absent from the tree. The path is a
// slash separated element path such as "rss/channel".
func MissingField(path string) error {
	return goerrors.New(fmt.Sprintf("required element %q is missing", path), CategoryParse).
		WithTextCode(CodeMissingField).
		WithMetadata(map[string]any{"element": path})
}

// InvalidID reports a numeric identifier that failed to parse.
func InvalidID(field, value string) error {
	return goerrors.New(fmt.Sprintf("%s %q is not numeric", field, value), CategoryData).
		WithTextCode(CodeInvalidID).
		WithMetadata(map[string]any{"field": field, "value": value})
}

// UnknownTerm reports an item referencing a taxonomy slug never declared in the channel.
func UnknownTerm(domain, slug string) error {
	return goerrors.New(fmt.Sprintf("%s %q is not declared in the export", domain, slug), CategoryData).
		WithTextCode(CodeUnknownTerm).
		WithMetadata(map[string]any{"domain": domain, "slug": slug})
}

// InvalidDate wraps a timestamp parse failure.
func InvalidDate(err error, field, value string) error {
	return goerrors.Wrap(err, CategoryData, fmt.Sprintf("%s %q is not a valid timestamp", field, value)).
		WithTextCode(CodeInvalidDate).
		WithMetadata(map[string]any{"field": field, "value": value})
}

// IsIO reports whether err carries the io category.
func IsIO(err error) bool { return goerrors.IsCategory(err, CategoryIO) }

// IsParse reports whether err carries the parse category.
func IsParse(err error) bool { return goerrors.IsCategory(err, CategoryParse) }

// IsData reports whether err carries the data category.
func IsData(err error) bool { return goerrors.IsCategory(err, CategoryData) }
