// Package dates resolves the timestamps of an export item.
package dates

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/goliatone/go-wxr/internal/failure"
	"github.com/goliatone/go-wxr/internal/xmltree"
)

// Layout is the fixed timestamp format WordPress writes into wp:post_date
// and its siblings.
const Layout = "2006-01-02 15:04:05"

// ZeroDate is the sentinel WordPress writes for GMT fields it never filled in.
const ZeroDate = "0000-00-00 00:00:00"

// Pair names a GMT field and the local field used when the GMT one is unset.
type Pair struct {
	GMT   string
	Local string
}

var (
	// Created is the publish instant pair.
	Created = Pair{GMT: "wp:post_date_gmt", Local: "wp:post_date"}
	// Modified is the last modification pair.
	Modified = Pair{GMT: "wp:post_modified_gmt", Local: "wp:post_modified"}
)

// Resolve reads pair from item and parses it as UTC. An absent GMT field and
// one holding ZeroDate are treated the same way.
func Resolve(item *xmltree.Node, pair Pair) (time.Time, error) {
	field, raw := pair.GMT, item.Field(pair.GMT)
	if !raw.IsPresent() || raw.Trimmed() == ZeroDate {
		field, raw = pair.Local, item.Field(pair.Local)
	}
	if !raw.IsPresent() {
		return time.Time{}, failure.MissingField("item/" + pair.Local)
	}

	value := raw.Trimmed()
	parsed, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, failure.InvalidDate(err, field, value)
	}
	return parsed, nil
}

// ParseAnnouncement parses a free-form pubDate value. Absent or blank values
// yield nil without error.
func ParseAnnouncement(raw xmltree.Field) (*time.Time, error) {
	if !raw.IsPresent() || raw.Blank() {
		return nil, nil
	}
	value := raw.Trimmed()
	parsed, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return nil, failure.InvalidDate(err, "pubDate", value)
	}
	parsed = parsed.UTC()
	return &parsed, nil
}
