package wrapped

import (
	"strconv"
	"strings"
	"time"

	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
)

// Timestamp layouts seen across scraped exports.
var publishedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// parsePublishedAt parses a raw scraped timestamp. It accepts the
// layouts above plus bare unix milliseconds, and reports failure
// instead of erroring so callers can drop the record.
func parsePublishedAt(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms > 0 {
		return time.UnixMilli(ms), true
	}
	return time.Time{}, false
}

// FilterPosts selects the posts that belong in the report: published
// in the given calendar year, not reshares, and (when profileURL is
// usable) authored by the target profile.
//
// If the author filter would empty a non-empty set, the pre-author
// set is returned instead. Author metadata on scraped posts is
// unreliable, and an empty report is a worse failure mode than a few
// mis-attributed posts. The same courtesy is deliberately NOT
// extended to the year filter: a year with no posts is an honest
// empty report.
func FilterPosts(posts []linkedin.Post, year int, profileURL string) []linkedin.Post {
	var authored []linkedin.Post
	for _, p := range posts {
		t, ok := parsePublishedAt(p.PublishedAt)
		if !ok || t.UTC().Year() != year {
			continue
		}
		if p.IsReshare() {
			continue
		}
		authored = append(authored, p)
	}

	target := NormalizeProfileURL(profileURL)
	if target == "" {
		return authored
	}

	var mine []linkedin.Post
	for _, p := range authored {
		if NormalizeProfileURL(p.Author.ProfileURL) == target {
			mine = append(mine, p)
		}
	}
	if len(mine) == 0 && len(authored) > 0 {
		return authored
	}
	return mine
}
