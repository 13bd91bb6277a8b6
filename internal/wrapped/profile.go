// Package wrapped turns a raw collection of scraped LinkedIn posts
// (and, optionally, the reactions the profile gave to others) into a
// deterministic year-in-review report.
//
// The whole package is a pure function over its inputs: no I/O, no
// logging, no randomness. The same posts and the same year always
// produce an identical report, so it is safe to call concurrently
// from any number of goroutines.
//
// Data quality problems degrade instead of failing: unparseable
// timestamps drop the record, missing counters read as zero, and a
// missing reactions dataset just omits that part of the report.
package wrapped

import (
	"net/url"
	"strings"
)

// NormalizeProfileURL canonicalizes a profile link so two scraped
// references to the same profile compare equal. Query string and
// fragment are dropped, one trailing slash is removed from the path,
// and the result is lower-cased.
//
// The function is total: input that does not parse as a URL degrades
// to a best-effort string cleanup, and empty input normalizes to the
// empty string.
func NormalizeProfileURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return fallbackNormalize(trimmed)
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.ToLower(u.String())
}

// fallbackNormalize is the degraded path for strings url.Parse
// rejects: trim, lower-case, cut at the first '?', strip one
// trailing slash.
func fallbackNormalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "/")
}

// SameProfile reports whether two profile references point at the
// same profile: normalized forms equal and non-empty.
func SameProfile(a, b string) bool {
	na := NormalizeProfileURL(a)
	return na != "" && na == NormalizeProfileURL(b)
}
