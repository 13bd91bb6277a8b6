package wrapped

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
)

// maxHashtags caps the mostUsedHashtags list in the report.
const maxHashtags = 8

// A '#' followed by one or more word characters. Matching is
// case-preserving: #AI and #ai count separately.
var hashtagPattern = regexp.MustCompile(`#\w+`)

// HashtagCount is a hashtag with its usage count across the filtered
// post set.
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ContentSummary describes what the profile wrote: length, volume,
// and favorite hashtags.
type ContentSummary struct {
	AveragePostLength int            `json:"averagePostLength"`
	TotalWords        int            `json:"totalWords"`
	MostUsedHashtags  []HashtagCount `json:"mostUsedHashtags"`
}

// SummarizeContent derives the content features of the filtered set.
// Repeated occurrences of a hashtag within one post all count, and
// ties in hashtag frequency keep first-seen order.
func SummarizeContent(posts []linkedin.Post) ContentSummary {
	counts := make(map[string]int)
	var seen []string
	var totalLength, totalWords int

	for _, p := range posts {
		totalLength += utf8.RuneCountInString(p.Content)
		totalWords += len(strings.Fields(p.Content))
		for _, tag := range hashtagPattern.FindAllString(p.Content, -1) {
			if counts[tag] == 0 {
				seen = append(seen, tag)
			}
			counts[tag]++
		}
	}

	// seen is in first-seen order; a stable sort on descending count
	// keeps that order for ties.
	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})
	if len(seen) > maxHashtags {
		seen = seen[:maxHashtags]
	}

	top := make([]HashtagCount, 0, len(seen))
	for _, tag := range seen {
		top = append(top, HashtagCount{Tag: tag, Count: counts[tag]})
	}

	return ContentSummary{
		AveragePostLength: roundDiv(totalLength, len(posts)),
		TotalWords:        totalWords,
		MostUsedHashtags:  top,
	}
}
