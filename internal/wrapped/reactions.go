package wrapped

import (
	"sort"
	"strings"
	"time"

	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
)

// ReactionTypeCounts counts reactions per LinkedIn reaction kind.
// Unknown kinds in the input are dropped, not errored.
type ReactionTypeCounts struct {
	Like      int `json:"like"`
	Love      int `json:"love"`
	Support   int `json:"support"`
	Celebrate int `json:"celebrate"`
	Insight   int `json:"insight"`
	Funny     int `json:"funny"`
}

// AuthorReactions is one author the profile reacted to, with the
// number of reactions they received.
type AuthorReactions struct {
	Name          string `json:"name"`
	LinkedInURL   string `json:"linkedinUrl"`
	Info          string `json:"info,omitempty"`
	ReactionCount int    `json:"reactionCount"`
}

// PostReactions is one post the profile reacted to, with the number
// of reactions it received.
type PostReactions struct {
	PostContent   string `json:"postContent"`
	PostAuthor    string `json:"postAuthor"`
	PostURL       string `json:"postUrl"`
	ReactionCount int    `json:"reactionCount"`
}

// MonthlyReactionCount is one non-empty month bucket of reactions.
type MonthlyReactionCount struct {
	Month     string `json:"month"`
	Reactions int    `json:"reactions"`
}

// ReactionsSummary describes the reactions the profile gave to
// others' posts during the period.
type ReactionsSummary struct {
	TotalReactions   int                    `json:"totalReactions"`
	ReactionTypes    ReactionTypeCounts     `json:"reactionTypes"`
	TopAuthors       []AuthorReactions      `json:"topAuthors"`
	TopReactedPosts  []PostReactions        `json:"topReactedPosts"`
	MonthlyReactions []MonthlyReactionCount `json:"monthlyReactions"`
}

// SummarizeReactions aggregates the optional reactions dataset. A nil
// or empty dataset returns nil, which omits the reactions section
// from the report entirely; it never fails the overall aggregation.
//
// Authors group by normalized profile URL and posts by normalized
// post URL. Both lists come back sorted descending by count with
// first-seen tie order; callers slice whatever top-N they display.
// Records without a parseable timestamp still count toward totals
// but not toward any month bucket.
func SummarizeReactions(reactions []linkedin.Reaction) *ReactionsSummary {
	if len(reactions) == 0 {
		return nil
	}

	s := &ReactionsSummary{TotalReactions: len(reactions)}

	authorCounts := make(map[string]int)
	authorFirst := make(map[string]linkedin.Reaction)
	var authorOrder []string
	postCounts := make(map[string]int)
	postFirst := make(map[string]linkedin.Reaction)
	var postOrder []string
	var months [12]int

	for _, r := range reactions {
		countReactionType(&s.ReactionTypes, r.Type)

		authorKey := NormalizeProfileURL(r.AuthorProfileURL)
		if authorCounts[authorKey] == 0 {
			authorOrder = append(authorOrder, authorKey)
			authorFirst[authorKey] = r
		}
		authorCounts[authorKey]++

		postKey := NormalizeProfileURL(r.PostURL)
		if postCounts[postKey] == 0 {
			postOrder = append(postOrder, postKey)
			postFirst[postKey] = r
		}
		postCounts[postKey]++

		if t, ok := parsePublishedAt(r.ReactedAt); ok {
			months[int(t.UTC().Month())-1]++
		}
	}

	sort.SliceStable(authorOrder, func(i, j int) bool {
		return authorCounts[authorOrder[i]] > authorCounts[authorOrder[j]]
	})
	for _, key := range authorOrder {
		first := authorFirst[key]
		s.TopAuthors = append(s.TopAuthors, AuthorReactions{
			Name:          first.AuthorName,
			LinkedInURL:   first.AuthorProfileURL,
			Info:          first.AuthorInfo,
			ReactionCount: authorCounts[key],
		})
	}

	sort.SliceStable(postOrder, func(i, j int) bool {
		return postCounts[postOrder[i]] > postCounts[postOrder[j]]
	})
	for _, key := range postOrder {
		first := postFirst[key]
		s.TopReactedPosts = append(s.TopReactedPosts, PostReactions{
			PostContent:   first.PostContent,
			PostAuthor:    first.PostAuthor,
			PostURL:       first.PostURL,
			ReactionCount: postCounts[key],
		})
	}

	for i, n := range months {
		if n == 0 {
			continue
		}
		s.MonthlyReactions = append(s.MonthlyReactions, MonthlyReactionCount{
			Month:     time.Month(i + 1).String(),
			Reactions: n,
		})
	}

	return s
}

// countReactionType increments the counter matching the raw reaction
// kind. Matching is case-insensitive because exports carry both
// "LIKE" and "like"; anything outside the fixed set is dropped.
func countReactionType(c *ReactionTypeCounts, raw string) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "like":
		c.Like++
	case "love":
		c.Love++
	case "support":
		c.Support++
	case "celebrate":
		c.Celebrate++
	case "insight":
		c.Insight++
	case "funny":
		c.Funny++
	}
}
