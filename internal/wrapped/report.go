package wrapped

import (
	"math"
	"time"

	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
)

// Input is everything Generate needs. Posts and Reactions are
// already-scraped datasets; fetching them is someone else's job.
type Input struct {
	Posts      []linkedin.Post
	Reactions  []linkedin.Reaction
	ProfileURL string
	// Year selects the reporting window. Zero means the current
	// calendar year at the time of the call.
	Year int
}

// PostingFrequency describes how often the profile posted.
type PostingFrequency struct {
	PostsPerMonth float64 `json:"postsPerMonth"`
}

// Report is the assembled year-in-review. Every field is derived
// purely from the filtered input set; renderers and exporters
// downstream consume it as-is.
type Report struct {
	Year             int               `json:"year"`
	TotalPosts       int               `json:"totalPosts"`
	Engagement       EngagementSummary `json:"engagement"`
	Content          ContentSummary    `json:"content"`
	TopPosts         []linkedin.Post   `json:"topPosts"`
	Timeline         Timeline          `json:"timeline"`
	PostingFrequency PostingFrequency  `json:"postingFrequency"`
	Reactions        *ReactionsSummary `json:"reactions,omitempty"`
}

// Generate runs the full aggregation: filter the posts down to the
// reporting window, summarize engagement, content, top posts and the
// monthly timeline over that one filtered set, and independently
// summarize the reactions dataset when present.
//
// The clock is read at most once, to default the year; everything
// after that is deterministic.
func Generate(in Input) *Report {
	year := in.Year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	filtered := FilterPosts(in.Posts, year, in.ProfileURL)

	return &Report{
		Year:       year,
		TotalPosts: len(filtered),
		Engagement: SummarizeEngagement(filtered),
		Content:    SummarizeContent(filtered),
		TopPosts:   TopPosts(filtered, DefaultTopPosts),
		Timeline:   BuildTimeline(filtered),
		PostingFrequency: PostingFrequency{
			PostsPerMonth: round1(float64(len(filtered)) / 12),
		},
		Reactions: SummarizeReactions(in.Reactions),
	}
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
