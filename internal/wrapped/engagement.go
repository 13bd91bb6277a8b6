package wrapped

import (
	"math"

	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
)

// EngagementSummary totals and averages the engagement counters of
// the filtered post set.
type EngagementSummary struct {
	TotalLikes               int `json:"totalLikes"`
	TotalComments            int `json:"totalComments"`
	TotalShares              int `json:"totalShares"`
	TotalEngagement          int `json:"totalEngagement"`
	AvgLikesPerPost          int `json:"avgLikesPerPost"`
	AvgCommentsPerPost       int `json:"avgCommentsPerPost"`
	AvgSharesPerPost         int `json:"avgSharesPerPost"`
	AverageEngagementPerPost int `json:"averageEngagementPerPost"`
}

// SummarizeEngagement sums likes/comments/shares over the posts and
// derives rounded per-post averages. Zero posts yields all zeros.
func SummarizeEngagement(posts []linkedin.Post) EngagementSummary {
	var s EngagementSummary
	for _, p := range posts {
		s.TotalLikes += p.Engagement.Likes
		s.TotalComments += p.Engagement.Comments
		s.TotalShares += p.Engagement.Shares
	}
	s.TotalEngagement = s.TotalLikes + s.TotalComments + s.TotalShares

	n := len(posts)
	s.AvgLikesPerPost = roundDiv(s.TotalLikes, n)
	s.AvgCommentsPerPost = roundDiv(s.TotalComments, n)
	s.AvgSharesPerPost = roundDiv(s.TotalShares, n)
	s.AverageEngagementPerPost = roundDiv(s.TotalEngagement, n)
	return s
}

// roundDiv divides and rounds to the nearest integer; division by
// zero yields 0 rather than an error.
func roundDiv(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
