package wrapped

import (
	"testing"

	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
)

func engaged(likes, comments, shares int) linkedin.Post {
	return linkedin.Post{Engagement: linkedin.Engagement{Likes: likes, Comments: comments, Shares: shares}}
}

func TestSummarizeEngagement_TotalsAreSums(t *testing.T) {
	posts := []linkedin.Post{
		engaged(10, 2, 1),
		engaged(5, 0, 3),
		engaged(0, 0, 0),
	}

	got := SummarizeEngagement(posts)

	if got.TotalLikes != 15 || got.TotalComments != 2 || got.TotalShares != 4 {
		t.Errorf("totals = %d/%d/%d, want 15/2/4", got.TotalLikes, got.TotalComments, got.TotalShares)
	}
	if got.TotalEngagement != got.TotalLikes+got.TotalComments+got.TotalShares {
		t.Errorf("totalEngagement %d does not equal the sum of its parts", got.TotalEngagement)
	}
}

func TestSummarizeEngagement_AveragesRoundToNearest(t *testing.T) {
	// 10 likes over 3 posts = 3.33 -> 3; 5 comments over 3 = 1.67 -> 2.
	posts := []linkedin.Post{
		engaged(10, 5, 0),
		engaged(0, 0, 0),
		engaged(0, 0, 0),
	}

	got := SummarizeEngagement(posts)

	if got.AvgLikesPerPost != 3 {
		t.Errorf("avgLikesPerPost = %d, want 3", got.AvgLikesPerPost)
	}
	if got.AvgCommentsPerPost != 2 {
		t.Errorf("avgCommentsPerPost = %d, want 2", got.AvgCommentsPerPost)
	}
	if got.AverageEngagementPerPost != 5 {
		t.Errorf("averageEngagementPerPost = %d, want 5", got.AverageEngagementPerPost)
	}
}

func TestSummarizeEngagement_EmptySetIsAllZeros(t *testing.T) {
	got := SummarizeEngagement(nil)

	if got != (EngagementSummary{}) {
		t.Errorf("empty input should produce the zero summary, got %+v", got)
	}
}
