package wrapped

import (
	"sort"

	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
)

// DefaultTopPosts is how many top posts the assembled report carries.
// Callers wanting fewer slice the result themselves.
const DefaultTopPosts = 10

// TopPosts returns the k posts with the highest combined engagement,
// descending. The sort is stable, so ties keep their original
// relative order. Fewer than k posts returns them all.
func TopPosts(posts []linkedin.Post, k int) []linkedin.Post {
	if k <= 0 || len(posts) == 0 {
		return nil
	}
	ranked := make([]linkedin.Post, len(posts))
	copy(ranked, posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement.Total() > ranked[j].Engagement.Total()
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
