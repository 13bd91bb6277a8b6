package wrapped

import (
	"time"

	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
)

// MonthActivity is one non-empty month bucket of the timeline.
type MonthActivity struct {
	Month           string `json:"month"`
	Posts           int    `json:"posts"`
	TotalEngagement int    `json:"totalEngagement"`
}

// Timeline is the month-by-month view of the filtered post set.
// MostActiveMonth and LeastActiveMonth are empty when there are no
// buckets at all.
type Timeline struct {
	MonthlyBreakdown []MonthActivity `json:"monthlyBreakdown"`
	MostActiveMonth  string          `json:"mostActiveMonth,omitempty"`
	LeastActiveMonth string          `json:"leastActiveMonth,omitempty"`
}

// BuildTimeline buckets posts by calendar month. Buckets are keyed by
// month-of-year internally so the breakdown always comes out in
// calendar order regardless of input order, and month names render
// from Go's fixed English month table, not the locale. Ties for the
// most/least active month resolve to the earliest month.
func BuildTimeline(posts []linkedin.Post) Timeline {
	type bucket struct {
		posts      int
		engagement int
	}
	var months [12]bucket
	for _, p := range posts {
		t, ok := parsePublishedAt(p.PublishedAt)
		if !ok {
			continue
		}
		m := int(t.UTC().Month()) - 1
		months[m].posts++
		months[m].engagement += p.Engagement.Total()
	}

	var tl Timeline
	most, least := -1, -1
	for i, b := range months {
		if b.posts == 0 {
			continue
		}
		tl.MonthlyBreakdown = append(tl.MonthlyBreakdown, MonthActivity{
			Month:           time.Month(i + 1).String(),
			Posts:           b.posts,
			TotalEngagement: b.engagement,
		})
		if most < 0 || b.posts > months[most].posts {
			most = i
		}
		if least < 0 || b.posts < months[least].posts {
			least = i
		}
	}
	if most >= 0 {
		tl.MostActiveMonth = time.Month(most + 1).String()
	}
	if least >= 0 {
		tl.LeastActiveMonth = time.Month(least + 1).String()
	}
	return tl
}
