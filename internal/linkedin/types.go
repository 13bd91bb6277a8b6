// Package linkedin defines the raw record types produced by LinkedIn
// scraping tools and a loader for their JSON export files.
//
// Scraped exports are messy: the same field shows up under different
// names depending on which scraper produced the file, numbers and
// timestamps go missing, and reshares are flagged in several
// inconsistent ways. The types here absorb that mess so the
// aggregation engine can work with one canonical shape.
package linkedin

import (
	"encoding/json"
	"strings"
)

// Author identifies the author of a scraped post.
type Author struct {
	Name       string `json:"name,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// Engagement holds the engagement counters of a post. Absent counters
// decode to zero.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// Total returns the combined engagement count.
func (e Engagement) Total() int {
	return e.Likes + e.Comments + e.Shares
}

// Post is one scraped LinkedIn post.
//
// PublishedAt is kept as the raw string from the export; it may be
// empty or unparseable, and the aggregation engine decides what to do
// with it.
type Post struct {
	ID          string     `json:"id,omitempty"`
	Content     string     `json:"content,omitempty"`
	PublishedAt string     `json:"publishedAt,omitempty"`
	URL         string     `json:"url,omitempty"`
	Author      Author     `json:"author,omitempty"`
	Engagement  Engagement `json:"engagement"`

	// Reshare indicators. Scrapers disagree on how a reshare is
	// marked; any single indicator counts.
	Share           bool   `json:"isShare,omitempty"`
	Reshared        bool   `json:"isReshare,omitempty"`
	Type            string `json:"type,omitempty"`
	HasSharedPost   bool   `json:"-"`
	HasResharedPost bool   `json:"-"`
}

// IsReshare reports whether the post republishes someone else's
// content rather than being an original post by its author.
func (p Post) IsReshare() bool {
	return p.Share || p.Reshared || p.Type == "share" || p.HasSharedPost || p.HasResharedPost
}

// postAlias carries every field name seen in the wild for the same
// piece of data.
type postAlias struct {
	ID               string          `json:"id"`
	URN              string          `json:"urn"`
	Content          string          `json:"content"`
	Text             string          `json:"text"`
	PublishedAt      flexString      `json:"publishedAt"`
	PostedAt         flexString      `json:"postedAt"`
	Date             flexString      `json:"date"`
	URL              string          `json:"url"`
	PostURL          string          `json:"postUrl"`
	Author           Author          `json:"author"`
	AuthorName       string          `json:"authorName"`
	AuthorProfileURL string          `json:"authorProfileUrl"`
	Engagement       *Engagement     `json:"engagement"`
	Likes            int             `json:"likes"`
	Comments         int             `json:"comments"`
	Shares           int             `json:"shares"`
	IsShare          bool            `json:"isShare"`
	IsReshare        bool            `json:"isReshare"`
	Type             string          `json:"type"`
	SharedPost       json.RawMessage `json:"sharedPost"`
	ResharedPost     json.RawMessage `json:"resharedPost"`
}

// UnmarshalJSON decodes a post from any of the export dialects,
// folding the alternate field names into the canonical ones.
func (p *Post) UnmarshalJSON(data []byte) error {
	var alias postAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	p.ID = firstNonEmpty(alias.ID, alias.URN)
	p.Content = firstNonEmpty(alias.Content, alias.Text)
	p.PublishedAt = firstNonEmpty(string(alias.PublishedAt), string(alias.PostedAt), string(alias.Date))
	p.URL = firstNonEmpty(alias.URL, alias.PostURL)

	p.Author = alias.Author
	if p.Author.Name == "" {
		p.Author.Name = alias.AuthorName
	}
	if p.Author.ProfileURL == "" {
		p.Author.ProfileURL = alias.AuthorProfileURL
	}

	if alias.Engagement != nil {
		p.Engagement = *alias.Engagement
	} else {
		p.Engagement = Engagement{Likes: alias.Likes, Comments: alias.Comments, Shares: alias.Shares}
	}

	p.Share = alias.IsShare
	p.Reshared = alias.IsReshare
	p.Type = alias.Type
	p.HasSharedPost = rawPresent(alias.SharedPost)
	p.HasResharedPost = rawPresent(alias.ResharedPost)
	return nil
}

// Reaction is one reaction the profile gave to someone else's post.
type Reaction struct {
	Type             string `json:"reactionType,omitempty"`
	AuthorName       string `json:"authorName,omitempty"`
	AuthorProfileURL string `json:"authorProfileUrl,omitempty"`
	AuthorInfo       string `json:"authorInfo,omitempty"`
	PostContent      string `json:"postContent,omitempty"`
	PostAuthor       string `json:"postAuthor,omitempty"`
	PostURL          string `json:"postUrl,omitempty"`
	ReactedAt        string `json:"reactedAt,omitempty"`
}

type reactionAlias struct {
	ReactionType     string     `json:"reactionType"`
	Type             string     `json:"type"`
	AuthorName       string     `json:"authorName"`
	AuthorProfileURL string     `json:"authorProfileUrl"`
	Author           Author     `json:"author"`
	AuthorInfo       string     `json:"authorInfo"`
	PostContent      string     `json:"postContent"`
	PostAuthor       string     `json:"postAuthor"`
	PostURL          string     `json:"postUrl"`
	ReactedAt        flexString `json:"reactedAt"`
	Date             flexString `json:"date"`
}

// UnmarshalJSON decodes a reaction, folding alternate field names.
func (r *Reaction) UnmarshalJSON(data []byte) error {
	var alias reactionAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	r.Type = firstNonEmpty(alias.ReactionType, alias.Type)
	r.AuthorName = firstNonEmpty(alias.AuthorName, alias.Author.Name)
	r.AuthorProfileURL = firstNonEmpty(alias.AuthorProfileURL, alias.Author.ProfileURL)
	r.AuthorInfo = alias.AuthorInfo
	r.PostContent = alias.PostContent
	r.PostAuthor = alias.PostAuthor
	r.PostURL = alias.PostURL
	r.ReactedAt = firstNonEmpty(string(alias.ReactedAt), string(alias.Date))
	return nil
}

// flexString accepts a JSON string or number. Some exports serialize
// timestamps as unix milliseconds rather than strings.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func rawPresent(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}
