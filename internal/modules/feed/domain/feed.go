package domain

import "time"

// Source is one external syndication endpoint contributing news items.
// The list is fixed at startup and never mutated.
type Source struct {
	URL string `json:"url"`
}

// Item is a normalized entry from one upstream feed. The JSON shape is the
// site contract consumed by the tech-news page.
type Item struct {
	Title          string `json:"title"`
	Link           string `json:"link"`
	Description    string `json:"description"`
	PubDate        string `json:"pubDate"`
	Content        string `json:"content"`
	ContentEncoded string `json:"contentEncoded"`
	Creator        string `json:"creator"`
	GUID           string `json:"guid"`
	Source         string `json:"source"`
	SourceURL      string `json:"sourceUrl"`

	// PublishedAt is the parsed form of PubDate, used only for ordering.
	// Zero when the upstream timestamp is missing or unparsable, which
	// sorts the item after every dated one.
	PublishedAt time.Time `json:"-"`
}

// AggregateResult is the merged view across all sources, newest first.
type AggregateResult struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

const (
	// MaxItemsPerSource bounds any single source's contribution before the merge.
	MaxItemsPerSource = 10
	// MaxItemsTotal bounds the merged result after sorting.
	MaxItemsTotal = 30
)
