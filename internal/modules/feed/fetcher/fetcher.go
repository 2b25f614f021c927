package fetcher

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/oops"
)

// Fetcher retrieves and parses one syndication endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*gofeed.Feed, error)
}

// HTTPFetcher fetches feeds over HTTP with a bounded per-request timeout.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher whose requests are bounded by timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and parses the feed at url. Upstream formats vary (RSS 2.0
// with media/content/dc extensions, Atom), so parsing is delegated to gofeed's
// universal parser.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	parser := gofeed.NewParser()
	parser.Client = f.client

	feed, err := parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, oops.With("feed_url", url).Wrap(err)
	}
	return feed, nil
}
