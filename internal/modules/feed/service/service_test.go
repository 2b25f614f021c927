package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janixware/site-backend/internal/modules/feed/domain"
	sharederrors "github.com/janixware/site-backend/internal/shared/errors"
)

// ==========================
// Mock Implementations
// ==========================

type mockFetcher struct {
	FetchFunc func(ctx context.Context, url string) (*gofeed.Feed, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	return m.FetchFunc(ctx, url)
}

// ==========================
// Test Helper Functions
// ==========================

func datedItem(title string, published time.Time) *gofeed.Item {
	return &gofeed.Item{
		Title:           title,
		Link:            "https://example.com/" + title,
		Description:     "summary of " + title,
		Published:       published.Format(time.RFC1123Z),
		PublishedParsed: &published,
	}
}

func feedWithItems(title string, items ...*gofeed.Item) *gofeed.Feed {
	return &gofeed.Feed{Title: title, Items: items}
}

func sources(urls ...string) []domain.Source {
	out := make([]domain.Source, 0, len(urls))
	for _, u := range urls {
		out = append(out, domain.Source{URL: u})
	}
	return out
}

// ==========================
// Tests
// ==========================

func TestAggregatePartialFailure(t *testing.T) {
	// Source A: 15 items dated Jan 1-15, B: network error, C: 5 items Feb 1-5.
	var aItems []*gofeed.Item
	for day := 1; day <= 15; day++ {
		aItems = append(aItems, datedItem(
			fmt.Sprintf("a-%02d", day),
			time.Date(2024, time.January, day, 12, 0, 0, 0, time.UTC),
		))
	}
	var cItems []*gofeed.Item
	for day := 1; day <= 5; day++ {
		cItems = append(cItems, datedItem(
			fmt.Sprintf("c-%02d", day),
			time.Date(2024, time.February, day, 12, 0, 0, 0, time.UTC),
		))
	}

	f := &mockFetcher{FetchFunc: func(ctx context.Context, url string) (*gofeed.Feed, error) {
		switch url {
		case "https://a.example/feed":
			return feedWithItems("Source A", aItems...), nil
		case "https://b.example/feed":
			return nil, fmt.Errorf("connection refused")
		default:
			return feedWithItems("Source C", cItems...), nil
		}
	}}

	svc := New(sources("https://a.example/feed", "https://b.example/feed", "https://c.example/feed"), f)
	result, err := svc.Aggregate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 15, result.Total)
	assert.Len(t, result.Items, 15)

	// February items outrank every January item
	for i := 0; i < 5; i++ {
		assert.Equal(t, "Source C", result.Items[i].Source)
	}
	for i := 5; i < 15; i++ {
		assert.Equal(t, "Source A", result.Items[i].Source)
	}

	// A's contribution is its first 10 items as parsed (Jan 1-10), so Jan 11-15
	// never make it into the merge
	for _, item := range result.Items {
		assert.NotEqual(t, "a-11", item.Title)
		assert.NotEqual(t, "a-15", item.Title)
	}
}

func TestAggregateSortedDescending(t *testing.T) {
	f := &mockFetcher{FetchFunc: func(ctx context.Context, url string) (*gofeed.Feed, error) {
		return feedWithItems("Mixed",
			datedItem("old", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
			datedItem("new", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
			datedItem("mid", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
		), nil
	}}

	svc := New(sources("https://mixed.example/feed"), f)
	result, err := svc.Aggregate(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "new", result.Items[0].Title)
	assert.Equal(t, "mid", result.Items[1].Title)
	assert.Equal(t, "old", result.Items[2].Title)
}

func TestAggregateUndatedItemsSortLast(t *testing.T) {
	undated := &gofeed.Item{Title: "undated", Description: "no date here"}

	f := &mockFetcher{FetchFunc: func(ctx context.Context, url string) (*gofeed.Feed, error) {
		return feedWithItems("Mixed",
			undated,
			datedItem("dated", time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)),
		), nil
	}}

	svc := New(sources("https://mixed.example/feed"), f)
	result, err := svc.Aggregate(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "dated", result.Items[0].Title)
	assert.Equal(t, "undated", result.Items[1].Title)
	assert.Empty(t, result.Items[1].PubDate)
}

func TestAggregateTotalCap(t *testing.T) {
	f := &mockFetcher{FetchFunc: func(ctx context.Context, url string) (*gofeed.Feed, error) {
		var items []*gofeed.Item
		for i := 0; i < 12; i++ {
			items = append(items, datedItem(
				fmt.Sprintf("%s-%02d", url, i),
				time.Date(2024, time.June, 1+i, 0, 0, 0, 0, time.UTC),
			))
		}
		return feedWithItems("Busy "+url, items...), nil
	}}

	svc := New(sources("https://a.example/f", "https://b.example/f", "https://c.example/f", "https://d.example/f"), f)
	result, err := svc.Aggregate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.MaxItemsTotal, result.Total)
	assert.Len(t, result.Items, domain.MaxItemsTotal)
}

func TestAggregateAllSourcesFailed(t *testing.T) {
	f := &mockFetcher{FetchFunc: func(ctx context.Context, url string) (*gofeed.Feed, error) {
		return nil, fmt.Errorf("dns lookup failed")
	}}

	svc := New(sources("https://a.example/f", "https://b.example/f"), f)
	result, err := svc.Aggregate(context.Background())

	require.ErrorIs(t, err, sharederrors.ErrAllSourcesFailed)
	require.NotNil(t, result)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Total)
}

func TestAggregateDescriptionPrecedence(t *testing.T) {
	published := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		item     *gofeed.Item
		expected string
	}{
		{
			name: "summary snippet wins and is stripped of markup",
			item: &gofeed.Item{
				Title:           "snippet",
				Description:     "<p>A &amp; B</p>",
				Content:         "<article>full body</article>",
				PublishedParsed: &published,
			},
			expected: "A & B",
		},
		{
			name: "empty summary falls through to content",
			item: &gofeed.Item{
				Title:           "content",
				Description:     "",
				Content:         "<article>full body</article>",
				PublishedParsed: &published,
			},
			expected: "<article>full body</article>",
		},
		{
			name: "markup-only summary falls through to content",
			item: &gofeed.Item{
				Title:           "markup-only",
				Description:     "<img src='x.png'/>",
				Content:         "actual text",
				PublishedParsed: &published,
			},
			expected: "actual text",
		},
		{
			name:     "everything empty stays empty",
			item:     &gofeed.Item{Title: "bare", PublishedParsed: &published},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &mockFetcher{FetchFunc: func(ctx context.Context, url string) (*gofeed.Feed, error) {
				return feedWithItems("Feed", tt.item), nil
			}}

			svc := New(sources("https://x.example/feed"), f)
			result, err := svc.Aggregate(context.Background())

			require.NoError(t, err)
			require.Len(t, result.Items, 1)
			assert.Equal(t, tt.expected, result.Items[0].Description)
		})
	}
}

func TestAggregateSourceNameFallsBackToHost(t *testing.T) {
	f := &mockFetcher{FetchFunc: func(ctx context.Context, url string) (*gofeed.Feed, error) {
		return feedWithItems("", datedItem("untitled-feed-item", time.Now())), nil
	}}

	svc := New(sources("https://news.example.org/rss"), f)
	result, err := svc.Aggregate(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "news.example.org", result.Items[0].Source)
	assert.Equal(t, "https://news.example.org/rss", result.Items[0].SourceURL)
}

func TestAggregateKeepsRawTimestampAndMetadata(t *testing.T) {
	published := time.Date(2024, time.August, 15, 9, 30, 0, 0, time.UTC)
	item := &gofeed.Item{
		Title:           "metadata",
		Link:            "https://x.example/post",
		Description:     "plain summary",
		Content:         "<p>encoded body</p>",
		Published:       "Thu, 15 Aug 2024 09:30:00 +0000",
		PublishedParsed: &published,
		GUID:            "guid-123",
		Author:          &gofeed.Person{Name: "Jane Writer"},
	}

	f := &mockFetcher{FetchFunc: func(ctx context.Context, url string) (*gofeed.Feed, error) {
		return feedWithItems("Feed", item), nil
	}}

	svc := New(sources("https://x.example/rss"), f)
	result, err := svc.Aggregate(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	got := result.Items[0]
	assert.Equal(t, "Thu, 15 Aug 2024 09:30:00 +0000", got.PubDate)
	assert.Equal(t, "<p>encoded body</p>", got.ContentEncoded)
	assert.Equal(t, "plain summary", got.Content)
	assert.Equal(t, "Jane Writer", got.Creator)
	assert.Equal(t, "guid-123", got.GUID)
}
