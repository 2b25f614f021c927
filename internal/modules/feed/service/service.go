package service

import (
	"context"
	"html"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"github.com/janixware/site-backend/internal/modules/feed/domain"
	"github.com/janixware/site-backend/internal/modules/feed/fetcher"
	sharederrors "github.com/janixware/site-backend/internal/shared/errors"
)

// Service merges the configured feed sources into one tech-news list.
type Service struct {
	sources []domain.Source
	fetcher fetcher.Fetcher
	logger  *slog.Logger
}

// New creates a new feed aggregation service
func New(sources []domain.Source, f fetcher.Fetcher) *Service {
	return &Service{
		sources: sources,
		fetcher: f,
		logger:  slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Service) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// sourceResult is the outcome of one source's fetch round. A source either
// contributes items or an error, never both; the error stays local to the
// round and is only logged.
type sourceResult struct {
	source domain.Source
	items  []domain.Item
	err    error
}

// Aggregate fetches every source concurrently, normalizes and merges their
// entries, and returns the newest-first view. A failing source contributes
// zero items; ErrAllSourcesFailed is returned only when no source answered,
// alongside a well-formed empty result.
func (s *Service) Aggregate(ctx context.Context) (*domain.AggregateResult, error) {
	results := make([]sourceResult, len(s.sources))

	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(i int, src domain.Source) {
			defer wg.Done()
			results[i] = s.fetchSource(ctx, src)
		}(i, src)
	}
	wg.Wait()

	failures := 0
	items := make([]domain.Item, 0, len(s.sources)*domain.MaxItemsPerSource)
	for _, res := range results {
		if res.err != nil {
			failures++
			s.logger.Error("Feed source failed", "feed_url", res.source.URL, "error", res.err)
			continue
		}
		items = append(items, res.items...)
	}

	if failures == len(s.sources) && len(s.sources) > 0 {
		return &domain.AggregateResult{Items: []domain.Item{}, Total: 0}, sharederrors.ErrAllSourcesFailed
	}

	// Newest first; undated items keep their relative order at the tail
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	if len(items) > domain.MaxItemsTotal {
		items = items[:domain.MaxItemsTotal]
	}

	return &domain.AggregateResult{Items: items, Total: len(items)}, nil
}

func (s *Service) fetchSource(ctx context.Context, src domain.Source) sourceResult {
	feed, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return sourceResult{source: src, err: err}
	}

	sourceName := feed.Title
	if sourceName == "" {
		sourceName = hostOf(src.URL)
	}

	entries := feed.Items
	if len(entries) > domain.MaxItemsPerSource {
		entries = entries[:domain.MaxItemsPerSource]
	}

	items := lo.Map(entries, func(entry *gofeed.Item, _ int) domain.Item {
		return normalizeItem(entry, sourceName, src.URL)
	})
	return sourceResult{source: src, items: items}
}

// normalizeItem maps one upstream entry onto the site's item shape. The
// description prefers a plain-text snippet of the summary, then the full
// content:encoded body, then the raw summary.
func normalizeItem(entry *gofeed.Item, sourceName, sourceURL string) domain.Item {
	title := entry.Title
	if title == "" {
		title = "No Title"
	}

	description := stripHTML(entry.Description)
	if description == "" {
		description = entry.Content
	}
	if description == "" {
		description = entry.Description
	}

	creator := ""
	if entry.Author != nil {
		creator = entry.Author.Name
	}

	item := domain.Item{
		Title:          title,
		Link:           entry.Link,
		Description:    description,
		PubDate:        entry.Published,
		Content:        entry.Description,
		ContentEncoded: entry.Content,
		Creator:        creator,
		GUID:           entry.GUID,
		Source:         sourceName,
		SourceURL:      sourceURL,
	}
	if entry.PublishedParsed != nil {
		item.PublishedAt = *entry.PublishedParsed
	}
	return item
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Unknown Source"
	}
	return u.Host
}

// stripHTML reduces a summary fragment to plain text. Good enough for feed
// snippets; anything that still looks empty falls through to the raw field.
func stripHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}
