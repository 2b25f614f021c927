package service

import (
	"fmt"

	"github.com/gorilla/feeds"
	"github.com/samber/oops"

	"github.com/janixware/site-backend/internal/modules/blog/domain"
)

// Service generates the RSS representation of the agency blog.
type Service struct {
	baseURL string
	posts   []domain.Post
}

// New creates a new blog feed service
func New(baseURL string) *Service {
	return &Service{
		baseURL: baseURL,
		posts:   domain.Posts(),
	}
}

// GenerateFeed builds the blog's RSS feed, newest post first.
func (s *Service) GenerateFeed() (*feeds.Feed, error) {
	if len(s.posts) == 0 {
		return nil, oops.Errorf("blog catalogue is empty")
	}

	feed := &feeds.Feed{
		Title:       "Janixware Blog & Insights",
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/blog", s.baseURL)},
		Description: "Thoughts on software, design, and the future of technology from the Janixware team.",
		Created:     s.posts[len(s.posts)-1].PublishedAt,
		Updated:     s.posts[0].PublishedAt,
	}

	var items []*feeds.Item
	for _, post := range s.posts {
		items = append(items, s.postToFeedItem(post))
	}

	feed.Items = items
	return feed, nil
}

// GenerateRSS renders the feed as RSS 2.0 XML.
func (s *Service) GenerateRSS() (string, error) {
	feed, err := s.GenerateFeed()
	if err != nil {
		return "", err
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", oops.With("context", "converting blog feed to RSS").Wrap(err)
	}
	return rss, nil
}

func (s *Service) postToFeedItem(post domain.Post) *feeds.Item {
	return &feeds.Item{
		Title:       post.Title,
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/blog#post-%d", s.baseURL, post.ID)},
		Description: post.Excerpt,
		Author:      &feeds.Author{Name: post.Author},
		Created:     post.PublishedAt,
		Id:          fmt.Sprintf("janixware-blog-%d", post.ID),
	}
}
