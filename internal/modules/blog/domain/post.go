package domain

import "time"

// Post is one entry of the agency blog. The catalogue is compiled in,
// matching the static content model of the site.
type Post struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Posts returns the blog catalogue, newest first.
func Posts() []Post {
	return []Post{
		{
			ID:          1,
			Title:       "Embracing Modern Web Design Trends for 2024",
			Category:    "Web Development",
			Excerpt:     "Discover the latest web design trends that are shaping the digital landscape and how they can elevate your online presence. From subtle animations to dark mode aesthetics, stay ahead of the curve.",
			Author:      "Jane Doe",
			PublishedAt: time.Date(2024, time.November, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Title:       "Boosting Business Efficiency with Custom Software",
			Category:    "Software Solutions",
			Excerpt:     "Learn how tailor-made software solutions can streamline your operations, reduce manual errors, and significantly boost your business's overall efficiency and productivity.",
			Author:      "John Smith",
			PublishedAt: time.Date(2024, time.November, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          3,
			Title:       "The Importance of User Experience Research in Development",
			Category:    "UI/UX Design",
			Excerpt:     "User experience (UX) research is critical for creating products that users love. We delve into best practices for conducting effective UX research and integrating findings into your development cycle.",
			Author:      "Alice Johnson",
			PublishedAt: time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          4,
			Title:       "Cloud Computing: The Future of Scalable Infrastructure",
			Category:    "Tech Trends",
			Excerpt:     "Cloud computing continues to revolutionize how businesses operate. Explore the benefits, challenges, and future outlook of cloud-based infrastructure and services.",
			Author:      "Robert Brown",
			PublishedAt: time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          5,
			Title:       "Leveraging Digital Marketing for Software Product Launches",
			Category:    "Business Strategy",
			Excerpt:     "A successful software product launch requires a robust digital marketing strategy. We share key tactics to get your new software in front of the right audience and drive early adoption.",
			Author:      "Emily White",
			PublishedAt: time.Date(2024, time.November, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          6,
			Title:       "Integrating AI Into Your Business Operations",
			Category:    "AI & Automation",
			Excerpt:     "Artificial intelligence is no longer a futuristic concept. Learn practical ways to integrate AI into your daily business operations to enhance decision-making and automate routine tasks.",
			Author:      "Chris Green",
			PublishedAt: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
