// ABOUTME: Response DTOs for the pulse API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// ArticleResponse represents one normalized article in API responses
type ArticleResponse struct {
	Title       string    `json:"title" doc:"Article headline"`
	Link        string    `json:"link" doc:"Click-through URL for the full article"`
	PublishedAt time.Time `json:"published_at" doc:"Publication timestamp"`
	Description string    `json:"description" doc:"Plain-text summary, at most 200 characters"`
	Source      string    `json:"source" doc:"Display name of the originating publication"`
	Category    string    `json:"category" doc:"Filtering category label"`
	Color       string    `json:"color" doc:"Display accent color for the source"`
}

// PulseStatsResponse summarizes the unfiltered article list
type PulseStatsResponse struct {
	TotalArticles int `json:"total_articles" doc:"Total articles in the current snapshot"`
	SourceCount   int `json:"source_count" doc:"Distinct sources represented"`
	CategoryCount int `json:"category_count" doc:"Distinct categories represented"`
}

// PulseResponse represents the aggregated article view
type PulseResponse struct {
	Articles    []ArticleResponse  `json:"articles" doc:"Articles matching the active filters, newest first"`
	Stats       PulseStatsResponse `json:"stats" doc:"Summary statistics over the unfiltered snapshot"`
	Categories  []string           `json:"categories" doc:"Category filter options, including All"`
	LastUpdated time.Time          `json:"last_updated" doc:"When the snapshot was last refreshed"`
	Loading     bool               `json:"loading" doc:"Whether a refresh is currently in flight"`
	Error       string             `json:"error,omitempty" doc:"User-facing banner text when live feeds were unavailable"`
}

// SourceResponse represents one configured feed source
type SourceResponse struct {
	Name     string `json:"name" doc:"Display name of the publication"`
	URL      string `json:"url" doc:"Feed endpoint URL"`
	Category string `json:"category" doc:"Category label applied to this source's articles"`
	Color    string `json:"color" doc:"Display accent color"`
}

// SourcesResponse represents the configured feed source list
type SourcesResponse struct {
	Sources []SourceResponse `json:"sources" doc:"Configured feed sources"`
}
