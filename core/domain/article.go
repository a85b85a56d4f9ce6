// ABOUTME: Article domain model represents one normalized headline record
// ABOUTME: Provides validation to ensure an article has required fields

package domain

import "time"

// MaxDescriptionLength is the cap applied to article descriptions after
// HTML stripping.
const MaxDescriptionLength = 200

// Article represents a single normalized headline derived from a feed entry.
// Articles are ephemeral: the full list is rebuilt on every refresh.
type Article struct {
	// Title is the headline text
	Title string

	// Link is the absolute URL used as the click-through target
	Link string

	// PublishedAt is the publication timestamp; defaults to fetch time
	// when the source omits one
	PublishedAt time.Time

	// Description is plain text, HTML stripped, at most MaxDescriptionLength characters
	Description string

	// Source is the display name of the owning FeedSource
	Source string

	// Category is copied from the owning FeedSource
	Category Category

	// Color is the accent value copied from the owning FeedSource
	Color string
}

// IsValid reports whether the article has the required fields. Articles
// missing a title or link are dropped, never substituted with placeholders.
func (a *Article) IsValid() bool {
	if a.Title == "" {
		return false
	}

	if a.Link == "" {
		return false
	}

	return true
}
