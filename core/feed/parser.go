// ABOUTME: Feed parser normalizes raw RSS 2.0 and Atom XML into articles
// ABOUTME: Tries RSS extraction first and re-parses the document as Atom when it yields nothing

package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"

	"aipulse-api/core/domain"
	htmlutil "aipulse-api/pkg/utils/html"
	"aipulse-api/pkg/utils/timeutil"
)

// MaxItemsPerSource caps how many articles one feed contributes per fetch
// cycle. Noisy feeds beyond the cap are silently trimmed.
const MaxItemsPerSource = 8

// Parse extracts normalized articles from raw feed XML. RSS 2.0 extraction
// runs first; when it yields zero items the same document is re-parsed as
// Atom. Malformed XML and an empty feed are indistinguishable to the caller:
// both produce an empty list.
func Parse(xmlText string, source domain.FeedSource) []domain.Article {
	articles := parseRSS(xmlText, source)
	if len(articles) == 0 {
		articles = parseAtom(xmlText, source)
	}
	return articles
}

// parseRSS extracts articles from an RSS 2.0 document.
func parseRSS(xmlText string, source domain.FeedSource) []domain.Article {
	parser := &rss.Parser{}
	parsed, err := parser.Parse(strings.NewReader(xmlText))
	if err != nil || parsed == nil {
		return nil
	}

	articles := make([]domain.Article, 0, MaxItemsPerSource)
	for _, item := range parsed.Items {
		if len(articles) == MaxItemsPerSource {
			break
		}
		if item == nil {
			continue
		}

		article := domain.Article{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			PublishedAt: publishedTime(item.PubDateParsed, item.PubDate),
			Description: normalizeDescription(item.Description),
			Source:      source.Name,
			Category:    source.Category,
			Color:       source.Color,
		}
		if !article.IsValid() {
			continue
		}

		articles = append(articles, article)
	}

	return articles
}

// parseAtom extracts articles from an Atom document. Timestamps prefer
// published over updated; body text prefers summary over content.
func parseAtom(xmlText string, source domain.FeedSource) []domain.Article {
	parser := &atom.Parser{}
	parsed, err := parser.Parse(strings.NewReader(xmlText))
	if err != nil || parsed == nil {
		return nil
	}

	articles := make([]domain.Article, 0, MaxItemsPerSource)
	for _, entry := range parsed.Entries {
		if len(articles) == MaxItemsPerSource {
			break
		}
		if entry == nil {
			continue
		}

		article := domain.Article{
			Title:       strings.TrimSpace(entry.Title),
			Link:        entryLink(entry),
			PublishedAt: atomTime(entry),
			Description: normalizeDescription(entryBody(entry)),
			Source:      source.Name,
			Category:    source.Category,
			Color:       source.Color,
		}
		if !article.IsValid() {
			continue
		}

		articles = append(articles, article)
	}

	return articles
}

// entryLink picks the click-through link for an Atom entry: the alternate
// link when present, otherwise the first link carrying an href.
func entryLink(entry *atom.Entry) string {
	var first string
	for _, link := range entry.Links {
		if link == nil || link.Href == "" {
			continue
		}
		if link.Rel == "" || link.Rel == "alternate" {
			return strings.TrimSpace(link.Href)
		}
		if first == "" {
			first = link.Href
		}
	}
	return strings.TrimSpace(first)
}

// entryBody returns the summary when present, otherwise the inline content.
func entryBody(entry *atom.Entry) string {
	if entry.Summary != "" {
		return entry.Summary
	}
	if entry.Content != nil {
		return entry.Content.Value
	}
	return ""
}

// atomTime resolves an entry timestamp from published, then updated.
func atomTime(entry *atom.Entry) time.Time {
	if entry.PublishedParsed != nil && !entry.PublishedParsed.IsZero() {
		return *entry.PublishedParsed
	}
	if entry.Published != "" {
		return timeutil.ParseWithNow(entry.Published)
	}
	if entry.UpdatedParsed != nil && !entry.UpdatedParsed.IsZero() {
		return *entry.UpdatedParsed
	}
	return timeutil.ParseWithNow(entry.Updated)
}

// publishedTime prefers the pre-parsed timestamp and falls back to flexible
// parsing of the raw string. Unparseable timestamps become "now" so an
// article never carries an invalid time.
func publishedTime(parsed *time.Time, raw string) time.Time {
	if parsed != nil && !parsed.IsZero() {
		return *parsed
	}
	return timeutil.ParseWithNow(raw)
}

// normalizeDescription strips markup and clamps the result to the article
// description cap.
func normalizeDescription(markup string) string {
	return htmlutil.Truncate(htmlutil.StripTags(markup), domain.MaxDescriptionLength)
}
