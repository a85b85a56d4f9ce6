// ABOUTME: HTML utilities for reducing feed markup to plain text
// ABOUTME: Renders markup into a detached document and extracts its text content

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripTags removes all markup from a fragment of HTML, returning its text
// content with entities decoded and whitespace collapsed. Script and style
// bodies are discarded, not rendered as text.
func StripTags(markup string) string {
	if markup == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		// Unparseable input is treated as already-plain text
		return normalizeWhitespace(markup)
	}

	doc.Find("script, style").Remove()

	return normalizeWhitespace(doc.Text())
}

// Truncate returns at most limit characters of s, counting by rune so a
// multi-byte character is never split.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}

// normalizeWhitespace collapses runs of whitespace to single spaces and trims
// the result.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
