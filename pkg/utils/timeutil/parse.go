// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the many timestamp formats found in RSS/Atom feeds in the wild

package timeutil

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseFlexible attempts to parse a timestamp string in any common feed
// format. Returns the zero time when the string cannot be parsed.
func ParseFlexible(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}
	}

	return t
}

// ParseWithDefault attempts to parse a timestamp string, returning the given
// default when parsing fails.
func ParseWithDefault(value string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexible(value); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}

// ParseWithNow attempts to parse a timestamp string, returning the current
// time when parsing fails. Feed items are never emitted with an invalid
// timestamp.
func ParseWithNow(value string) time.Time {
	return ParseWithDefault(value, time.Now())
}
