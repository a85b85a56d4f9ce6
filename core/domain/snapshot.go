// ABOUTME: Snapshot is the owned state struct produced by an aggregator refresh
// ABOUTME: Carries the article list, refresh timestamp, and any user-facing error

package domain

import "time"

// Snapshot is the complete result of one refresh cycle. It is what the
// presentation layer renders and what subscribers receive after every
// completed refresh.
type Snapshot struct {
	// Articles is the sorted, deduplicated aggregate list; never empty
	// after a completed refresh (fallback substitution guarantees content)
	Articles []Article

	// LastUpdated is when the refresh completed
	LastUpdated time.Time

	// Err is a user-facing message set only when the refresh hit an
	// unexpected fault; empty otherwise
	Err string
}
