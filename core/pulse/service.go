// ABOUTME: Pulse aggregator fans out fetch-and-parse pipelines across all feed sources
// ABOUTME: Owns the displayed snapshot state and notifies subscribers after every refresh

package pulse

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"aipulse-api/core/domain"
	"aipulse-api/core/feed"
	"aipulse-api/core/interfaces"
)

// ErrLiveUnavailable is the user-facing message shown when a refresh hits an
// unexpected fault and the curated fallback list is substituted.
const ErrLiveUnavailable = "Could not load live feeds. Showing curated articles."

// dedupeKeyLength is how many lowercase title characters form the
// deduplication key.
const dedupeKeyLength = 50

// Fetcher retrieves raw feed content for a source URL. Failure is a value;
// the boolean is false when no proxy produced a body.
type Fetcher interface {
	FetchRaw(ctx context.Context, url string) (string, bool)
}

// Service aggregates articles from the configured feed sources. The snapshot
// it owns is written only by its own refresh routine; concurrent refreshes
// each run a full independent round and the last completion wins.
type Service struct {
	deps    interfaces.Dependencies
	fetcher Fetcher
	sources []domain.FeedSource

	mu       sync.Mutex
	snap     domain.Snapshot
	loading  bool
	subs     map[int]chan domain.Snapshot
	nextSub  int
}

// NewService creates an aggregator over the given sources. A nil or empty
// source list falls back to the default configuration.
func NewService(deps interfaces.Dependencies, fetcher Fetcher, sources []domain.FeedSource) *Service {
	if len(sources) == 0 {
		sources = domain.DefaultSources()
	}

	return &Service{
		deps:    deps,
		fetcher: fetcher,
		sources: sources,
		subs:    make(map[int]chan domain.Snapshot),
	}
}

// Sources returns the configured feed source list.
func (s *Service) Sources() []domain.FeedSource {
	return s.sources
}

// State returns the most recently published snapshot.
func (s *Service) State() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Loading reports whether a refresh is currently in flight.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subscribe registers for snapshot updates. The returned cancel func must be
// called to release the subscription. Sends are non-blocking: a subscriber
// that falls behind misses intermediate snapshots rather than stalling a
// refresh.
func (s *Service) Subscribe() (<-chan domain.Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan domain.Snapshot, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Refresh runs one full aggregation round: fan out a fetch-and-parse pipeline
// per source, wait for every pipeline to settle, then flatten, sort by
// publish time descending, deduplicate, and substitute the curated fallback
// list when nothing usable remains. The snapshot is always published with a
// fresh LastUpdated, and loading clears unconditionally.
func (s *Service) Refresh(ctx context.Context) domain.Snapshot {
	s.setLoading(true)

	var snap domain.Snapshot

	func() {
		defer func() {
			if r := recover(); r != nil {
				if s.deps.Logger != nil {
					s.deps.Logger.Error("Refresh failed unexpectedly", map[string]interface{}{
						"panic": r,
					})
				}
				snap = domain.Snapshot{
					Articles: domain.FallbackArticles(),
					Err:      ErrLiveUnavailable,
				}
			}
		}()

		articles, faulted := s.collect(ctx)
		if faulted {
			snap = domain.Snapshot{
				Articles: domain.FallbackArticles(),
				Err:      ErrLiveUnavailable,
			}
			return
		}

		SortByPublished(articles)
		articles = DedupeByTitle(articles)

		if len(articles) == 0 {
			articles = domain.FallbackArticles()
		}

		snap = domain.Snapshot{Articles: articles}
	}()

	snap.LastUpdated = time.Now()
	s.publish(snap)

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Refresh completed", map[string]interface{}{
			"articles": len(snap.Articles),
			"sources":  len(s.sources),
			"degraded": snap.Err != "",
		})
	}

	return snap
}

// sourceResult carries one settled pipeline's outcome. An expected failure
// (proxy exhaustion, nothing parsed) is an empty article list; faulted marks
// a recovered panic, the only thing treated as an aggregate-level error.
type sourceResult struct {
	articles []domain.Article
	faulted  bool
}

// collect fans out one pipeline per source and gathers everything once all
// pipelines have settled. A failing source contributes an empty list and
// never affects its peers.
func (s *Service) collect(ctx context.Context) ([]domain.Article, bool) {
	results := make(chan sourceResult, len(s.sources))

	var wg sync.WaitGroup
	for _, src := range s.sources {
		wg.Add(1)
		go func(src domain.FeedSource) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					if s.deps.Logger != nil {
						s.deps.Logger.Error("Source pipeline fault", map[string]interface{}{
							"source": src.Name,
							"panic":  r,
						})
					}
					results <- sourceResult{faulted: true}
				}
			}()

			raw, ok := s.fetcher.FetchRaw(ctx, src.URL)
			if !ok {
				results <- sourceResult{}
				return
			}

			articles := feed.Parse(raw, src)
			if len(articles) == 0 && s.deps.Logger != nil {
				s.deps.Logger.Debug("Source yielded no articles", map[string]interface{}{
					"source": src.Name,
				})
			}
			results <- sourceResult{articles: articles}
		}(src)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []domain.Article
	faulted := false
	for res := range results {
		if res.faulted {
			faulted = true
			continue
		}
		all = append(all, res.articles...)
	}

	return all, faulted
}

// setLoading flips the loading flag.
func (s *Service) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// publish stores the snapshot, clears loading, and notifies subscribers.
func (s *Service) publish(snap domain.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.loading = false
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
	s.mu.Unlock()
}

// SortByPublished orders articles by publish time descending, in place. The
// sort is stable so equal timestamps keep their flatten order.
func SortByPublished(articles []domain.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

// DedupeByTitle collapses articles whose lowercase titles share the first
// dedupeKeyLength characters, keeping the first occurrence of each key.
// Running after SortByPublished means the most recent article wins.
func DedupeByTitle(articles []domain.Article) []domain.Article {
	seen := make(map[string]bool, len(articles))
	deduped := make([]domain.Article, 0, len(articles))

	for _, a := range articles {
		key := dedupeKey(a.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, a)
	}

	return deduped
}

func dedupeKey(title string) string {
	key := strings.ToLower(title)
	runes := []rune(key)
	if len(runes) > dedupeKeyLength {
		key = string(runes[:dedupeKeyLength])
	}
	return key
}
