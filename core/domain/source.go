// ABOUTME: FeedSource domain model represents a configured publication endpoint
// ABOUTME: Defines the closed category set and the fixed source list polled for articles

package domain

// Category labels articles for filtering. The set is closed; sources and
// fallback articles only ever carry one of these values.
type Category string

const (
	CategoryIndustry    Category = "Industry"
	CategoryTools       Category = "Tools"
	CategoryDataCenters Category = "Data Centers"
	CategoryResearch    Category = "Research"
)

// Categories returns every known category label.
func Categories() []Category {
	return []Category{
		CategoryIndustry,
		CategoryTools,
		CategoryDataCenters,
		CategoryResearch,
	}
}

// IsValidCategory reports whether label is one of the known categories.
func IsValidCategory(label string) bool {
	for _, c := range Categories() {
		if string(c) == label {
			return true
		}
	}
	return false
}

// FeedSource represents a publication feed endpoint with display metadata.
// The configured list is immutable for the process lifetime.
type FeedSource struct {
	// Name is the display name of the originating publication
	Name string

	// URL is the feed endpoint
	URL string

	// Category is the filtering label applied to every article from this source
	Category Category

	// Color is the display accent value for this source's cards
	Color string
}

// DefaultSources returns the fixed feed source configuration.
func DefaultSources() []FeedSource {
	return []FeedSource{
		{
			Name:     "TechCrunch AI",
			URL:      "https://techcrunch.com/category/artificial-intelligence/feed/",
			Category: CategoryIndustry,
			Color:    "#10b981",
		},
		{
			Name:     "VentureBeat AI",
			URL:      "https://venturebeat.com/category/ai/feed/",
			Category: CategoryIndustry,
			Color:    "#6366f1",
		},
		{
			Name:     "MIT Technology Review",
			URL:      "https://www.technologyreview.com/feed/",
			Category: CategoryResearch,
			Color:    "#f59e0b",
		},
		{
			Name:     "The Register",
			URL:      "https://www.theregister.com/software/ai_ml/headlines.atom",
			Category: CategoryDataCenters,
			Color:    "#ef4444",
		},
		{
			Name:     "Hugging Face Blog",
			URL:      "https://huggingface.co/blog/feed.xml",
			Category: CategoryTools,
			Color:    "#eab308",
		},
	}
}
