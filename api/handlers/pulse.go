// ABOUTME: Pulse handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for the aggregated article view and manual refresh

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"aipulse-api/api/dto/responses"
	"aipulse-api/core/domain"
	coreerrors "aipulse-api/core/errors"
)

// AllCategories is the pseudo-category matching every article.
const AllCategories = "All"

// PulseService interface defines the methods needed from the aggregator
type PulseService interface {
	Refresh(ctx context.Context) domain.Snapshot
	State() domain.Snapshot
	Loading() bool
	Sources() []domain.FeedSource
}

// PulseHandler handles pulse-related HTTP requests
type PulseHandler struct {
	service PulseService
}

// NewPulseHandler creates a new pulse handler
func NewPulseHandler(service PulseService) *PulseHandler {
	return &PulseHandler{service: service}
}

// RegisterRoutes registers all pulse-related routes
func (h *PulseHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getPulse",
		Method:      http.MethodGet,
		Path:        "/pulse",
		Summary:     "Get the aggregated article view",
		Description: "Returns the current article snapshot with optional category and search filtering",
		Tags:        []string{"Pulse"},
	}, h.GetPulse)

	huma.Register(api, huma.Operation{
		OperationID: "refreshPulse",
		Method:      http.MethodPost,
		Path:        "/pulse/refresh",
		Summary:     "Trigger a full refresh",
		Description: "Re-fetches every configured feed source and returns the fresh snapshot",
		Tags:        []string{"Pulse"},
	}, h.RefreshPulse)

	huma.Register(api, huma.Operation{
		OperationID: "getPulseSources",
		Method:      http.MethodGet,
		Path:        "/pulse/sources",
		Summary:     "List configured feed sources",
		Tags:        []string{"Pulse"},
	}, h.GetSources)
}

// GetPulseInput defines the input for the GetPulse operation
type GetPulseInput struct {
	Category string `query:"category,omitempty" doc:"Category filter; All or one of the configured categories"`
	Q        string `query:"q,omitempty" maxLength:"100" doc:"Case-insensitive substring search over title and description"`
}

// GetPulseOutput defines the output for the GetPulse operation
type GetPulseOutput struct {
	Body responses.PulseResponse
}

// GetPulse handles the GET /pulse endpoint
func (h *PulseHandler) GetPulse(ctx context.Context, input *GetPulseInput) (*GetPulseOutput, error) {
	if input.Category != "" && input.Category != AllCategories && !domain.IsValidCategory(input.Category) {
		return nil, toHumaError(&coreerrors.ValidationError{
			Field:   "category",
			Message: "unknown category " + input.Category,
		})
	}

	snap := h.service.State()

	return &GetPulseOutput{
		Body: buildPulseResponse(snap, h.service.Loading(), input.Category, input.Q),
	}, nil
}

// RefreshPulseOutput defines the output for the RefreshPulse operation
type RefreshPulseOutput struct {
	Body responses.PulseResponse
}

// RefreshPulse handles the POST /pulse/refresh endpoint. Concurrent refresh
// calls are not debounced; each runs its own fetch round.
func (h *PulseHandler) RefreshPulse(ctx context.Context, input *struct{}) (*RefreshPulseOutput, error) {
	snap := h.service.Refresh(ctx)

	return &RefreshPulseOutput{
		Body: buildPulseResponse(snap, h.service.Loading(), "", ""),
	}, nil
}

// GetSourcesOutput defines the output for the GetSources operation
type GetSourcesOutput struct {
	Body responses.SourcesResponse
}

// GetSources handles the GET /pulse/sources endpoint
func (h *PulseHandler) GetSources(ctx context.Context, input *struct{}) (*GetSourcesOutput, error) {
	sources := h.service.Sources()

	resp := responses.SourcesResponse{
		Sources: make([]responses.SourceResponse, 0, len(sources)),
	}
	for _, src := range sources {
		resp.Sources = append(resp.Sources, responses.SourceResponse{
			Name:     src.Name,
			URL:      src.URL,
			Category: string(src.Category),
			Color:    src.Color,
		})
	}

	return &GetSourcesOutput{Body: resp}, nil
}

// buildPulseResponse assembles the view: filters apply to the article list
// while stats always describe the unfiltered snapshot.
func buildPulseResponse(snap domain.Snapshot, loading bool, category, query string) responses.PulseResponse {
	filtered := filterArticles(snap.Articles, category, query)

	articles := make([]responses.ArticleResponse, 0, len(filtered))
	for _, a := range filtered {
		articles = append(articles, responses.ArticleResponse{
			Title:       a.Title,
			Link:        a.Link,
			PublishedAt: a.PublishedAt,
			Description: a.Description,
			Source:      a.Source,
			Category:    string(a.Category),
			Color:       a.Color,
		})
	}

	return responses.PulseResponse{
		Articles:    articles,
		Stats:       buildStats(snap.Articles),
		Categories:  categoryOptions(),
		LastUpdated: snap.LastUpdated,
		Loading:     loading,
		Error:       snap.Err,
	}
}

// filterArticles applies the category equality filter and the substring
// search, combined with logical AND.
func filterArticles(articles []domain.Article, category, query string) []domain.Article {
	query = strings.ToLower(strings.TrimSpace(query))
	matchAll := category == "" || category == AllCategories

	filtered := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if !matchAll && string(a.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Title), query) &&
			!strings.Contains(strings.ToLower(a.Description), query) {
			continue
		}
		filtered = append(filtered, a)
	}

	return filtered
}

// buildStats derives summary statistics from the unfiltered article list.
func buildStats(articles []domain.Article) responses.PulseStatsResponse {
	sources := make(map[string]bool)
	categories := make(map[domain.Category]bool)
	for _, a := range articles {
		sources[a.Source] = true
		categories[a.Category] = true
	}

	return responses.PulseStatsResponse{
		TotalArticles: len(articles),
		SourceCount:   len(sources),
		CategoryCount: len(categories),
	}
}

// categoryOptions returns the filter choices offered to the view.
func categoryOptions() []string {
	options := []string{AllCategories}
	for _, c := range domain.Categories() {
		options = append(options, string(c))
	}
	return options
}
