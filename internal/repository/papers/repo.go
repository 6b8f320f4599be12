// Package papers executes paper searches against the ResearchHub backend
// explore endpoint.
package papers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/researchhub/searchd/internal/domain"
	"github.com/researchhub/searchd/internal/metrics"
)

// backendGetter is the consumer interface for the backend REST client (ISP).
type backendGetter interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

// Repo issues paginated explore searches.
type Repo struct {
	backend backendGetter
}

// New creates a paper search repository.
func New(backend backendGetter) *Repo {
	return &Repo{backend: backend}
}

// pageDTO mirrors the backend's Spring-style page payload.
type pageDTO struct {
	Content  []domain.Paper `json:"content"`
	Pageable struct {
		PageNumber int `json:"pageNumber"`
		PageSize   int `json:"pageSize"`
	} `json:"pageable"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// Search executes the explore search. A request without filters is valid
// and returns the unfiltered paper feed.
func (r *Repo) Search(ctx context.Context, req domain.SearchRequest) (domain.PaperPage, error) {
	q := url.Values{}
	if req.Query != "" {
		q.Set("query", req.Query)
	}
	for _, id := range req.CategoryIDs {
		q.Add("categories", id)
	}
	if req.Year != 0 {
		q.Set("year", strconv.Itoa(req.Year))
	}
	if req.Author != "" {
		q.Set("author", req.Author)
	}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("size", strconv.Itoa(req.Size))

	var dto pageDTO
	if err := r.backend.GetJSON(ctx, "/api/explore", q, &dto); err != nil {
		metrics.BackendSearchTotal.WithLabelValues("error").Inc()
		return domain.PaperPage{}, fmt.Errorf("explore search: %w", err)
	}
	metrics.BackendSearchTotal.WithLabelValues("success").Inc()

	return domain.PaperPage{
		Content:       dto.Content,
		Page:          dto.Pageable.PageNumber,
		Size:          dto.Pageable.PageSize,
		TotalElements: dto.TotalElements,
		TotalPages:    dto.TotalPages,
		First:         dto.First,
		Last:          dto.Last,
	}, nil
}

// Trending returns the most viewed papers.
func (r *Repo) Trending(ctx context.Context, page, size int) (domain.PaperPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var dto pageDTO
	if err := r.backend.GetJSON(ctx, "/api/explore/trending", q, &dto); err != nil {
		metrics.BackendSearchTotal.WithLabelValues("error").Inc()
		return domain.PaperPage{}, fmt.Errorf("trending: %w", err)
	}
	metrics.BackendSearchTotal.WithLabelValues("success").Inc()

	return domain.PaperPage{
		Content:       dto.Content,
		Page:          dto.Pageable.PageNumber,
		Size:          dto.Pageable.PageSize,
		TotalElements: dto.TotalElements,
		TotalPages:    dto.TotalPages,
		First:         dto.First,
		Last:          dto.Last,
	}, nil
}
