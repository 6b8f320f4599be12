package interpret

import (
	"context"

	"github.com/researchhub/searchd/internal/domain"
)

// CatalogReader fetches the current category catalog snapshot.
type CatalogReader interface {
	Fetch(ctx context.Context) ([]domain.Category, error)
}

// ModelParser extracts filters by delegating to a generative model.
type ModelParser interface {
	Parse(ctx context.Context, query string, categories []string) (domain.ParsedFilters, error)
}
