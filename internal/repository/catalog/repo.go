// Package catalog reads the category catalog from the ResearchHub backend.
package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/researchhub/searchd/internal/domain"
)

// backendGetter is the consumer interface for the backend REST client (ISP).
type backendGetter interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

// Repo implements the category catalog accessor. The catalog's source of
// truth is the backend; a snapshot is fetched per interpretation, no
// cross-request caching.
type Repo struct {
	backend backendGetter
}

// New creates a catalog repository.
func New(backend backendGetter) *Repo {
	return &Repo{backend: backend}
}

// categoryDTO is the backend wire shape. Description is carried by the
// backend but unused here.
type categoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Fetch returns the current catalog snapshot in backend order. Transport
// and payload failures surface as ErrCatalogUnavailable; the interpreter
// degrades to an empty catalog rather than failing the search.
func (r *Repo) Fetch(ctx context.Context) ([]domain.Category, error) {
	var dtos []categoryDTO
	if err := r.backend.GetJSON(ctx, "/api/categories", nil, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	cats := make([]domain.Category, 0, len(dtos))
	for _, d := range dtos {
		if d.Name == "" {
			continue
		}
		cats = append(cats, domain.Category{ID: d.ID, Name: d.Name})
	}
	return cats, nil
}
