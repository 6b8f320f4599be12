// Package interpret converts free-text search queries into structured
// filters: a model-based parser first, a deterministic rule-based parser
// whenever the model path fails.
package interpret

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/researchhub/searchd/internal/domain"
	"github.com/researchhub/searchd/internal/logger"
	"github.com/researchhub/searchd/internal/metrics"
)

// Source identifies which parser produced an interpretation.
type Source string

const (
	// SourceModel means the model-based parser succeeded.
	SourceModel Source = "model"
	// SourceFallback means the rule-based parser was used after a model
	// failure.
	SourceFallback Source = "fallback"
)

// Result is a completed interpretation. Catalog is the snapshot the
// filters were parsed against; callers must resolve category names to IDs
// with this same snapshot, never a fresh fetch.
type Result struct {
	Filters domain.ParsedFilters
	Catalog []domain.Category
	Source  Source
}

// Service orchestrates query interpretation.
type Service struct {
	catalog CatalogReader
	model   ModelParser
	local   *LocalParser
}

// New creates an interpretation service.
func New(catalog CatalogReader, model ModelParser, local *LocalParser) *Service {
	return &Service{catalog: catalog, model: model, local: local}
}

// Interpret parses a free-text query into search filters. It always
// resolves: a catalog failure degrades to an empty catalog, a model
// failure falls back to the rule-based parser on the same snapshot.
// Overlapping calls are independent; the service holds no mutable state.
func (s *Service) Interpret(ctx context.Context, query string) Result {
	log := logger.FromContext(ctx)
	query = strings.TrimSpace(query)

	catalog, err := s.catalog.Fetch(ctx)
	if err != nil {
		metrics.CatalogFetchErrorsTotal.Inc()
		log.Warn("category catalog unavailable, interpreting without categories", zap.Error(err))
		catalog = nil
	}
	names := domain.CategoryNames(catalog)
	log.Debug("interpreting query",
		zap.String("query", query),
		zap.Int("catalog_size", len(names)),
	)

	filters, err := s.model.Parse(ctx, query, names)
	if err != nil {
		log.Warn("model parse failed, using rule-based fallback", zap.Error(err))
		metrics.InterpretRequestsTotal.WithLabelValues(string(SourceFallback)).Inc()
		return Result{
			Filters: s.local.Parse(query, names),
			Catalog: catalog,
			Source:  SourceFallback,
		}
	}

	metrics.InterpretRequestsTotal.WithLabelValues(string(SourceModel)).Inc()
	log.Debug("model parse succeeded",
		zap.String("parsed_query", filters.Query),
		zap.Strings("categories", filters.Categories),
		zap.Int("year", filters.Year),
		zap.String("author", filters.Author),
	)
	return Result{Filters: filters, Catalog: catalog, Source: SourceModel}
}
