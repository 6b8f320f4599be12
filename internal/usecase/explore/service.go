// Package explore runs the full AI search pipeline: interpret the query,
// resolve category names against the catalog snapshot, execute the
// paginated search.
package explore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/researchhub/searchd/internal/domain"
	"github.com/researchhub/searchd/internal/logger"
	"github.com/researchhub/searchd/internal/usecase/interpret"
)

// Service coordinates interpretation and search execution.
type Service struct {
	interpreter     Interpreter
	repo            Repository
	defaultPageSize int
	maxPageSize     int
}

// New creates an explore service.
func New(interpreter Interpreter, repo Repository) *Service {
	return &Service{
		interpreter:     interpreter,
		repo:            repo,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// WithPagination configures page size bounds.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// Search interprets the query and executes the resulting filters. Category
// names are resolved to IDs against the snapshot the interpretation was
// made with. An interpretation with no filters degrades to an unfiltered
// browse, never an error.
func (s *Service) Search(
	ctx context.Context, query string, page, size int,
) (domain.PaperPage, interpret.Result, error) {
	res := s.interpreter.Interpret(ctx, query)

	req := domain.SearchRequest{
		Query:       res.Filters.Query,
		CategoryIDs: domain.ResolveCategoryIDs(res.Filters.Categories, res.Catalog),
		Year:        res.Filters.Year,
		Author:      res.Filters.Author,
		Page:        max(page, 0),
		Size:        s.clampSize(size),
	}

	logger.FromContext(ctx).Debug("executing explore search",
		zap.String("query", req.Query),
		zap.Strings("category_ids", req.CategoryIDs),
		zap.Int("year", req.Year),
		zap.String("author", req.Author),
		zap.String("source", string(res.Source)),
	)

	papers, err := s.repo.Search(ctx, req)
	if err != nil {
		return domain.PaperPage{}, res, fmt.Errorf("execute search: %w", err)
	}
	return papers, res, nil
}

// Trending returns the most viewed papers.
func (s *Service) Trending(ctx context.Context, page, size int) (domain.PaperPage, error) {
	papers, err := s.repo.Trending(ctx, max(page, 0), s.clampSize(size))
	if err != nil {
		return domain.PaperPage{}, fmt.Errorf("trending: %w", err)
	}
	return papers, nil
}

func (s *Service) clampSize(size int) int {
	if size <= 0 {
		return s.defaultPageSize
	}
	if size > s.maxPageSize {
		return s.maxPageSize
	}
	return size
}
