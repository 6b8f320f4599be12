package explore

import (
	"context"

	"github.com/researchhub/searchd/internal/domain"
	"github.com/researchhub/searchd/internal/usecase/interpret"
)

// Interpreter turns free text into structured filters.
type Interpreter interface {
	Interpret(ctx context.Context, query string) interpret.Result
}

// Repository executes resolved searches against the paper backend.
type Repository interface {
	Search(ctx context.Context, req domain.SearchRequest) (domain.PaperPage, error)
	Trending(ctx context.Context, page, size int) (domain.PaperPage, error)
}
