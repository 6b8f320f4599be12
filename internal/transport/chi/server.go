// Package chi exposes the searchd HTTP API.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/researchhub/searchd/internal/domain"
	healthuc "github.com/researchhub/searchd/internal/usecase/health"
	"github.com/researchhub/searchd/internal/usecase/interpret"
)

// Interpreter turns free text into structured filters.
type Interpreter interface {
	Interpret(ctx context.Context, query string) interpret.Result
}

// ExploreSearcher runs the full interpret-and-search pipeline.
type ExploreSearcher interface {
	Search(ctx context.Context, query string, page, size int) (domain.PaperPage, interpret.Result, error)
	Trending(ctx context.Context, page, size int) (domain.PaperPage, error)
}

// CatalogReader fetches the category catalog.
type CatalogReader interface {
	Fetch(ctx context.Context) ([]domain.Category, error)
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server implements the searchd HTTP API.
type Server struct {
	interpreter   Interpreter
	explore       ExploreSearcher
	catalog       CatalogReader
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	interpreter Interpreter,
	explore ExploreSearcher,
	catalog CatalogReader,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		interpreter: interpreter,
		explore:     explore,
		catalog:     catalog,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrBadRequest, http.StatusBadRequest, "bad_request"),
		sentinelHandler(domain.ErrUnauthorized, http.StatusBadGateway, "backend_unauthorized"),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusBadGateway, "backend_unavailable"),
		sentinelHandler(domain.ErrBackendUnavailable, http.StatusBadGateway, "backend_unavailable"),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/interpret", s.Interpret)
		r.Get("/search", s.Search)
		r.Get("/categories", s.Categories)
		r.Get("/trending", s.Trending)
	})
	r.Get("/healthz", s.Healthz)
}

// filtersDTO is the wire shape of ParsedFilters: unset fields are null to
// match the interpretation contract.
type filtersDTO struct {
	Query      *string  `json:"query"`
	Categories []string `json:"categories"`
	Year       *int     `json:"year"`
	Author     *string  `json:"author"`
}

func filtersToDTO(f domain.ParsedFilters) filtersDTO {
	var dto filtersDTO
	if f.Query != "" {
		q := f.Query
		dto.Query = &q
	}
	dto.Categories = f.Categories
	if f.Year != 0 {
		y := f.Year
		dto.Year = &y
	}
	if f.Author != "" {
		a := f.Author
		dto.Author = &a
	}
	return dto
}

type interpretRequest struct {
	Query string `json:"query"`
}

type interpretResponse struct {
	Filters     filtersDTO `json:"filters"`
	CategoryIDs []string   `json:"categoryIds,omitempty"`
	Source      string     `json:"source"`
}

// Interpret handles POST /api/v1/interpret.
func (s *Server) Interpret(w http.ResponseWriter, r *http.Request) {
	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "query is required")
		return
	}

	res := s.interpreter.Interpret(r.Context(), req.Query)

	writeJSON(w, http.StatusOK, interpretResponse{
		Filters:     filtersToDTO(res.Filters),
		CategoryIDs: domain.ResolveCategoryIDs(res.Filters.Categories, res.Catalog),
		Source:      string(res.Source),
	})
}

type searchResponse struct {
	Papers  domain.PaperPage `json:"papers"`
	Filters filtersDTO       `json:"filters"`
	Source  string           `json:"source"`
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "q is required")
		return
	}
	page, err := intParam(r, "page", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	size, err := intParam(r, "size", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	papers, res, err := s.explore.Search(r.Context(), query, page, size)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Papers:  papers,
		Filters: filtersToDTO(res.Filters),
		Source:  string(res.Source),
	})
}

type categoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories handles GET /api/v1/categories.
func (s *Server) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.catalog.Fetch(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]categoryDTO, len(cats))
	for i, c := range cats {
		items[i] = categoryDTO{ID: c.ID, Name: c.Name}
	}
	writeJSON(w, http.StatusOK, items)
}

// Trending handles GET /api/v1/trending.
func (s *Server) Trending(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	size, err := intParam(r, "size", 10)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	papers, err := s.explore.Trending(r.Context(), page, size)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, papers)
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if errors.Is(err, sentinel) {
			writeError(w, status, code, err.Error())
			return true
		}
		return false
	}
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
