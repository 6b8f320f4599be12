// Package openai implements the model-based query parser on top of any
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/researchhub/searchd/internal/domain"
	"github.com/researchhub/searchd/internal/jsonscan"
	"github.com/researchhub/searchd/internal/metrics"
)

// Parser extracts search filters from free text by delegating to a
// generative model. It never falls back internally: every failure mode
// surfaces as domain.ErrModelParse so the orchestrator owns recovery.
type Parser struct {
	client      *openai.Client
	model       string
	temperature float32
	hasKey      bool
	logger      *zap.Logger
}

// Config holds the model provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	// Timeout bounds the whole completion call. A model endpoint that
	// accepts the connection and stalls must still surface ErrModelParse
	// so the orchestrator can fall back.
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewParser creates a model-based parser.
func NewParser(cfg *Config) *Parser {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Parser{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		hasKey:      cfg.APIKey != "",
		logger:      logger,
	}
}

// payload is the JSON contract the prompt instructs the model to follow.
type payload struct {
	Query      *string  `json:"query"`
	Categories []string `json:"categories"`
	Year       *int     `json:"year"`
	Author     *string  `json:"author"`
}

// Parse sends the query and candidate category names to the model and
// extracts ParsedFilters from its reply.
func (p *Parser) Parse(
	ctx context.Context, query string, categories []string,
) (domain.ParsedFilters, error) {
	if !p.hasKey {
		metrics.ModelParseErrorsTotal.WithLabelValues(p.model, "no_credentials").Inc()
		return domain.ParsedFilters{}, fmt.Errorf("no API key configured: %w", domain.ErrModelParse)
	}

	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(query, categories),
			},
		},
	}

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.ModelParseErrorsTotal.WithLabelValues(p.model, "api_error").Inc()
		return domain.ParsedFilters{}, parseAPIError(err)
	}
	metrics.ModelParseDuration.WithLabelValues(p.model).Observe(duration.Seconds())

	if len(resp.Choices) == 0 {
		metrics.ModelParseErrorsTotal.WithLabelValues(p.model, "empty_response").Inc()
		return domain.ParsedFilters{}, fmt.Errorf("empty completion response: %w", domain.ErrModelParse)
	}
	text := resp.Choices[0].Message.Content

	raw, ok := jsonscan.FirstObject(text)
	if !ok {
		metrics.ModelParseErrorsTotal.WithLabelValues(p.model, "no_json").Inc()
		p.logger.Debug("model reply contained no JSON object", zap.String("reply", text))
		return domain.ParsedFilters{}, fmt.Errorf("no JSON object in model reply: %w", domain.ErrModelParse)
	}

	var body payload
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		metrics.ModelParseErrorsTotal.WithLabelValues(p.model, "bad_json").Inc()
		return domain.ParsedFilters{}, fmt.Errorf("decode model reply: %v: %w", err, domain.ErrModelParse)
	}

	filters := domain.ParsedFilters{Categories: body.Categories}
	if body.Query != nil {
		filters.Query = *body.Query
	}
	if body.Year != nil {
		filters.Year = *body.Year
	}
	if body.Author != nil {
		filters.Author = *body.Author
	}
	return filters.Normalize(), nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrModelParse so the orchestrator
// falls back on any of them.
func parseAPIError(err error) error {
	wrap := domain.ErrModelParse

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("completion request failed: %v: %w", err, wrap)
}
