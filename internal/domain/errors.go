package domain

import "errors"

var (
	// ErrModelParse signals that the model-based parser could not produce
	// filters: missing credentials, transport failure, non-2xx response, or
	// no valid JSON in the model reply. Always recovered by falling back to
	// the rule-based parser; never user-facing.
	ErrModelParse = errors.New("model parse failed")
	// ErrCatalogUnavailable signals that the category catalog could not be
	// fetched. Recovered by interpreting against an empty catalog.
	ErrCatalogUnavailable = errors.New("category catalog unavailable")
	// ErrBackendUnavailable signals that the paper search backend rejected
	// or failed the request.
	ErrBackendUnavailable = errors.New("search backend unavailable")
	// ErrUnauthorized signals that the backend rejected our credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadRequest signals an invalid client request.
	ErrBadRequest = errors.New("bad request")
)
