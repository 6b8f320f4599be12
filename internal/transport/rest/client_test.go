package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/zap"

	"github.com/researchhub/searchd/internal/domain"
)

func newTestClient(serverURL string, onUnauthorized func()) *Client {
	return NewClient(&Config{
		BaseURL:        serverURL,
		APIKey:         "test-key",
		OnUnauthorized: onUnauthorized,
		Logger:         zap.NewNop(),
	})
}

func TestGetJSON_DecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/categories" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"","data":[{"id":"c1","name":"Physics"}]}`))
	}))
	defer server.Close()

	var out []domain.Category
	err := newTestClient(server.URL, nil).GetJSON(context.Background(), "/api/categories", nil, &out)
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "c1" || out[0].Name != "Physics" {
		t.Errorf("unexpected payload: %+v", out)
	}
}

func TestGetJSON_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("year"); got != "2023" {
			t.Errorf("year = %q, want 2023", got)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	q := url.Values{}
	q.Set("year", "2023")
	var out struct{}
	if err := newTestClient(server.URL, nil).GetJSON(context.Background(), "api/explore", q, &out); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
}

func TestGetJSON_FailedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"bad year"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL, nil).GetJSON(context.Background(), "/api/explore", nil, nil)
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestGetJSON_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	err := newTestClient(server.URL, nil).GetJSON(context.Background(), "/api/categories", nil, nil)
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestGetJSON_UnauthorizedInvokesPolicy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	called := false
	err := newTestClient(server.URL, func() { called = true }).
		GetJSON(context.Background(), "/api/categories", nil, nil)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if !called {
		t.Error("onUnauthorized policy was not invoked")
	}
}
