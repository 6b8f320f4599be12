package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/researchhub/searchd/internal/domain"
)

type stubBackend struct {
	payload  string
	err      error
	lastPath string
}

func (s *stubBackend) GetJSON(_ context.Context, path string, _ url.Values, out any) error {
	s.lastPath = path
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.payload), out)
}

func TestFetch(t *testing.T) {
	backend := &stubBackend{
		payload: `[
			{"id":"c1","name":"Computer Science","description":"CS"},
			{"id":"c2","name":"Physics"},
			{"id":"c3","name":""}
		]`,
	}

	cats, err := New(backend).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if backend.lastPath != "/api/categories" {
		t.Errorf("unexpected path: %s", backend.lastPath)
	}

	want := []domain.Category{
		{ID: "c1", Name: "Computer Science"},
		{ID: "c2", Name: "Physics"},
	}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("cats[%d] = %+v, want %+v", i, cats[i], want[i])
		}
	}
}

func TestFetch_TransportError(t *testing.T) {
	backend := &stubBackend{err: domain.ErrBackendUnavailable}

	_, err := New(backend).Fetch(context.Background())
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}
