package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cattags/internal/delivery/http/controllers"
	"cattags/internal/domain"
	"cattags/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is a minimal in-memory TagRepository for routing tests.
type memRepo struct {
	tags map[string]*domain.Tag
}

func (m *memRepo) List(ctx context.Context) ([]*domain.Tag, error) {
	var out []*domain.Tag
	for _, t := range m.tags {
		out = append(out, t)
	}
	return out, nil
}

func (m *memRepo) Exists(ctx context.Context, value string) (bool, error) {
	_, ok := m.tags[value]
	return ok, nil
}

func (m *memRepo) Create(ctx context.Context, t *domain.Tag) error {
	t.ID = "id-" + t.Value
	m.tags[t.Value] = t
	return nil
}

func (m *memRepo) Update(ctx context.Context, oldValue, newValue string) (*domain.Tag, error) {
	t := m.tags[oldValue]
	delete(m.tags, oldValue)
	t.Value = newValue
	m.tags[newValue] = t
	return t, nil
}

func (m *memRepo) Delete(ctx context.Context, value string) error {
	delete(m.tags, value)
	return nil
}

type staticFetcher struct {
	tags []string
}

func (s staticFetcher) ListTags(ctx context.Context) ([]string, error) { return s.tags, nil }

func (s staticFetcher) RandomPicture(ctx context.Context, tag string) (*domain.Picture, error) {
	return &domain.Picture{ID: "p-" + tag, URL: "https://cataas.com/cat/p-" + tag, Tags: []string{tag}}, nil
}

func TestHandler_Scenario(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.NewTagService(&memRepo{tags: map[string]*domain.Tag{}}, staticFetcher{tags: []string{"cute", "funny"}})
	handler := NewHandler(logger, []string{"http://app.test"}, controllers.NewTagController(logger, svc))

	do := func(method, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "http://test"+target, nil)
		req.Header.Set("Origin", "http://app.test")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	steps := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodPost, "/tags?tag=funny", http.StatusCreated},
		{http.MethodPost, "/tags?tag=funny", http.StatusBadRequest},
		{http.MethodPost, "/tags?tag=xyz", http.StatusBadRequest},
		{http.MethodGet, "/tags/tags", http.StatusOK},
		{http.MethodGet, "/tags/available", http.StatusOK},
		{http.MethodGet, "/tags?tag=funny", http.StatusOK},
		{http.MethodPut, "/tags?oldTag=funny&newTag=cute", http.StatusAccepted},
		{http.MethodDelete, "/tags?tag=cute", http.StatusNoContent},
		{http.MethodGet, "/tags?tag=cute", http.StatusNotFound},
		{http.MethodPatch, "/tags?tag=cute", http.StatusMethodNotAllowed},
	}
	for _, s := range steps {
		rr := do(s.method, s.target)
		require.Equal(t, s.want, rr.Code, "%s %s: %s", s.method, s.target, rr.Body.String())
		assert.Equal(t, "http://app.test", rr.Header().Get("Access-Control-Allow-Origin"))
	}

	rr := do(http.MethodGet, "/tags/tags")
	assert.JSONEq(t, `{"data":[],"error":null}`, rr.Body.String())
}
