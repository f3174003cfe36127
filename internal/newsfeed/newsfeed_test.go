package newsfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHeadlinesFetchesAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		w.Write([]byte(`{"articles":[
			{"title":"First story","url":"https://example.com/1"},
			{"title":"","url":"https://example.com/untitled"},
			{"title":"Second story","url":"https://example.com/2"}
		]}`))
	}))
	defer srv.Close()

	svc := NewService(srv.URL, "test-key", nil, zap.NewNop())
	articles := svc.Headlines(context.Background())

	require.Len(t, articles, 2, "untitled articles are dropped")
	assert.Equal(t, "First story", articles[0].Title)
	assert.Equal(t, "Second story", articles[1].Title)
}

func TestHeadlinesFallsBackToPlaceholders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService(srv.URL, "test-key", nil, zap.NewNop())
	articles := svc.Headlines(context.Background())

	require.Len(t, articles, 6)
	assert.Equal(t, "Top story #1", articles[0].Title)
	assert.Equal(t, Placeholders(), articles, "the placeholder set is deterministic")
}

func TestHeadlinesEmptyFeedFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"articles":[]}`))
	}))
	defer srv.Close()

	svc := NewService(srv.URL, "test-key", nil, zap.NewNop())
	articles := svc.Headlines(context.Background())

	assert.Equal(t, Placeholders(), articles)
}
