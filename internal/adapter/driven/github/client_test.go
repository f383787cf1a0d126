package github_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	ghAdapter "github.com/pecoelho01/portfolio/internal/adapter/driven/github"
	"github.com/pecoelho01/portfolio/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *ghAdapter.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ghAdapter.NewClientWithHTTPClient(server.Client(), server.URL)
	require.NoError(t, err)

	return client
}

// repoJSON is a helper struct for building GitHub API repository responses.
type repoJSON struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Language    *string  `json:"language"`
	UpdatedAt   string   `json:"updated_at"`
	HTMLURL     string   `json:"html_url"`
	Homepage    *string  `json:"homepage"`
	Topics      []string `json:"topics,omitempty"`
	Fork        bool     `json:"fork"`
}

func strPtr(s string) *string { return &s }

func TestListRepositories_RequestShape(t *testing.T) {
	requests := make(chan *http.Request, 1)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]repoJSON{})
	})

	client := newTestClient(t, handler)
	_, err := client.ListRepositories(context.Background(), "pecoelho01")

	require.NoError(t, err)
	got := <-requests
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/users/pecoelho01/repos", got.URL.Path)
	assert.Equal(t, "updated", got.URL.Query().Get("sort"))
	assert.Equal(t, "100", got.URL.Query().Get("per_page"))
	assert.Empty(t, got.URL.Query().Get("page"))
	assert.Equal(t, "application/vnd.github+json", got.Header.Get("Accept"))
	assert.Equal(t, "max-age=0", got.Header.Get("Cache-Control"))
	assert.Empty(t, got.Header.Get("Authorization"))
}

func TestListRepositories_MapsFields(t *testing.T) {
	repos := []repoJSON{
		{
			Name:        "portfolio",
			Description: strPtr("Personal site"),
			Language:    strPtr("JavaScript"),
			UpdatedAt:   "2024-03-05T12:30:00Z",
			HTMLURL:     "https://github.com/pecoelho01/portfolio",
			Homepage:    strPtr("pecoelho01.github.io"),
			Topics:      []string{"html", "css"},
		},
		{
			Name:      "forked-lib",
			UpdatedAt: "2024-01-01T00:00:00Z",
			HTMLURL:   "https://github.com/pecoelho01/forked-lib",
			Fork:      true,
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(repos)
	})

	client := newTestClient(t, handler)
	result, err := client.ListRepositories(context.Background(), "pecoelho01")

	require.NoError(t, err)
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, "portfolio", first.Name)
	require.NotNil(t, first.Description)
	assert.Equal(t, "Personal site", *first.Description)
	require.NotNil(t, first.Language)
	assert.Equal(t, "JavaScript", *first.Language)
	require.NotNil(t, first.Homepage)
	assert.Equal(t, "pecoelho01.github.io", *first.Homepage)
	assert.Equal(t, []string{"html", "css"}, first.Topics)
	assert.Equal(t, time.Date(2024, time.March, 5, 12, 30, 0, 0, time.UTC), first.UpdatedAt.UTC())
	assert.False(t, first.Fork)

	second := result[1]
	assert.Nil(t, second.Description, "null description should stay absent")
	assert.Nil(t, second.Language)
	assert.Nil(t, second.Homepage)
	assert.NotNil(t, second.Topics, "should return empty slice, not nil")
	assert.Empty(t, second.Topics)
	assert.True(t, second.Fork)
}

func TestListRepositories_EmptyList(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestClient(t, handler)
	result, err := client.ListRepositories(context.Background(), "pecoelho01")

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestListRepositories_HTTPErrorWithMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found","documentation_url":"https://docs.github.com"}`))
	})

	client := newTestClient(t, handler)
	_, err := client.ListRepositories(context.Background(), "nobody")

	require.Error(t, err)

	var statusErr *model.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Not Found", statusErr.Message)
	assert.Equal(t, "Not Found", statusErr.Error())
}

func TestListRepositories_HTTPErrorWithInvalidJSONBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	client := newTestClient(t, handler)
	_, err := client.ListRepositories(context.Background(), "nobody")

	require.Error(t, err)

	var statusErr *model.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Empty(t, statusErr.Message)
	assert.Equal(t, "HTTP 404", statusErr.Error())
}

func TestListRepositories_MalformedSuccessBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"a list"`))
	})

	client := newTestClient(t, handler)
	_, err := client.ListRepositories(context.Background(), "pecoelho01")

	require.Error(t, err)

	var statusErr *model.HTTPStatusError
	assert.NotErrorAs(t, err, &statusErr)
}

func TestListRepositories_SingleRequestNoRetry(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, handler)
	_, err := client.ListRepositories(context.Background(), "pecoelho01")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestListRepositories_IgnoresNextPage(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Link", `<http://`+r.Host+r.URL.Path+`?page=2>; rel="next"`)
		_ = json.NewEncoder(w).Encode([]repoJSON{{Name: "one", UpdatedAt: "2024-01-01T00:00:00Z"}})
	})

	client := newTestClient(t, handler)
	result, err := client.ListRepositories(context.Background(), "pecoelho01")

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewClientWithHTTPClient_InvalidBaseURL(t *testing.T) {
	_, err := ghAdapter.NewClientWithHTTPClient(http.DefaultClient, "://bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing base URL")
}

func TestNewClient_RevalidatesFreshCachedResponse(t *testing.T) {
	var (
		gets        atomic.Int32
		notModified atomic.Int32
		version     atomic.Int32
	)
	version.Store(1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gets.Add(1)
		v := version.Load()
		etag := fmt.Sprintf(`"v%d"`, v)

		w.Header().Set("Cache-Control", "public, max-age=60, s-maxage=60")
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			notModified.Add(1)
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		name := "old"
		if v > 1 {
			name = "new"
		}
		_ = json.NewEncoder(w).Encode([]repoJSON{{Name: name, UpdatedAt: "2024-01-01T00:00:00Z"}})
	}))
	t.Cleanup(srv.Close)

	client, err := ghAdapter.NewClient(srv.URL + "/")
	require.NoError(t, err)

	load := func() string {
		t.Helper()
		repos, err := client.ListRepositories(context.Background(), "pecoelho01")
		require.NoError(t, err)
		require.Len(t, repos, 1)
		return repos[0].Name
	}

	assert.Equal(t, "old", load())
	assert.Equal(t, "old", load(), "unchanged data is reused after a 304")

	version.Store(2)
	assert.Equal(t, "new", load())

	assert.Equal(t, int32(3), gets.Load(), "one upstream GET per load")
	assert.Equal(t, int32(1), notModified.Load())
}
