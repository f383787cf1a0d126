// Package github implements the RepoLister port using the go-github library.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/pecoelho01/portfolio/internal/domain/model"
	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RepoLister = (*Client)(nil)

const (
	// DefaultBaseURL is the public GitHub REST API root.
	DefaultBaseURL = "https://api.github.com/"

	// perPage is the single bounded page size requested from the API.
	perPage = 100
)

// Client implements the driven.RepoLister port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates an unauthenticated GitHub API client with the following
// transport stack:
//  1. acceptTransport (forces the application/vnd.github+json media type and
//     Cache-Control: max-age=0)
//  2. httpcache (in-memory ETag store; every call reaches GitHub, with
//     If-None-Match once a response is stored)
//  3. go-github (GitHub REST API client)
//
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) (*Client, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	return NewClientWithHTTPClient(cacheTransport.Client(), baseURL)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base
// URL. Tests use it to inject an httptest server. The given client is not
// modified; its transport is wrapped to set the Accept header.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	client := gh.NewClient(withAcceptHeader(httpClient))
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// ListRepositories fetches one page of up to 100 public repositories owned by
// account, most recently updated first. Non-success responses are returned as
// *model.HTTPStatusError carrying the API's "message" when the body had one.
func (c *Client) ListRepositories(ctx context.Context, account string) ([]model.RepositorySummary, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	repos, resp, err := c.gh.Repositories.ListByUser(ctx, account, opts)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", account, mapAPIError(err))
	}

	logRateLimit(resp, "users/"+account+"/repos", len(repos))

	summaries := make([]model.RepositorySummary, 0, len(repos))
	for _, r := range repos {
		summaries = append(summaries, mapRepository(r))
	}

	return summaries, nil
}

// mapRepository converts a go-github Repository to a domain RepositorySummary.
// Optional fields keep their pointer so absence survives the mapping.
func mapRepository(r *gh.Repository) model.RepositorySummary {
	topics := make([]string, 0, len(r.Topics))
	topics = append(topics, r.Topics...)

	return model.RepositorySummary{
		Name:        r.GetName(),
		Description: r.Description,
		Language:    r.Language,
		UpdatedAt:   r.GetUpdatedAt().Time,
		HTMLURL:     r.GetHTMLURL(),
		Homepage:    r.Homepage,
		Topics:      topics,
		Fork:        r.GetFork(),
	}
}

// mapAPIError converts go-github's error responses to *model.HTTPStatusError.
// go-github decodes the body's JSON "message" itself and leaves it empty when
// the body is not JSON, so a parse failure never hides the status.
func mapAPIError(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &model.HTTPStatusError{StatusCode: statusCode(rateErr.Response), Message: rateErr.Message}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &model.HTTPStatusError{StatusCode: statusCode(abuseErr.Response), Message: abuseErr.Message}
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) {
		return &model.HTTPStatusError{StatusCode: statusCode(respErr.Response), Message: respErr.Message}
	}

	return err
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 10 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
