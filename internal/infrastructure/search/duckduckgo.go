// Package search implements the external news-search collaborator against
// DuckDuckGo's news endpoint.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/you/tradeops/domain"
)

const (
	defaultBaseURL    = "https://duckduckgo.com"
	defaultRegion     = "in-en"
	defaultTimeLimit  = "w" // trailing week
	defaultMaxResults = 10
)

var vqdPattern = regexp.MustCompile(`vqd=['"]?([\d-]+)['"]?`)

// DuckDuckGoClient implements domain.NewsFetcher. The news endpoint requires
// a per-query vqd token obtained from the landing page, so each fetch is a
// two-request exchange.
type DuckDuckGoClient struct {
	baseURL    string
	region     string
	timeLimit  string
	maxResults int
	client     *http.Client
}

// NewDuckDuckGoClient creates a news client with sane defaults
func NewDuckDuckGoClient(timeout time.Duration) *DuckDuckGoClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &DuckDuckGoClient{
		baseURL:    defaultBaseURL,
		region:     defaultRegion,
		timeLimit:  defaultTimeLimit,
		maxResults: defaultMaxResults,
		client:     &http.Client{Timeout: timeout},
	}
}

// WithBaseURL sets a custom base URL (useful for tests and proxies)
func (c *DuckDuckGoClient) WithBaseURL(baseURL string) *DuckDuckGoClient {
	c.baseURL = baseURL
	return c
}

type newsResponse struct {
	Results []newsResult `json:"results"`
}

type newsResult struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Source  string `json:"source"`
	Date    int64  `json:"date"`
	URL     string `json:"url"`
}

// FetchSectorNews implements domain.NewsFetcher
func (c *DuckDuckGoClient) FetchSectorNews(ctx context.Context, sector string) ([]domain.NewsArticle, error) {
	query := sector + " India"

	vqd, err := c.fetchVQD(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vqd lookup: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("o", "json")
	params.Set("l", c.region)
	params.Set("df", c.timeLimit)
	params.Set("p", "1") // safe search on
	params.Set("vqd", vqd)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/news.js?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news request: unexpected status %d", resp.StatusCode)
	}

	var parsed newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("news response: %w", err)
	}

	articles := make([]domain.NewsArticle, 0, c.maxResults)
	for _, r := range parsed.Results {
		if len(articles) >= c.maxResults {
			break
		}
		articles = append(articles, domain.NewsArticle{
			Title:       r.Title,
			Description: r.Excerpt,
			Source:      r.Source,
			PublishedAt: time.Unix(r.Date, 0).UTC(),
			URL:         r.URL,
		})
	}
	return articles, nil
}

// fetchVQD scrapes the query token from the landing page
func (c *DuckDuckGoClient) fetchVQD(ctx context.Context, query string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?q="+url.QueryEscape(query), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	m := vqdPattern.FindSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("vqd token not found for query %q", query)
	}
	return string(m[1]), nil
}
