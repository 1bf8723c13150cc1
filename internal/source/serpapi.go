package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ClientConfig contains SerpAPI client settings.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is a minimal SerpAPI search client shared by all adapters.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Client, filling zero config values with defaults.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://serpapi.com/search.json"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// Search performs one SerpAPI query. The api_key parameter is attached here
// so adapters only describe the engine-specific part of the request.
func (c *Client) Search(ctx context.Context, params url.Values) (*searchResponse, error) {
	if c.apiKey == "" {
		return nil, errors.New("serpapi: api key not configured")
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi: HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("serpapi: decode response: %w", err)
	}
	return &sr, nil
}

// searchResponse covers the result buckets the adapters read. Which buckets a
// query fills depends on the engine.
type searchResponse struct {
	NewsResults    []searchResult `json:"news_results"`
	OrganicResults []searchResult `json:"organic_results"`
	TopStories     []searchResult `json:"top_stories"`
}

type searchResult struct {
	Title     string `json:"title"`
	Headline  string `json:"headline"`
	Source    string `json:"source"`
	Link      string `json:"link"`
	Snippet   string `json:"snippet"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Thumbnail string `json:"thumbnail"`
}

func limitResults(items []searchResult, n int) []searchResult {
	if len(items) > n {
		return items[:n]
	}
	return items
}
