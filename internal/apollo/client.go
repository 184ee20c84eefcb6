// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apollo queries the Apollo people-search API for chefs and turns the
// results into leads.
package apollo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/lead-harvester/internal/httputil"
)

// DefaultBaseURL is the Apollo API root.
const DefaultBaseURL = "https://api.apollo.io/v1"

const (
	searchPath      = "/mixed_people/search"
	searchKeyword   = "chef"
	defaultPage     = 1
	defaultPageSize = 100
)

// ChefTitles is the fixed set of job titles every search filters on.
var ChefTitles = []string{
	"Chef",
	"Head Chef",
	"Executive Chef",
	"Sous Chef",
	"Pastry Chef",
}

// ErrNoAPIKey is returned when a client is configured without a key.
var ErrNoAPIKey = errors.New("no Apollo API key configured")

// Config holds the credentials and endpoint for a Client. It is built once
// by NewConfig and has no setters.
type Config struct {
	apiKey        string
	baseURL       string
	authorization string
}

// NewConfig returns a Config for apiKey. An empty baseURL selects
// DefaultBaseURL.
func NewConfig(apiKey, baseURL string) (Config, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return Config{}, ErrNoAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		apiKey:        apiKey,
		baseURL:       strings.TrimRight(baseURL, "/"),
		authorization: "Bearer " + apiKey,
	}, nil
}

// APIKey returns the static API key.
func (c Config) APIKey() string { return c.apiKey }

// BaseURL returns the API root without a trailing slash.
func (c Config) BaseURL() string { return c.baseURL }

// Authorization returns the Authorization header value.
func (c Config) Authorization() string { return c.authorization }

// SearchRequest is the JSON body of a mixed_people/search call.
type SearchRequest struct {
	APIKey   string   `json:"api_key"`
	Keywords string   `json:"q_keywords"`
	Page     int      `json:"page"`
	PerPage  int      `json:"per_page"`
	Titles   []string `json:"person_titles"`
}

// Client issues searches against Apollo.
type Client struct {
	cfg       Config
	http      *http.Client
	userAgent string
}

// NewClient returns a Client using hc for transport. A nil hc uses
// http.DefaultClient.
func NewClient(cfg Config, hc *http.Client, userAgent string) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{cfg: cfg, http: hc, userAgent: userAgent}
}

// Config returns the client's configuration.
func (c *Client) Config() Config { return c.cfg }

// Search requests one page of chefs and returns the decoded response as-is.
// A page or perPage below 1 is replaced by its default (1 and 100).
//
// The HTTP status is not checked and nothing is retried: a transport error
// or a body that is not JSON is returned as an error, and an error payload
// that is valid JSON comes back like any other response.
func (c *Client) Search(ctx context.Context, page, perPage int) (SearchResponse, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPageSize
	}

	body := SearchRequest{
		APIKey:   c.cfg.apiKey,
		Keywords: searchKeyword,
		Page:     page,
		PerPage:  perPage,
		Titles:   ChefTitles,
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Authorization", c.cfg.authorization)
	if c.userAgent != "" {
		headers.Set("User-Agent", c.userAgent)
	}

	var resp SearchResponse
	if err := httputil.PostJSON(ctx, c.http, c.cfg.baseURL+searchPath, headers, body, &resp); err != nil {
		return nil, fmt.Errorf("Apollo search page %d: %w", page, err)
	}
	return resp, nil
}
