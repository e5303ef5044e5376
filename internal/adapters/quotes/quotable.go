package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/enigma-wellbeing/enigma-engine/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.quotable.io"
	requestTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20
	resultLimit    = 12
)

// Client queries a quotable-style search endpoint. Any failure is returned
// to the caller, who is expected to fall back to local content.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a search client; an empty baseURL targets the public
// quotable API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type searchResponse struct {
	Results []struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	} `json:"results"`
}

// Search looks up quotes matching the query.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Quote, error) {
	endpoint := fmt.Sprintf("%s/search/quotes?query=%s&limit=%d",
		c.baseURL, url.QueryEscape(query), resultLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("quote search: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote search: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote search: unexpected status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("quote search: decode response: %w", err)
	}

	found := make([]domain.Quote, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if strings.TrimSpace(r.Content) == "" {
			continue
		}
		found = append(found, domain.Quote{Content: r.Content, Author: r.Author})
	}
	return found, nil
}
