package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const newsdataBaseURL = "https://newsdata.io/api/1/news"

// Client fetches search results from the NewsData API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    newsdataBaseURL,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) Configured() bool { return c.apiKey != "" }

type newsdataResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		SourceID    string `json:"source_id"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		PubDate     string `json:"pubDate"`
	} `json:"results"`
}

func (c *Client) Fetch(ctx context.Context, query string) ([]Article, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("q", query)
	q.Set("language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API error %s: %s", resp.Status, string(raw))
	}

	var parsed newsdataResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("news response decode failed: %w", err)
	}

	out := make([]Article, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		published, _ := time.Parse("2006-01-02 15:04:05", r.PubDate)
		out = append(out, Article{
			Title:       r.Title,
			Link:        r.Link,
			Source:      r.SourceID,
			Description: r.Description,
			ImageURL:    r.ImageURL,
			PublishedAt: published,
		})
	}
	return out, nil
}
