package news

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("news API key is not configured")

// The aggregate feed always covers these three searches.
var defaultQueries = []string{
	"Kedarnath temple",
	"Char Dham yatra",
	"Uttarakhand pilgrimage",
}

// dedupe window: articles whose titles share this prefix length are treated
// as the same story syndicated across outlets
const titlePrefixLen = 50

type Article struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type fetcher interface {
	Configured() bool
	Fetch(ctx context.Context, query string) ([]Article, error)
}

type Service struct {
	fetcher fetcher
	loggerf func(format string, args ...interface{})
	queries []string
}

func NewService(f fetcher, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{fetcher: f, loggerf: loggerf, queries: defaultQueries}
}

type Feed struct {
	Success   bool      `json:"success"`
	Count     int       `json:"count"`
	News      []Article `json:"news"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Aggregate fans the fixed queries at the provider, deduplicates syndicated
// stories by title prefix, and returns the most recent articles first. A
// failed query is logged and skipped; the feed still assembles from the rest.
func (s *Service) Aggregate(ctx context.Context, limit int) (*Feed, error) {
	if !s.fetcher.Configured() {
		return nil, ErrNotConfigured
	}
	if limit <= 0 {
		limit = 12
	}

	var all []Article
	for _, q := range s.queries {
		articles, err := s.fetcher.Fetch(ctx, q)
		if err != nil {
			s.loggerf("level=warn msg=news query failed query=%q err=%v", q, err)
			continue
		}
		all = append(all, articles...)
	}

	deduped := dedupeByTitlePrefix(all)
	sort.Slice(deduped, func(i, j int) bool {
		return deduped[i].PublishedAt.After(deduped[j].PublishedAt)
	})
	if len(deduped) > limit {
		deduped = deduped[:limit]
	}

	return &Feed{
		Success:   true,
		Count:     len(deduped),
		News:      deduped,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func dedupeByTitlePrefix(in []Article) []Article {
	seen := make(map[string]struct{}, len(in))
	out := make([]Article, 0, len(in))
	for _, a := range in {
		key := strings.ToLower(strings.TrimSpace(a.Title))
		if len(key) > titlePrefixLen {
			key = key[:titlePrefixLen]
		}
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
