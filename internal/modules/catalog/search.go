package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"staykedarnath/internal/domain"
)

const maxSearchResults = 10

type SearchHit struct {
	Article domain.HelpArticle `json:"article"`
	Score   int                `json:"score"`
}

type articleCorpus []domain.HelpArticle

func (c articleCorpus) Len() int { return len(c) }

// String feeds title plus a slice of the body to the matcher; titles come
// first so title matches outrank body-only ones at equal edit distance.
func (c articleCorpus) String(i int) string {
	body := c[i].Body
	if len(body) > 200 {
		body = body[:200]
	}
	return c[i].Title + " " + body
}

// SearchHelp fuzzy-matches published articles against the query and returns
// the best hits, highest score first.
func (s *Service) SearchHelp(ctx context.Context, query string) ([]SearchHit, error) {
	articles, err := s.help.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		hits := make([]SearchHit, 0, len(articles))
		for _, a := range articles {
			hits = append(hits, SearchHit{Article: a})
		}
		return hits, nil
	}

	matches := fuzzy.FindFrom(query, articleCorpus(articles))
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })

	hits := make([]SearchHit, 0, maxSearchResults)
	for _, m := range matches {
		if len(hits) == maxSearchResults {
			break
		}
		hits = append(hits, SearchHit{Article: articles[m.Index], Score: m.Score})
	}
	return hits, nil
}
