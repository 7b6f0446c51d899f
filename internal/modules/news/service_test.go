package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	byQuery map[string][]Article
	failFor map[string]error
}

func (f *fakeFetcher) Configured() bool { return true }

func (f *fakeFetcher) Fetch(ctx context.Context, query string) ([]Article, error) {
	if err, ok := f.failFor[query]; ok {
		return nil, err
	}
	return f.byQuery[query], nil
}

func at(day int) time.Time {
	return time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC)
}

func TestAggregate_DedupesByTitlePrefixAndSortsByRecency(t *testing.T) {
	longTitle := "Kedarnath yatra registration opens with new safety rules for pilgrims this season"
	f := &fakeFetcher{byQuery: map[string][]Article{
		"Kedarnath temple": {
			{Title: longTitle, Source: "outlet-a", PublishedAt: at(10)},
			{Title: "Helicopter services resume", PublishedAt: at(20)},
		},
		"Char Dham yatra": {
			// same story syndicated with a different tail past the prefix
			{Title: longTitle + " and more", Source: "outlet-b", PublishedAt: at(12)},
			{Title: "Road closures near Gaurikund", PublishedAt: at(5)},
		},
	}}

	feed, err := NewService(f, nil).Aggregate(context.Background(), 10)
	require.NoError(t, err)

	require.Equal(t, 3, feed.Count)
	assert.True(t, feed.Success)
	assert.Equal(t, "Helicopter services resume", feed.News[0].Title)
	// first occurrence wins the dedupe
	assert.Equal(t, "outlet-a", feed.News[1].Source)
	assert.Equal(t, "Road closures near Gaurikund", feed.News[2].Title)
}

func TestAggregate_LimitApplied(t *testing.T) {
	f := &fakeFetcher{byQuery: map[string][]Article{
		"Kedarnath temple": {
			{Title: "one", PublishedAt: at(1)},
			{Title: "two", PublishedAt: at(2)},
			{Title: "three", PublishedAt: at(3)},
		},
	}}
	feed, err := NewService(f, nil).Aggregate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, feed.Count)
	assert.Len(t, feed.News, 2)
}

func TestAggregate_OneQueryFailureIsTolerated(t *testing.T) {
	f := &fakeFetcher{
		byQuery: map[string][]Article{
			"Char Dham yatra": {{Title: "survivor", PublishedAt: at(1)}},
		},
		failFor: map[string]error{"Kedarnath temple": errors.New("429")},
	}
	feed, err := NewService(f, nil).Aggregate(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, feed.Count)
}

type unconfiguredFetcher struct{}

func (unconfiguredFetcher) Configured() bool { return false }

func (unconfiguredFetcher) Fetch(ctx context.Context, query string) ([]Article, error) {
	return nil, nil
}

func TestAggregate_MissingKeyIsConfigurationError(t *testing.T) {
	_, err := NewService(unconfiguredFetcher{}, nil).Aggregate(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
