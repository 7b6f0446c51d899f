package wishlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staykedarnath/internal/domain"
)

type fakeStore struct {
	candidates []domain.WishlistItem
	stamped    []int64
}

func (f *fakeStore) Add(ctx context.Context, item *domain.WishlistItem) error         { return nil }
func (f *fakeStore) Remove(ctx context.Context, userID, packageID int64) error        { return nil }
func (f *fakeStore) ListByUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	return nil, nil
}
func (f *fakeStore) ListAlertCandidates(ctx context.Context) ([]domain.WishlistItem, error) {
	return f.candidates, nil
}
func (f *fakeStore) StampAlertSent(ctx context.Context, id int64, at time.Time) error {
	f.stamped = append(f.stamped, id)
	return nil
}

type fakeAlertSender struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeAlertSender) Configured() bool { return true }

func (f *fakeAlertSender) Send(ctx context.Context, from, to, replyTo, bcc, subject, html string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

func candidate(id int64, email string, price, target float64, sentAgo *time.Duration, now time.Time) domain.WishlistItem {
	item := domain.WishlistItem{
		ID:           id,
		UserID:       id,
		PackageID:    id,
		AlertEnabled: true,
		TargetPrice:  &target,
		User:         &domain.User{ID: id, Email: email, Name: "U"},
		Package:      &domain.TripPackage{ID: id, Title: "P", Price: price},
	}
	if sentAgo != nil {
		at := now.Add(-*sentAgo)
		item.AlertSentAt = &at
	}
	return item
}

func newTestSweep(store *fakeStore, sender AlertSender, now time.Time) *Sweep {
	s := NewSweep(store, sender, "from@x", "reply@x", 7*24*time.Hour, nil)
	s.now = func() time.Time { return now }
	return s
}

func TestSweep_WindowGatesResend(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	threeDays := 3 * 24 * time.Hour
	eightDays := 8 * 24 * time.Hour

	store := &fakeStore{candidates: []domain.WishlistItem{
		candidate(1, "recent@example.com", 900, 1000, &threeDays, now),
		candidate(2, "stale@example.com", 900, 1000, &eightDays, now),
	}}
	sender := &fakeAlertSender{}

	res, err := newTestSweep(store, sender, now).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"stale@example.com"}, sender.sent)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, []int64{2}, store.stamped)
}

func TestSweep_PriceAtOrAboveTargetSkipped(t *testing.T) {
	now := time.Now()
	store := &fakeStore{candidates: []domain.WishlistItem{
		candidate(1, "a@example.com", 1000, 1000, nil, now), // equal, not below
		candidate(2, "b@example.com", 1200, 1000, nil, now),
	}}
	sender := &fakeAlertSender{}

	res, err := newTestSweep(store, sender, now).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
	assert.Equal(t, 2, res.Skipped)
}

func TestSweep_NilTargetMeansNeverBelow(t *testing.T) {
	now := time.Now()
	item := candidate(1, "a@example.com", 1, 999, nil, now)
	item.TargetPrice = nil
	store := &fakeStore{candidates: []domain.WishlistItem{item}}
	sender := &fakeAlertSender{}

	// unset target is effectively +inf, so any price is below it
	res, err := newTestSweep(store, sender, now).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
}

func TestSweep_OneFailureDoesNotAbortOthers(t *testing.T) {
	now := time.Now()
	store := &fakeStore{candidates: []domain.WishlistItem{
		candidate(1, "bad@example.com", 900, 1000, nil, now),
		candidate(2, "good@example.com", 900, 1000, nil, now),
	}}
	sender := &fakeAlertSender{failFor: map[string]error{"bad@example.com": errors.New("bounce")}}

	res, err := newTestSweep(store, sender, now).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"good@example.com"}, sender.sent)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Sent)
	// failed sends are not stamped, so the next run retries them
	assert.Equal(t, []int64{2}, store.stamped)
}
