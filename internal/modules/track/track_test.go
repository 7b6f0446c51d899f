package track

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"staykedarnath/internal/domain"
)

func TestDwellTracker_FiresAfterContinuousVisibility(t *testing.T) {
	start := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	d := NewDwellTracker(0.5, time.Second)

	assert.False(t, d.Observe(0.8, start))
	assert.False(t, d.Observe(0.9, start.Add(500*time.Millisecond)))
	assert.True(t, d.Observe(0.7, start.Add(time.Second)))
	// fires exactly once
	assert.False(t, d.Observe(1.0, start.Add(2*time.Second)))
	assert.True(t, d.Fired())
}

func TestDwellTracker_OscillationNeverFires(t *testing.T) {
	start := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	d := NewDwellTracker(0.5, time.Second)

	// rapid scroll-through: ratio keeps dipping below the threshold before
	// a full second of visibility accumulates
	at := start
	for i := 0; i < 10; i++ {
		assert.False(t, d.Observe(0.8, at))
		at = at.Add(600 * time.Millisecond)
		assert.False(t, d.Observe(0.3, at))
		at = at.Add(100 * time.Millisecond)
	}
	assert.False(t, d.Fired())
}

func TestDwellTracker_ResetThenDwellFires(t *testing.T) {
	start := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	d := NewDwellTracker(0.5, time.Second)

	assert.False(t, d.Observe(0.8, start))
	assert.False(t, d.Observe(0.2, start.Add(900*time.Millisecond))) // reset
	assert.False(t, d.Observe(0.8, start.Add(time.Second)))
	assert.False(t, d.Observe(0.8, start.Add(1500*time.Millisecond))) // only 500ms since reset
	assert.True(t, d.Observe(0.8, start.Add(2*time.Second)))
}

func TestDeviceType(t *testing.T) {
	assert.Equal(t, DeviceMobile, DeviceType("", 375))
	assert.Equal(t, DeviceTablet, DeviceType("", 800))
	assert.Equal(t, DeviceDesktop, DeviceType("", 1920))
	assert.Equal(t, DeviceMobile, DeviceType("Mozilla/5.0 (Linux; Android 14) Mobile Safari", 0))
	assert.Equal(t, DeviceTablet, DeviceType("Mozilla/5.0 (iPad; CPU OS 17_0)", 0))
	assert.Equal(t, DeviceDesktop, DeviceType("Mozilla/5.0 (X11; Linux x86_64)", 0))
}

type memStore struct {
	mu     sync.Mutex
	events []domain.BannerEvent
	err    error
}

func (m *memStore) Insert(ctx context.Context, e *domain.BannerEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, *e)
	return nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

func TestRecorder_DeduplicatesImpressionsPerSession(t *testing.T) {
	store := &memStore{}
	r := NewRecorder(store, 16, nil)

	e := Event{BannerID: 5, SessionID: "s1", PageURL: "/"}
	assert.True(t, r.RecordImpression(e))
	assert.False(t, r.RecordImpression(e))

	// same banner, different session is a fresh impression
	e2 := e
	e2.SessionID = "s2"
	assert.True(t, r.RecordImpression(e2))

	r.Close()
	assert.Equal(t, 2, store.count())
}

func TestRecorder_ClicksNeverDeduplicated(t *testing.T) {
	store := &memStore{}
	r := NewRecorder(store, 16, nil)

	e := Event{BannerID: 5, SessionID: "s1"}
	assert.True(t, r.RecordClick(e))
	assert.True(t, r.RecordClick(e))

	r.Close()
	assert.Equal(t, 2, store.count())
}

func TestRecorder_FullQueueDropsSilently(t *testing.T) {
	// a store that blocks forever would hang Close, so use a tiny queue and
	// no worker drain window by filling it synchronously before the worker
	// can keep up; the important part is that enqueue never blocks
	store := &memStore{}
	r := NewRecorder(store, 1, nil)

	for i := 0; i < 1000; i++ {
		r.RecordClick(Event{BannerID: int64(i%3 + 1), SessionID: "s"})
	}
	r.Close() // must not deadlock
}

func TestRecorder_StoreFailureSwallowed(t *testing.T) {
	store := &memStore{err: assert.AnError}
	r := NewRecorder(store, 4, nil)

	assert.True(t, r.RecordClick(Event{BannerID: 1, SessionID: "s"}))
	r.Close()
	assert.Zero(t, store.count())
}
