package track

import (
	"context"
	"strconv"
	"sync"
	"time"

	"staykedarnath/internal/domain"
)

type eventStore interface {
	Insert(ctx context.Context, e *domain.BannerEvent) error
}

// Event is one raw tracking signal from the client.
type Event struct {
	BannerID      int64
	SessionID     string
	PageURL       string
	Referrer      string
	UserAgent     string
	ViewportWidth int
}

// Recorder is the best-effort side channel for banner telemetry. Events go
// through a bounded queue drained by one background worker; a full queue
// drops the event and store failures are swallowed, so tracking can never
// slow down or fail the primary request path.
type Recorder struct {
	store   eventStore
	queue   chan domain.BannerEvent
	loggerf func(format string, args ...interface{})

	mu   sync.Mutex
	seen map[string]struct{}

	wg   sync.WaitGroup
	once sync.Once
}

func NewRecorder(store eventStore, queueSize int, loggerf func(format string, args ...interface{})) *Recorder {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	r := &Recorder{
		store:   store,
		queue:   make(chan domain.BannerEvent, queueSize),
		loggerf: loggerf,
		seen:    make(map[string]struct{}),
	}
	r.wg.Add(1)
	go r.drain()
	return r
}

// RecordImpression enqueues an impression, deduplicated per (session, banner).
// Returns false when the event was suppressed as a duplicate or dropped.
func (r *Recorder) RecordImpression(e Event) bool {
	key := e.SessionID + "|" + strconv.FormatInt(e.BannerID, 10)
	r.mu.Lock()
	if _, dup := r.seen[key]; dup {
		r.mu.Unlock()
		return false
	}
	r.seen[key] = struct{}{}
	r.mu.Unlock()

	return r.enqueue(e, domain.BannerImpression)
}

// RecordClick enqueues a click. Clicks are never deduplicated.
func (r *Recorder) RecordClick(e Event) bool {
	return r.enqueue(e, domain.BannerClick)
}

func (r *Recorder) enqueue(e Event, kind domain.BannerEventKind) bool {
	row := domain.BannerEvent{
		BannerID:   e.BannerID,
		Kind:       kind,
		SessionID:  e.SessionID,
		PageURL:    e.PageURL,
		Referrer:   e.Referrer,
		DeviceType: DeviceType(e.UserAgent, e.ViewportWidth),
	}
	select {
	case r.queue <- row:
		return true
	default:
		r.loggerf("level=warn msg=tracking queue full, dropping event banner_id=%d kind=%s", e.BannerID, kind)
		return false
	}
}

func (r *Recorder) drain() {
	defer r.wg.Done()
	for row := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := r.store.Insert(ctx, &row); err != nil {
			r.loggerf("level=warn msg=tracking insert failed banner_id=%d err=%v", row.BannerID, err)
		}
		cancel()
	}
}

// Close stops accepting events and waits for the queue to flush.
func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.queue)
	})
	r.wg.Wait()
}
