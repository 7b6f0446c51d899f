package track

import "time"

// DwellTracker decides when a banner counts as seen: the visibility ratio
// must stay at or above the threshold continuously for the dwell duration.
// Dipping below the threshold resets the clock; it fires at most once.
type DwellTracker struct {
	threshold float64
	dwell     time.Duration

	visibleSince time.Time
	visible      bool
	fired        bool
}

func NewDwellTracker(threshold float64, dwell time.Duration) *DwellTracker {
	return &DwellTracker{threshold: threshold, dwell: dwell}
}

// Observe feeds one (ratio, timestamp) sample and reports whether the
// impression fires on this sample.
func (t *DwellTracker) Observe(ratio float64, at time.Time) bool {
	if t.fired {
		return false
	}

	if ratio < t.threshold {
		t.visible = false
		return false
	}

	if !t.visible {
		t.visible = true
		t.visibleSince = at
		return false
	}

	if at.Sub(t.visibleSince) >= t.dwell {
		t.fired = true
		return true
	}
	return false
}

// Fired reports whether the impression already fired.
func (t *DwellTracker) Fired() bool { return t.fired }
