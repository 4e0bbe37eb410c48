package insights

import (
	"sync"
	"time"
)

// NavTracker records the instants at which insight views were requested in
// the current session, in a fixed-size ring. Callers use it to detect rapid
// back-and-forth navigation and serve a memoized result instead of
// recomputing on every tap.
type NavTracker struct {
	mu    sync.Mutex
	times []time.Time
	next  int
	count int
}

func NewNavTracker(size int) *NavTracker {
	if size < 1 {
		size = 1
	}
	return &NavTracker{times: make([]time.Time, size)}
}

// Record stores one navigation instant, overwriting the oldest when full.
func (t *NavTracker) Record(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.times[t.next] = now
	t.next = (t.next + 1) % len(t.times)
	if t.count < len(t.times) {
		t.count++
	}
}

// Rapid reports whether the ring is full and every recorded instant falls
// within the window ending at now.
func (t *NavTracker) Rapid(now time.Time, window time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count < len(t.times) {
		return false
	}
	for _, instant := range t.times {
		if now.Sub(instant) > window {
			return false
		}
	}
	return true
}
