package hal

import (
	"sync"
	"time"
)

// maxFrameDelta caps a single wall-clock step, e.g. after the window was
// dragged or the process was stopped.
const maxFrameDelta = 250 * time.Millisecond

type hostTime struct {
	mu     sync.Mutex
	now    func() time.Time
	fixed  time.Duration
	first  time.Duration
	last   time.Time
	delta  time.Duration
	frames uint64
}

// newHostTime measures wall-clock deltas. The first frame reports first.
func newHostTime(first time.Duration, now func() time.Time) *hostTime {
	if now == nil {
		now = time.Now
	}
	return &hostTime{now: now, first: first}
}

// newFixedTime reports the same delta every frame.
func newFixedTime(d time.Duration) *hostTime {
	return &hostTime{fixed: d}
}

func (t *hostTime) FrameDelta() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delta
}

func (t *hostTime) Frames() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}

func (t *hostTime) step() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames++

	if t.fixed > 0 {
		t.delta = t.fixed
		return
	}
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.delta = t.first
		return
	}
	t.delta = min(now.Sub(t.last), maxFrameDelta)
	if t.delta < 0 {
		t.delta = 0
	}
	t.last = now
}
