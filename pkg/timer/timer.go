package timer

import (
	"sync"
	"time"
)

// Timer is the clock dependency used where tests need deterministic time.
type Timer interface {
	Now() time.Time
}

type systemTimer struct{}

// System returns a Timer backed by time.Now.
func System() Timer {
	return systemTimer{}
}

func (systemTimer) Now() time.Time {
	return time.Now()
}

// ManualTimer is a Timer that only moves when told to.
type ManualTimer struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualTimer(start time.Time) *ManualTimer {
	return &ManualTimer{now: start}
}

func (t *ManualTimer) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}

// Advance moves the clock forward by d and returns the new time.
func (t *ManualTimer) Advance(d time.Duration) time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = t.now.Add(d)
	return t.now
}
