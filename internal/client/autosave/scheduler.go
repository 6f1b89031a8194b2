package autosave

import (
	"sync"
	"time"
)

// Scheduler is a cancellable delayed task: at most one task is pending at
// a time, and scheduling a new one cancels the previous. This is the only
// concurrency-control primitive the autosave controller relies on.
type Scheduler interface {
	// Schedule arranges for fn to run once after d, replacing any pending task.
	Schedule(d time.Duration, fn func())
	// Cancel drops the pending task, if any. Safe to call when idle.
	Cancel()
}

// timerScheduler backs Scheduler with a time.Timer.
type timerScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

// NewTimerScheduler returns the production Scheduler.
func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

func (s *timerScheduler) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, fn)
}

func (s *timerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
