package autosave

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// manualScheduler lets tests fire the debounce deterministically.
type manualScheduler struct {
	mu        sync.Mutex
	pending   func()
	scheduled int
	cancelled int
	lastDelay time.Duration
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = fn
	s.scheduled++
	s.lastDelay = d
}

func (s *manualScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	s.cancelled++
}

// Fire runs the pending task, if any, the way an elapsed timer would.
func (s *manualScheduler) Fire() {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

type saveRecorder struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (r *saveRecorder) save(ctx context.Context, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, value)
	return r.err
}

func newController(t *testing.T, loadValue string, loadErr error) (*Controller[string], *saveRecorder, *manualScheduler, *manualScheduler) {
	t.Helper()
	rec := &saveRecorder{}
	sched := &manualScheduler{}
	statusSched := &manualScheduler{}
	c := New(Config[string]{
		Load:            func(ctx context.Context) (string, error) { return loadValue, loadErr },
		Save:            rec.save,
		QuietPeriod:     500 * time.Millisecond,
		SavedWindow:     1500 * time.Millisecond,
		Scheduler:       sched,
		StatusScheduler: statusSched,
	})
	return c, rec, sched, statusSched
}

func TestController_NoSaveBeforeLoadResolves(t *testing.T) {
	c, rec, sched, _ := newController(t, "remote", nil)

	require.Equal(t, StateUninitialized, c.State())

	c.Set("a")
	c.Set("b")
	c.Set("c")

	require.Zero(t, sched.scheduled)
	sched.Fire() // nothing pending
	require.Empty(t, rec.calls)

	// Local value still tracks edits made during the load race.
	require.Equal(t, "c", c.Value())
}

func TestController_InitAdoptsRemoteValue(t *testing.T) {
	c, _, _, _ := newController(t, "remote", nil)

	c.Init(context.Background())
	require.Equal(t, StateLoaded, c.State())
	require.Equal(t, "remote", c.Value())
}

func TestController_InitFailureStillUnblocksSaves(t *testing.T) {
	c, rec, sched, _ := newController(t, "", errors.New("offline"))

	c.Init(context.Background())
	require.Equal(t, StateLoaded, c.State())

	c.Set("local edit")
	require.Equal(t, 1, sched.scheduled)
	sched.Fire()
	require.Equal(t, []string{"local edit"}, rec.calls)
}

func TestController_BurstProducesExactlyOneSaveWithFinalValue(t *testing.T) {
	c, rec, sched, _ := newController(t, "initial", nil)
	c.Init(context.Background())

	for _, v := range []string{"d", "dr", "dra", "draft"} {
		c.Set(v)
	}

	// Each change re-armed the single pending slot.
	require.Equal(t, 4, sched.scheduled)
	require.Equal(t, 500*time.Millisecond, sched.lastDelay)

	sched.Fire()
	require.Equal(t, []string{"draft"}, rec.calls)

	// Nothing left pending once flushed.
	sched.Fire()
	require.Equal(t, []string{"draft"}, rec.calls)
}

func TestController_StatusLifecycle(t *testing.T) {
	c, _, sched, statusSched := newController(t, "initial", nil)
	c.Init(context.Background())

	require.Equal(t, StatusIdle, c.Status())

	c.Set("x")
	require.Equal(t, StatusPending, c.Status())

	sched.Fire()
	require.Equal(t, StatusSaved, c.Status())
	require.Equal(t, 1500*time.Millisecond, statusSched.lastDelay)

	statusSched.Fire()
	require.Equal(t, StatusIdle, c.Status())
}

func TestController_SaveFailureRevertsToIdleSilently(t *testing.T) {
	c, rec, sched, _ := newController(t, "initial", nil)
	rec.err = errors.New("boom")
	c.Init(context.Background())

	c.Set("x")
	sched.Fire()

	require.Equal(t, StatusIdle, c.Status())
	// The failed value stays local so the next edit retries it.
	require.Equal(t, "x", c.Value())
}

func TestController_CloseCancelsPendingSave(t *testing.T) {
	c, rec, sched, _ := newController(t, "initial", nil)
	c.Init(context.Background())

	c.Set("never saved")
	c.Close()

	require.Equal(t, 1, sched.cancelled)
	sched.Fire()
	require.Empty(t, rec.calls)
}

func TestController_Update(t *testing.T) {
	c, rec, sched, _ := newController(t, "abc", nil)
	c.Init(context.Background())

	c.Update(func(s string) string { return s + "!" })
	sched.Fire()
	require.Equal(t, []string{"abc!"}, rec.calls)
}

func TestController_IndependentInstancesDoNotShareTimers(t *testing.T) {
	c1, rec1, sched1, _ := newController(t, "one", nil)
	c2, rec2, sched2, _ := newController(t, "two", nil)
	c1.Init(context.Background())
	c2.Init(context.Background())

	c1.Set("channels")
	c2.Set("generation")

	sched1.Fire()
	require.Equal(t, []string{"channels"}, rec1.calls)
	require.Empty(t, rec2.calls)

	sched2.Fire()
	require.Equal(t, []string{"generation"}, rec2.calls)
}

func TestTimerScheduler_RestartReplacesPending(t *testing.T) {
	s := NewTimerScheduler()

	var mu sync.Mutex
	var fired []string

	done := make(chan struct{})
	s.Schedule(time.Hour, func() {
		mu.Lock()
		fired = append(fired, "slow")
		mu.Unlock()
	})
	s.Schedule(5*time.Millisecond, func() {
		mu.Lock()
		fired = append(fired, "fast")
		mu.Unlock()
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled task never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"fast"}, fired)
}

func TestTimerScheduler_CancelIsIdempotent(t *testing.T) {
	s := NewTimerScheduler()
	s.Cancel() // nothing pending
	s.Schedule(time.Hour, func() { t.Error("should not fire") })
	s.Cancel()
	s.Cancel()
}
