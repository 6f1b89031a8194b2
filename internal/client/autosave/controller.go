// Package autosave implements debounced, race-safe persistence of user
// settings: rapid local edits are buffered and committed at most once per
// quiet period, and nothing is saved before the initial remote load has
// resolved (so UI defaults can never overwrite server state during the
// load race).
//
// Autosave is best-effort by contract: save failures are logged and
// swallowed, prior remote state stays untouched, and the user retries by
// editing again.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/daycast-app/daycast/internal/logging"
)

// State tracks whether the one-time initial load has resolved.
type State int

const (
	StateUninitialized State = iota
	StateLoaded
)

// Status is the UI-visible save indicator.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSaving  Status = "saving"
	StatusSaved   Status = "saved"
)

// Config assembles a controller for one settings value type.
type Config[S any] struct {
	// Load fetches the initial remote value. Called exactly once, by Init.
	Load func(ctx context.Context) (S, error)
	// Save commits the latest value after a quiet period.
	Save func(ctx context.Context, value S) error

	// QuietPeriod is the debounce window restarted on every change.
	QuietPeriod time.Duration
	// SavedWindow is how long StatusSaved is shown before reverting to idle.
	SavedWindow time.Duration

	// Scheduler runs the debounce; StatusScheduler runs the saved→idle
	// reversion. Distinct so tests can drive them independently; when nil,
	// timer-backed ones are used.
	Scheduler       Scheduler
	StatusScheduler Scheduler

	Logger logging.Logger
}

// Controller debounces changes to one settings value S and persists them.
//
// Channel settings and generation settings each get their own instance;
// they share neither timers nor debounce windows.
type Controller[S any] struct {
	cfg Config[S]

	mu     sync.Mutex
	state  State
	status Status
	value  S

	// base context for saves fired from the scheduler, set by Init.
	ctx context.Context
}

func New[S any](cfg Config[S]) *Controller[S] {
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewTimerScheduler()
	}
	if cfg.StatusScheduler == nil {
		cfg.StatusScheduler = NewTimerScheduler()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewDiscardLogger()
	}
	return &Controller[S]{cfg: cfg, status: StatusIdle}
}

// Init performs the one-time remote load. Whether it succeeds or fails,
// the controller transitions to StateLoaded and only then do local changes
// start arming the save timer. On failure the error is swallowed (load is
// best-effort like save) and the value returned by Load is adopted anyway,
// letting loaders hand back a local fallback.
func (c *Controller[S]) Init(ctx context.Context) {
	value, err := c.cfg.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctx = ctx
	if err != nil {
		c.cfg.Logger.Warn(ctx, "settings load failed, using fallback", "error", err)
	}
	c.value = value
	c.state = StateLoaded
}

// Value returns the current local value.
func (c *Controller[S]) Value() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// State reports whether Init has resolved.
func (c *Controller[S]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Status returns the UI-visible save indicator.
func (c *Controller[S]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Set records a local change. Before Init resolves this only updates the
// local value; afterwards it restarts the quiet-period timer, so a burst
// of N edits produces exactly one save carrying the final value.
func (c *Controller[S]) Set(value S) {
	c.mu.Lock()
	c.value = value
	if c.state != StateLoaded {
		c.mu.Unlock()
		return
	}
	c.status = StatusPending
	c.mu.Unlock()

	c.cfg.Scheduler.Schedule(c.cfg.QuietPeriod, c.flush)
}

// Update applies fn to the current value and records the result as a
// change. Convenient for toggling one field of a struct value.
func (c *Controller[S]) Update(fn func(S) S) {
	c.mu.Lock()
	next := fn(c.value)
	c.mu.Unlock()
	c.Set(next)
}

// flush commits the latest value once the quiet period has elapsed.
func (c *Controller[S]) flush() {
	c.mu.Lock()
	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	value := c.value
	c.status = StatusSaving
	c.mu.Unlock()

	err := c.cfg.Save(ctx, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// Best-effort: revert silently, keep the local value for a retry
		// on the next edit.
		c.cfg.Logger.Warn(ctx, "settings save failed", "error", err)
		c.status = StatusIdle
		return
	}
	c.status = StatusSaved
	c.cfg.StatusScheduler.Schedule(c.cfg.SavedWindow, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.status == StatusSaved {
			c.status = StatusIdle
		}
	})
}

// Close cancels any pending timers. A save already past its quiet period
// is not interrupted; one still pending never fires.
func (c *Controller[S]) Close() {
	c.cfg.Scheduler.Cancel()
	c.cfg.StatusScheduler.Cancel()
}
