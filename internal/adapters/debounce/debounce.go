// Package debounce runs the latest of a burst of calls once the caller has been quiet for a delay.
package debounce

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithClock sets the clock timers are created on.
func WithClock(c clockwork.Clock) Option {
	return func(d *Debouncer) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithOnSuppress registers a hook called each time a pending task is replaced or cancelled.
func WithOnSuppress(fn func()) Option {
	return func(d *Debouncer) {
		d.onSuppress = fn
	}
}

// Debouncer holds at most one pending task. Scheduling a new task cancels the pending one
// and restarts the delay.
type Debouncer struct {
	clock      clockwork.Clock
	delay      time.Duration
	onSuppress func()

	mu      sync.Mutex
	gen     uint64
	timer   clockwork.Timer
	cancel  chan struct{}
	stopped bool
}

// New creates a Debouncer with the given quiet period. A non-positive delay runs tasks inline.
func New(delay time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		clock: clockwork.NewRealClock(),
		delay: delay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Schedule replaces any pending task with fn. fn runs on its own goroutine after the delay
// unless it is replaced, cancelled, or ctx ends first.
func (d *Debouncer) Schedule(ctx context.Context, fn func(ctx context.Context)) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	suppressed := d.cancelLocked()
	if d.delay <= 0 {
		d.mu.Unlock()
		d.notify(suppressed)
		fn(ctx)
		return
	}

	d.gen++
	gen := d.gen
	t := d.clock.NewTimer(d.delay)
	cancel := make(chan struct{})
	d.timer, d.cancel = t, cancel
	d.mu.Unlock()
	d.notify(suppressed)

	go func() {
		select {
		case <-t.Chan():
			if !d.claim(gen) {
				return
			}
			fn(ctx)
		case <-cancel:
		case <-ctx.Done():
			d.mu.Lock()
			if d.gen == gen {
				d.clearLocked()
			}
			d.mu.Unlock()
			stopAndDrain(t)
		}
	}()
}

// Cancel drops the pending task, if any, and reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	suppressed := d.cancelLocked()
	d.mu.Unlock()
	d.notify(suppressed)
	return suppressed
}

// Pending reports whether a task is waiting for its delay.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels the pending task and rejects future ones.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.cancelLocked()
	d.stopped = true
	d.mu.Unlock()
}

// claim marks the task of generation gen as running if it is still the pending one.
func (d *Debouncer) claim(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen || d.timer == nil {
		return false
	}
	d.clearLocked()
	return true
}

func (d *Debouncer) cancelLocked() bool {
	if d.timer == nil {
		return false
	}
	stopAndDrain(d.timer)
	close(d.cancel)
	d.clearLocked()
	return true
}

func (d *Debouncer) clearLocked() {
	d.timer = nil
	d.cancel = nil
}

func (d *Debouncer) notify(suppressed bool) {
	if suppressed && d.onSuppress != nil {
		d.onSuppress()
	}
}

// stopAndDrain stops t and empties its channel if it already fired.
func stopAndDrain(t clockwork.Timer) {
	if !t.Stop() {
		select {
		case <-t.Chan():
		default:
		}
	}
}
