package engine

import (
	"sync"
	"time"
)

// DefaultQuiescence is how long search input must be quiet before a search
// fires.
const DefaultQuiescence = 1000 * time.Millisecond

// Debouncer delays a callback until input has been quiet for a fixed
// interval. Each Trigger cancels the previous pending fire, so only the most
// recent wins; Stop makes any pending or future fire a no-op.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	armed   int // generation of the currently armed timer
	stopped bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuiescence
	}
	return &Debouncer{delay: delay}
}

// Trigger (re)arms the timer to invoke fn after the quiescence interval.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.armed++
	gen := d.armed
	d.timer = time.AfterFunc(d.delay, func() {
		// timer.Stop cannot stop a fire already in flight, so the fire
		// re-checks under the lock that it is still the armed generation
		d.mu.Lock()
		live := !d.stopped && gen == d.armed
		d.mu.Unlock()
		if live {
			fn()
		}
	})
}

// Cancel disarms any pending fire without shutting the debouncer down.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.armed++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Stop disarms permanently. Used at view teardown; a stale fire after
// unmount must never run.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
