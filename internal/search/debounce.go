package search

import (
	"sync"
	"time"
)

// DebounceInterval is the delay between the last keystroke and the search
// actually executing on the live-typing channel.
const DebounceInterval = 300 * time.Millisecond

// Debouncer coalesces rapid calls: only the function passed to the last
// Trigger within the interval runs, once the interval elapses quietly.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

// NewDebouncer creates a debouncer with the given interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules fn after the interval, cancelling any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
