// Package watch re-runs a callback when the input files of a calculation change.
package watch

import (
	"sync"
	"time"
)

// Debouncer delivers the last of a burst of change events once the files have
// been quiet for the window.
type Debouncer struct {
	window  time.Duration
	onQuiet func(ChangeEvent)

	mu      sync.Mutex
	timer   *time.Timer
	pending ChangeEvent
	stopped bool
}

// NewDebouncer creates a debouncer that calls onQuiet with the latest event.
func NewDebouncer(window time.Duration, onQuiet func(ChangeEvent)) *Debouncer {
	return &Debouncer{window: window, onQuiet: onQuiet}
}

// Trigger records ev and restarts the quiet window.
func (d *Debouncer) Trigger(ev ChangeEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = ev
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	ev := d.pending
	stopped := d.stopped
	d.mu.Unlock()

	if !stopped && d.onQuiet != nil {
		d.onQuiet(ev)
	}
}

// Stop cancels any pending delivery; later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
