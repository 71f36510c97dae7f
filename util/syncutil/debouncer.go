package syncutil

import (
	"sync"
	"time"
)

// Resettable timer. Every Trigger restarts the delay and replaces the pending function, so only the last function triggered within the delay window runs.
// Usage:
//
//	db := NewDebouncer(300*time.Millisecond, nil)
//	db.Trigger(fn) // on every change
//	...
//	db.Flush() // run now if pending
type Debouncer struct {
	delay    time.Duration
	schedule func(func())

	d struct {
		sync.Mutex
		timer *time.Timer
		fn    func()
		gen   int
	}
}

// The schedule func receives the fired callback and decides where it runs (ex: posting it to an event loop). If nil, the callback runs on the timer goroutine.
func NewDebouncer(delay time.Duration, schedule func(func())) *Debouncer {
	if schedule == nil {
		schedule = func(fn func()) { fn() }
	}
	return &Debouncer{delay: delay, schedule: schedule}
}

func (db *Debouncer) Delay() time.Duration {
	return db.delay
}

//----------

func (db *Debouncer) Trigger(fn func()) {
	db.d.Lock()
	defer db.d.Unlock()
	db.stopTimer()
	db.d.gen++
	db.d.fn = fn
	gen := db.d.gen
	db.d.timer = time.AfterFunc(db.delay, func() {
		db.schedule(func() { db.runIfCurrent(gen) })
	})
}

func (db *Debouncer) Pending() bool {
	db.d.Lock()
	defer db.d.Unlock()
	return db.d.fn != nil
}

// Runs the pending function (if any) in the caller goroutine. Returns true if a function ran.
func (db *Debouncer) Flush() bool {
	db.d.Lock()
	fn := db.takePending()
	db.d.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// Discards the pending function.
func (db *Debouncer) Cancel() {
	db.d.Lock()
	defer db.d.Unlock()
	_ = db.takePending()
}

//----------

func (db *Debouncer) runIfCurrent(gen int) {
	db.d.Lock()
	if db.d.gen != gen {
		db.d.Unlock()
		return
	}
	fn := db.takePending()
	db.d.Unlock()
	if fn != nil {
		fn()
	}
}

// Needs lock.
func (db *Debouncer) takePending() func() {
	db.stopTimer()
	db.d.gen++
	fn := db.d.fn
	db.d.fn = nil
	return fn
}

// Needs lock.
func (db *Debouncer) stopTimer() {
	if db.d.timer != nil {
		db.d.timer.Stop()
		db.d.timer = nil
	}
}
