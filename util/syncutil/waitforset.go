package syncutil

import (
	"errors"
	"sync"
	"time"
)

var ErrWaitTimeout = errors.New("waitforset: timeout")

// Reusable rendezvous between one waiter and one setter, bounded by a timeout. Set() fails if no wait was started.
// Usage:
//
//	w := NewWaitForSet[*Reply]()
//	w.Start(time.Second)
//	// sync/async call to w.Set(v)
//	v, err := w.WaitForSet()
type WaitForSet[T any] struct {
	d struct {
		sync.Mutex
		timer   *time.Timer
		waiting bool
		expired bool
		gotV    bool
		v       T
	}
	cond *sync.Cond // signals from set() or the timer
}

func NewWaitForSet[T any]() *WaitForSet[T] {
	w := &WaitForSet[T]{}
	w.cond = sync.NewCond(&w.d)
	return w
}

func (w *WaitForSet[T]) Start(timeout time.Duration) {
	w.d.Lock()
	defer w.d.Unlock()
	if w.d.timer != nil {
		panic("waitforset: already started")
	}
	w.d.expired = false
	w.d.timer = time.AfterFunc(timeout, func() {
		w.d.Lock()
		defer w.d.Unlock()
		w.d.expired = true
		w.cond.Signal()
	})
}

func (w *WaitForSet[T]) WaitForSet() (T, error) {
	w.d.Lock()
	defer w.d.Unlock()
	defer w.clearTimer()
	if w.d.timer == nil {
		panic("waitforset: not started")
	}
	if w.d.waiting {
		panic("waitforset: already waiting")
	}
	w.d.waiting = true
	defer func() { w.d.waiting = false }()

	for !w.d.gotV && !w.d.expired {
		w.cond.Wait()
	}

	var zero T
	if w.d.gotV {
		v := w.d.v
		w.d.gotV = false
		w.d.v = zero
		return v, nil
	}
	return zero, ErrWaitTimeout
}

// In case WaitForSet() is not going to be called.
func (w *WaitForSet[T]) Cancel() {
	w.d.Lock()
	defer w.d.Unlock()
	w.clearTimer()
}

// Needs lock.
func (w *WaitForSet[T]) clearTimer() {
	if w.d.timer != nil {
		w.d.timer.Stop()
		w.d.timer = nil
	}
}

func (w *WaitForSet[T]) Set(v T) error {
	w.d.Lock()
	defer w.d.Unlock()
	if w.d.timer == nil {
		return errors.New("waitforset: not waiting for set")
	}
	w.d.gotV = true
	w.d.v = v
	w.cond.Signal()
	return nil
}
