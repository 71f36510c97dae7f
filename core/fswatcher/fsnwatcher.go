package fswatcher

import (
	fsnotify "github.com/fsnotify/fsnotify"
)

type FsnWatcher struct {
	w      *fsnotify.Watcher
	events chan any
	opMask Op
}

func NewFsnWatcher() (*FsnWatcher, error) {
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FsnWatcher{
		w:      w0,
		events: make(chan any, 16),
		opMask: AllOps,
	}
	go w.eventLoop()
	return w, nil
}

//----------

func (w *FsnWatcher) Close() error {
	return w.w.Close()
}

func (w *FsnWatcher) OpMask() *Op {
	return &w.opMask
}

func (w *FsnWatcher) Add(name string) error {
	return w.w.Add(name)
}
func (w *FsnWatcher) Remove(name string) error {
	return w.w.Remove(name)
}

// Closed when the watcher is closed.
func (w *FsnWatcher) Events() <-chan any {
	return w.events
}

//----------

func (w *FsnWatcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.events <- err
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			op := convertOp(ev.Op)
			if op&w.opMask != 0 {
				w.events <- &Event{Op: op, Name: ev.Name}
			}
		}
	}
}

func convertOp(fop fsnotify.Op) Op {
	var op Op
	if fop.Has(fsnotify.Create) {
		op.Add(Create)
	}
	if fop.Has(fsnotify.Write) {
		op.Add(Modify)
	}
	if fop.Has(fsnotify.Remove) {
		op.Add(Remove)
	}
	if fop.Has(fsnotify.Rename) {
		op.Add(Rename)
	}
	if fop.Has(fsnotify.Chmod) {
		op.Add(Attrib)
	}
	return op
}
