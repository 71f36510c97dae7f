package fswatcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/deviationtrack/canvaseditor/util/syncutil"
	"github.com/sirupsen/logrus"
)

// Reports files dropped into a directory, once their writes have settled for a while. Hidden and editor backup files are skipped.
type Inbox struct {
	Dir    string
	Settle time.Duration
	Log    *logrus.Entry

	w     Watcher
	files chan string

	mu      sync.Mutex
	pending map[string]*syncutil.Debouncer
	closed  bool
}

func NewInbox(dir string, settle time.Duration, log *logrus.Entry) (*Inbox, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("inbox: %w", err)
	}
	w, err := NewFsnWatcher()
	if err != nil {
		return nil, fmt.Errorf("inbox: %w", err)
	}
	*w.OpMask() = Create | Modify | Remove | Rename
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("inbox: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	in := &Inbox{
		Dir:     dir,
		Settle:  settle,
		Log:     log.WithField("inbox", dir),
		w:       w,
		files:   make(chan string, 16),
		pending: map[string]*syncutil.Debouncer{},
	}
	go in.eventLoop()
	return in, nil
}

// Paths of settled files. Closed after Close.
func (in *Inbox) Files() <-chan string {
	return in.files
}

func (in *Inbox) Close() error {
	in.mu.Lock()
	in.closed = true
	for _, d := range in.pending {
		d.Cancel()
	}
	in.pending = nil
	in.mu.Unlock()
	return in.w.Close()
}

//----------

func (in *Inbox) eventLoop() {
	defer func() {
		in.mu.Lock()
		defer in.mu.Unlock()
		in.closed = true
		close(in.files)
	}()
	for v := range in.w.Events() {
		switch t := v.(type) {
		case error:
			in.Log.WithError(t).Warn("watch error")
		case *Event:
			in.handle(t)
		}
	}
}

func (in *Inbox) handle(ev *Event) {
	if skipName(filepath.Base(ev.Name)) {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return
	}
	d := in.pending[ev.Name]
	if ev.Op.HasAny(Remove | Rename) {
		if d != nil {
			d.Cancel()
			delete(in.pending, ev.Name)
		}
		return
	}
	if d == nil {
		d = syncutil.NewDebouncer(in.Settle, nil)
		in.pending[ev.Name] = d
	}
	name := ev.Name
	d.Trigger(func() { in.settled(name) })
}

// Runs on the debouncer timer goroutine.
func (in *Inbox) settled(name string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return
	}
	delete(in.pending, name)
	fi, err := os.Stat(name)
	if err != nil || !fi.Mode().IsRegular() {
		return
	}
	in.Log.WithField("file", name).Debug("settled")
	select {
	case in.files <- name:
	default:
		in.Log.WithField("file", name).Warn("inbox full, file skipped")
	}
}

func skipName(base string) bool {
	return strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~")
}
