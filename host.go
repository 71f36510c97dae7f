package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/deviationtrack/canvaseditor/core"
	"github.com/deviationtrack/canvaseditor/core/fswatcher"
	"github.com/deviationtrack/canvaseditor/core/snapshot"
	"github.com/deviationtrack/canvaseditor/driver/ggsurface"
	"github.com/deviationtrack/canvaseditor/driver/xdriver"
	"github.com/deviationtrack/canvaseditor/util/ctxutil"
	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
	"github.com/deviationtrack/canvaseditor/util/uiutil/mousefilter"
	"github.com/sirupsen/logrus"
)

// Source of clipboard images (the x11 window).
type Clipboard interface {
	ClipboardImage() ([]byte, string, error)
	Close() error
}

// Owns the event loop goroutine. The editor is only touched from that goroutine.
type Host struct {
	Ed  *core.Editor
	Dir string    // base for relative script paths
	Out io.Writer // dump output
	Log *logrus.Entry

	cfg     *Config
	sink    *SnapshotSink
	inbox   *fswatcher.Inbox
	clip    Clipboard
	clickf  *mousefilter.ClickFilter
	buttons event.MouseButtons

	events chan any
	quit   chan struct{}
	done   chan struct{}

	exports int
	dropped int
	err     error // first snapshot write error
}

func NewHost(cfg *Config, log *logrus.Entry) (*Host, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	h := &Host{
		Out:    os.Stdout,
		Log:    log,
		cfg:    cfg,
		events: make(chan any, 64),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	if cfg.Export.OutDir != "" {
		sink, err := NewSnapshotSink(cfg.Export.OutDir, log)
		if err != nil {
			return nil, err
		}
		h.sink = sink
	}

	opt := cfg.Options()
	opt.Log = log
	opt.Post = h.RunOnLoop
	opt.OnSnapshot = h.onSnapshot
	if cfg.Export.Raster {
		opt.NewRaster = ggsurface.NewRaster
	}
	h.Ed = core.NewEditor(opt)
	h.Ed.EEvents.Register(core.ModeEEventId, func(ev any) {
		t := ev.(*core.ModeEEvent)
		h.Log.WithFields(logrus.Fields{"from": t.From, "to": t.To}).Debug("mode")
	})
	h.Ed.EEvents.Register(core.DroppedInputEEventId, func(ev any) {
		h.dropped++
	})

	h.clickf = mousefilter.NewClickFilter(h.filtered)
	h.clickf.Interval = time.Duration(cfg.Input.DoubleClick)

	go h.eventLoop()

	if cfg.Input.InboxDir != "" {
		in, err := fswatcher.NewInbox(cfg.Input.InboxDir, time.Duration(cfg.Input.InboxSettle), log)
		if err != nil {
			h.Close()
			return nil, err
		}
		h.inbox = in
		go h.inboxLoop()
	}
	if cfg.Input.X11Paste {
		win, err := xdriver.NewWindow(cfg.Input.Display, log)
		if err != nil {
			h.Close()
			return nil, err
		}
		h.clip = win
	}
	return h, nil
}

func (h *Host) Close() {
	select {
	case <-h.quit:
		return
	default:
	}
	close(h.quit)
	<-h.done
	if h.inbox != nil {
		_ = h.inbox.Close()
	}
	if h.clip != nil {
		_ = h.clip.Close()
	}
}

//----------

func (h *Host) eventLoop() {
	defer close(h.done)
	for {
		select {
		case ev := <-h.events:
			h.handleEvent(ev)
		case <-h.quit:
			return
		}
	}
}

func (h *Host) handleEvent(ev any) {
	switch t := ev.(type) {
	case *runFuncEvent:
		t.fn()
	default:
		h.Log.Errorf("unhandled event: %#v", ev)
	}
}

// Posts fn to the event loop. Dropped after Close.
func (h *Host) RunOnLoop(fn func()) {
	select {
	case h.events <- &runFuncEvent{fn}:
	case <-h.quit:
	}
}

// Runs fn on the event loop and waits for it.
func (h *Host) Sync(fn func()) {
	done := make(chan struct{})
	h.RunOnLoop(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
	case <-h.quit:
	}
}

type runFuncEvent struct {
	fn func()
}

//----------

func (h *Host) inboxLoop() {
	for name := range h.inbox.Files() {
		data, err := os.ReadFile(name)
		if err != nil {
			h.Log.WithError(err).WithField("file", name).Warn("inbox read")
			continue
		}
		h.Log.WithFields(logrus.Fields{"file": name, "bytes": len(data)}).Info("inbox image")
		h.RunOnLoop(func() { h.Ed.AddImageData(data, "inbox") })
	}
}

func (h *Host) paste() error {
	if h.clip == nil {
		return fmt.Errorf("paste: clipboard not available (see -x11paste)")
	}
	var data []byte
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := ctxutil.Call(ctx, "paste", func() error {
		d, target, err := h.clip.ClipboardImage()
		if err != nil {
			return err
		}
		h.Log.WithFields(logrus.Fields{"target": target, "bytes": len(d)}).Debug("clipboard image")
		data = d
		return nil
	}, nil)
	if err != nil {
		// nothing usable on the clipboard is not a script error
		h.Log.WithError(err).Warn("paste ignored")
		return nil
	}
	h.Sync(func() { h.Ed.AddImageData(data, "paste") })
	return nil
}

func (h *Host) upload(filename string) error {
	data, err := os.ReadFile(h.path(filename))
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	h.Sync(func() { h.Ed.AddImageData(data, "upload") })
	return nil
}

//----------

func (h *Host) onSnapshot(s *snapshot.Snapshot) {
	h.exports++
	if h.sink == nil {
		return
	}
	if _, err := h.sink.Write(s); err != nil {
		h.Log.WithError(err).Error("snapshot write")
		if h.err == nil {
			h.err = err
		}
	}
}

// Waits for pending image decodes, then emits the pending export.
func (h *Host) flush() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := ctxutil.Retry(ctx, 5*time.Millisecond, "flush", func() error {
		n := 0
		h.Sync(func() { n = h.Ed.PendingDecodes() })
		if n > 0 {
			return fmt.Errorf("%d image decodes pending", n)
		}
		return nil
	})
	if err != nil {
		return err
	}
	h.Sync(func() { h.Ed.Flush() })
	return nil
}

func (h *Host) render(filename string) error {
	var s *ggsurface.Surface
	h.Sync(func() {
		w, hh := h.Ed.CanvasSize()
		s = ggsurface.New(int(w), int(hh))
		s.Background = image.White
		h.Ed.Render(s)
		h.Ed.RenderOverlay(s)
	})
	if s == nil {
		return fmt.Errorf("render: host closed")
	}
	if err := s.SavePNG(h.path(filename)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (h *Host) path(filename string) string {
	if filepath.IsAbs(filename) || h.Dir == "" {
		return filename
	}
	return filepath.Join(h.Dir, filename)
}

//----------

// Pointer events as a window would deliver them: window-level listeners first, then the canvas when the point is inside it.
func (h *Host) pointer(ev any) {
	switch t := ev.(type) {
	case *event.MouseDown:
		h.buttons |= event.ButtonsOf(t.Button)
		h.toCanvas(t, t.Point)
	case *event.MouseMove:
		t.Buttons = h.buttons
		if h.Ed.HandleWindowEvent(t) == event.NotHandled {
			h.toCanvas(t, t.Point)
		}
	case *event.MouseUp:
		h.buttons &^= event.ButtonsOf(t.Button)
		if h.Ed.HandleWindowEvent(t) == event.NotHandled {
			h.toCanvas(t, t.Point)
		}
	}
	h.clickf.Filter(ev)
}

// Click filter output.
func (h *Host) filtered(ev any) {
	switch t := ev.(type) {
	case *event.MouseDoubleClick:
		h.toCanvas(t, t.Point)
	}
}

func (h *Host) toCanvas(ev any, p image.Point) {
	w, hh := h.Ed.CanvasSize()
	if p.X < 0 || p.Y < 0 || float64(p.X) > w || float64(p.Y) > hh {
		return
	}
	h.Ed.HandleCanvasEvent(ev)
}
