package xdriver

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/deviationtrack/canvaseditor/driver/xdriver/copypaste"
	"github.com/sirupsen/logrus"
)

// Unmapped window: only the requestor of selection transfers.
type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Paste  *copypaste.Paste
	Log    *logrus.Entry

	closeOnce sync.Once
	done      chan struct{}
}

// An empty display uses $DISPLAY.
func NewWindow(display string, log *logrus.Entry) (*Window, error) {
	if display == "" {
		display = os.Getenv("DISPLAY")
	}
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("x conn: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	win := &Window{
		Conn: conn,
		Log:  log.WithField("component", "x11"),
		done: make(chan struct{}),
	}
	if err := win.initialize(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x window: %w", err)
	}
	go win.eventLoop()
	return win, nil
}

func (win *Window) initialize() error {
	screen := xproto.Setup(win.Conn).DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	// property changes carry incremental transfers
	mask := uint32(xproto.CwEventMask)
	values := []uint32{xproto.EventMaskPropertyChange}
	c := xproto.CreateWindowChecked(
		win.Conn,
		0, // depth: copy from parent (input only)
		win.Window,
		screen.Root,
		0, 0, 1, 1,
		0, // border width
		xproto.WindowClassInputOnly,
		screen.RootVisual,
		mask, values)
	if err := c.Check(); err != nil {
		return err
	}

	paste, err := copypaste.NewPaste(win.Conn, win.Window)
	if err != nil {
		return err
	}
	paste.Log = win.Log
	win.Paste = paste
	return nil
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		_ = xproto.DestroyWindow(win.Conn, win.Window)
		win.Conn.Close()
		<-win.done
	})
	return nil
}

// Blocks until the clipboard owner answers or the paste times out.
func (win *Window) ClipboardImage() ([]byte, string, error) {
	return win.Paste.ClipboardImage()
}

//----------

func (win *Window) eventLoop() {
	defer close(win.done)
	for {
		ev, xerr := win.Conn.WaitForEvent()
		if ev == nil && xerr == nil {
			return // connection closed
		}
		if xerr != nil {
			win.Log.WithError(xerr).Debug("x error")
			continue
		}
		switch t := ev.(type) {
		case xproto.SelectionNotifyEvent:
			win.Paste.OnSelectionNotify(&t)
		case xproto.PropertyNotifyEvent:
			win.Paste.OnPropertyNotify(&t)
		}
	}
}
