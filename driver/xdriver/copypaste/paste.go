package copypaste

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/deviationtrack/canvaseditor/driver/xdriver/xutil"
	"github.com/deviationtrack/canvaseditor/util/syncutil"
	"github.com/sirupsen/logrus"
)

var ErrNoImage = errors.New("paste: no image in selection")

// Image mime types requested from the selection owner, in order of preference.
var ImageTargets = []string{"image/png", "image/jpeg", "image/gif", "image/bmp", "image/webp", "image/tiff"}

// Reads image data from the X selections. Selection and property events must be forwarded to OnSelectionNotify/OnPropertyNotify by the window event loop.
type Paste struct {
	Timeout time.Duration
	Log     *logrus.Entry

	conn *xgb.Conn
	win  xproto.Window
	sw   *syncutil.WaitForSet[*xproto.SelectionNotifyEvent]
	pw   *syncutil.WaitForSet[*xproto.PropertyNotifyEvent]

	imageAtoms map[xproto.Atom]string // atom -> mime
}

func NewPaste(conn *xgb.Conn, win xproto.Window) (*Paste, error) {
	if err := xutil.LoadAtoms(conn, &PasteAtoms, false); err != nil {
		return nil, err
	}
	p := &Paste{
		Timeout: 1500 * time.Millisecond,
		Log:     logrus.NewEntry(logrus.StandardLogger()),
		conn:    conn,
		win:     win,
		sw:      syncutil.NewWaitForSet[*xproto.SelectionNotifyEvent](),
		pw:      syncutil.NewWaitForSet[*xproto.PropertyNotifyEvent](),
	}
	p.imageAtoms = map[xproto.Atom]string{}
	for _, mime := range ImageTargets {
		r, err := xproto.InternAtom(conn, false, uint16(len(mime)), mime).Reply()
		if err != nil {
			return nil, fmt.Errorf("intern atom %v: %w", mime, err)
		}
		p.imageAtoms[r.Atom] = mime
	}
	return p, nil
}

//----------

// Image bytes and mime type from the clipboard selection.
func (p *Paste) ClipboardImage() ([]byte, string, error) {
	return p.Image(PasteAtoms.Clipboard)
}

// Asks the owner of the selection for its targets, then fetches the preferred image target.
func (p *Paste) Image(selection xproto.Atom) ([]byte, string, error) {
	ev, err := p.request(selection, PasteAtoms.Targets)
	if err != nil {
		return nil, "", err
	}
	if ev.Property == xproto.AtomNone {
		return nil, "", ErrNoImage // no owner
	}
	data, err := p.readProperty(ev)
	if err != nil {
		return nil, "", err
	}
	targets := xutil.AtomList(data)
	target, mime, ok := PickImageTarget(targets, p.imageAtoms)
	if !ok {
		p.Log.WithField("targets", xutil.AtomNames(p.conn, targets)).Debug("paste: no image target")
		return nil, "", ErrNoImage
	}

	ev, err = p.request(selection, target)
	if err != nil {
		return nil, "", err
	}
	if ev.Property == xproto.AtomNone {
		return nil, "", fmt.Errorf("paste: owner refused %v", mime)
	}
	if ev.Target != target {
		name, _ := xutil.GetAtomName(p.conn, ev.Target)
		return nil, "", fmt.Errorf("paste: unexpected type: %v", name)
	}
	b, err := p.readProperty(ev)
	if err != nil {
		return nil, "", err
	}
	return b, mime, nil
}

// First target, in ImageTargets preference order, offered by the owner.
func PickImageTarget(targets []xproto.Atom, imageAtoms map[xproto.Atom]string) (xproto.Atom, string, bool) {
	offered := map[string]xproto.Atom{}
	for _, t := range targets {
		if mime, ok := imageAtoms[t]; ok {
			offered[mime] = t
		}
	}
	for _, mime := range ImageTargets {
		if a, ok := offered[mime]; ok {
			return a, mime, true
		}
	}
	return 0, "", false
}

//----------

func (p *Paste) request(selection, target xproto.Atom) (*xproto.SelectionNotifyEvent, error) {
	p.sw.Start(p.Timeout)
	_ = xproto.ConvertSelection(
		p.conn,
		p.win,
		selection,
		target,
		PasteAtoms.XSelData, // property
		xproto.TimeCurrentTime)
	ev, err := p.sw.WaitForSet()
	if err != nil {
		return nil, fmt.Errorf("paste: %w", err)
	}
	return ev, nil
}

func (p *Paste) OnSelectionNotify(ev *xproto.SelectionNotifyEvent) {
	switch ev.Property {
	case xproto.AtomNone, PasteAtoms.XSelData:
	default:
		return // not a paste reply
	}
	if err := p.sw.Set(ev); err != nil {
		p.Log.WithError(err).Debug("paste: selection notify")
	}
}

// Only new values matter: they carry the chunks of an incremental transfer.
func (p *Paste) OnPropertyNotify(ev *xproto.PropertyNotifyEvent) {
	if ev.Atom != PasteAtoms.XSelData || ev.State != xproto.PropertyNewValue {
		return
	}
	_ = p.pw.Set(ev) // fails if no transfer is waiting
}

//----------

func (p *Paste) readProperty(ev *xproto.SelectionNotifyEvent) ([]byte, error) {
	reply, err := p.getProperty(ev, false)
	if err != nil {
		return nil, err
	}
	if reply.Type != PasteAtoms.Incr {
		_ = xproto.DeleteProperty(p.conn, ev.Requestor, ev.Property)
		return reply.Value, nil
	}

	// incremental transfer: https://tronche.com/gui/x/icccm/sec-2.html#s-2.7.2
	// every deletion asks the owner for the next chunk; the wait is armed before it
	var buf bytes.Buffer
	p.pw.Start(p.Timeout)
	_ = xproto.DeleteProperty(p.conn, ev.Requestor, ev.Property)
	for {
		if err := p.waitForNewValue(ev); err != nil {
			return nil, err
		}
		p.pw.Start(p.Timeout)
		reply, err := p.getProperty(ev, true)
		if err != nil {
			p.pw.Cancel()
			return nil, err
		}
		if reply.ValueLen == 0 {
			p.pw.Cancel()
			return buf.Bytes(), nil
		}
		buf.Write(reply.Value)
	}
}

func (p *Paste) getProperty(ev *xproto.SelectionNotifyEvent, del bool) (*xproto.GetPropertyReply, error) {
	return xproto.GetProperty(
		p.conn,
		del,
		ev.Requestor,
		ev.Property,
		xproto.GetPropertyTypeAny,
		0,
		math.MaxUint32).Reply()
}

func (p *Paste) waitForNewValue(ev *xproto.SelectionNotifyEvent) error {
	for {
		pev, err := p.pw.WaitForSet()
		if err != nil {
			return fmt.Errorf("paste: incr: %w", err)
		}
		if pev.Atom == ev.Property {
			return nil
		}
		p.pw.Start(p.Timeout)
	}
}

//----------

var PasteAtoms struct {
	Primary   xproto.Atom `loadAtoms:"PRIMARY"`
	Clipboard xproto.Atom `loadAtoms:"CLIPBOARD"`
	XSelData  xproto.Atom `loadAtoms:"XSEL_DATA"`
	Incr      xproto.Atom `loadAtoms:"INCR"`
	Targets   xproto.Atom `loadAtoms:"TARGETS"`
}
