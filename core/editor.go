package core

import (
	"image"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/hittest"
	"github.com/deviationtrack/canvaseditor/core/render"
	"github.com/deviationtrack/canvaseditor/core/richtext"
	"github.com/deviationtrack/canvaseditor/core/snapshot"
	"github.com/deviationtrack/canvaseditor/util/evreg"
	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
	"github.com/sirupsen/logrus"
)

// Owns the canvas state and the interaction mode. All methods must be called from the same goroutine (see Options.Post).
type Editor struct {
	Model    *element.Model
	RichText *richtext.Field
	Renderer *render.Renderer
	Resolver *hittest.Resolver
	EEvents  *EEvents
	Log      *logrus.Entry

	opt      *Options
	exporter *snapshot.Exporter
	mode     Mode
	cursor   event.Cursor

	window  evreg.Register   // window-level pointer events
	gesture evreg.Unregister // window callbacks of the active drag/resize

	drag struct {
		ref        element.Ref
		p0, origin element.Point
	}
	resize struct {
		ref    element.Ref
		handle hittest.Handle
		p0     element.Point
		r0     element.Rect
	}
	edit struct {
		id    string
		caret int // runes
	}

	pendingDecodes int
}

func NewEditor(opt *Options) *Editor {
	if opt == nil {
		opt = DefaultOptions()
	}
	opt.normalize()

	ed := &Editor{opt: opt}
	ed.Log = opt.Log.WithField("component", "editor")
	ed.Model = element.NewModel(opt.CanvasWidth, opt.CanvasHeight)
	ed.RichText = richtext.NewField(opt.RichText)
	ed.Renderer = render.NewRenderer()
	ed.Renderer.HandleSize = opt.HandleSize
	ed.Resolver = &hittest.Resolver{HandleSize: opt.HandleSize}
	ed.EEvents = NewEEvents()
	ed.cursor = event.CrosshairCursor

	schedule := opt.Post
	if schedule == nil {
		schedule = func(func()) {} // flush only
	}
	ed.exporter = snapshot.NewExporter(opt.ExportDelay, schedule, ed.emitSnapshot)
	ed.exporter.Renderer = ed.Renderer
	ed.exporter.NewRaster = opt.NewRaster
	ed.exporter.Log = ed.Log
	return ed
}

//----------

func (ed *Editor) Mode() Mode {
	return ed.mode
}

func (ed *Editor) setMode(m Mode) {
	if m == ed.mode {
		return
	}
	from := ed.mode
	ed.mode = m
	if !m.IsGesture() {
		ed.gesture.UnregisterAll()
	}
	ed.Log.WithFields(logrus.Fields{"from": from, "to": m}).Debug("mode")
	ed.EEvents.emit(ModeEEventId, &ModeEEvent{From: from, To: m})
}

func (ed *Editor) Cursor() event.Cursor {
	return ed.cursor
}

func (ed *Editor) setCursor(c event.Cursor) {
	if c == ed.cursor {
		return
	}
	ed.cursor = c
	ed.EEvents.emit(CursorEEventId, &CursorEEvent{Cursor: c})
}

func (ed *Editor) CanvasSize() (float64, float64) {
	return ed.Model.CanvasSize()
}

//----------

// Events delivered by the canvas: pointer events inside the canvas bounds, and keyboard events.
func (ed *Editor) HandleCanvasEvent(ev any) event.Handle {
	switch t := ev.(type) {
	case *event.MouseDown:
		if t.Button != event.ButtonLeft {
			break
		}
		return ed.canvasDown(pointOf(t.Point))
	case *event.MouseMove:
		if ed.mode.IsGesture() || !t.Buttons.Empty() {
			break
		}
		ed.hover(pointOf(t.Point))
		return event.Handled
	case *event.MouseDoubleClick:
		if t.Button != event.ButtonLeft {
			break
		}
		return ed.doubleClick(pointOf(t.Point))
	case *event.KeyDown:
		return ed.keyDown(t)
	case *event.FocusLost:
		if ed.Blur() {
			return event.Handled
		}
	}
	return event.NotHandled
}

// Events delivered by the window, wherever the pointer is. Only drag/resize listen to them.
func (ed *Editor) HandleWindowEvent(ev any) event.Handle {
	n := 0
	switch t := ev.(type) {
	case *event.MouseMove:
		n = ed.window.RunCallbacks(windowMoveEvId, t)
	case *event.MouseUp:
		n = ed.window.RunCallbacks(windowUpEvId, t)
	}
	return event.Handle(n > 0)
}

// Number of window-level callbacks currently registered.
func (ed *Editor) WindowListeners() int {
	return ed.window.NCallbacks(windowMoveEvId) + ed.window.NCallbacks(windowUpEvId)
}

const (
	windowMoveEvId = iota
	windowUpEvId
)

//----------

func (ed *Editor) canvasDown(p element.Point) event.Handle {
	switch ed.mode {
	case ModeEditingText:
		if tb := ed.Model.TextBox(ed.edit.id); tb != nil && tb.Rect.Contains(p) {
			return event.Handled // the overlay owns it
		}
		ed.commitEdit()
		ed.Model.Select(element.Ref{})
		ed.setMode(ModeIdle)
		ed.hover(p)
		ed.changed()
		return event.Handled
	case ModePlacingText:
		tb := ed.Model.AddTextBox(p)
		ed.Model.Select(element.RefOf(tb))
		ed.startEdit(tb)
		ed.changed()
		return event.Handled
	case ModeIdle:
		hit := ed.Resolver.ResolveModel(p, ed.Model)
		switch hit.Kind {
		case hittest.HitHandle:
			ed.startResize(hit.Ref, hit.Handle, p)
		case hittest.HitElement:
			ed.Model.Select(hit.Ref)
			ed.startDrag(hit.Ref, p)
		default:
			if !ed.Model.Selection().IsZero() {
				ed.Model.Select(element.Ref{})
				ed.redraw()
			}
		}
		return event.Handled
	}
	return event.NotHandled
}

func (ed *Editor) doubleClick(p element.Point) event.Handle {
	if ed.mode != ModeIdle {
		return event.NotHandled
	}
	hit := ed.Resolver.Resolve(p, nil, ed.Model.Images(), ed.Model.TextBoxes())
	if hit.Ref.Kind != element.KindText {
		return event.NotHandled
	}
	tb := ed.Model.TextBox(hit.Ref.Id)
	ed.Model.Select(hit.Ref)
	ed.startEdit(tb)
	ed.redraw()
	return event.Handled
}

func (ed *Editor) hover(p element.Point) {
	if ed.mode.IsGesture() {
		return
	}
	// the next pointer-down places a box wherever it lands
	if ed.mode == ModePlacingText {
		ed.setCursor(event.CopyCursor)
		return
	}
	hit := ed.Resolver.ResolveModel(p, ed.Model)
	switch hit.Kind {
	case hittest.HitHandle:
		ed.setCursor(HandleCursor(hit.Handle))
	case hittest.HitElement:
		ed.setCursor(event.GrabCursor)
	default:
		ed.setCursor(event.CrosshairCursor)
	}
}

func HandleCursor(h hittest.Handle) event.Cursor {
	switch h {
	case hittest.NW, hittest.SE:
		return event.NWSEResizeCursor
	case hittest.NE, hittest.SW:
		return event.NESWResizeCursor
	case hittest.N, hittest.S:
		return event.NSResizeCursor
	case hittest.W, hittest.E:
		return event.WEResizeCursor
	}
	return event.DefaultCursor
}

//----------

func (ed *Editor) startDrag(ref element.Ref, p element.Point) {
	el := ed.Model.Get(ref)
	ed.drag.ref = ref
	ed.drag.p0 = p
	ed.drag.origin = el.Box().Origin()
	ed.setMode(ModeDragging)
	ed.registerGesture()
	ed.setCursor(event.GrabCursor)
	ed.redraw()
}

func (ed *Editor) startResize(ref element.Ref, h hittest.Handle, p element.Point) {
	el := ed.Model.Get(ref)
	ed.resize.ref = ref
	ed.resize.handle = h
	ed.resize.p0 = p
	ed.resize.r0 = el.Box()
	ed.setMode(ModeResizing)
	ed.registerGesture()
	ed.setCursor(HandleCursor(h))
}

func (ed *Editor) registerGesture() {
	ed.gesture.UnregisterAll()
	ed.gesture.Add(
		ed.window.Add(windowMoveEvId, func(ev any) {
			ed.gestureMove(pointOf(ev.(*event.MouseMove).Point))
		}),
		ed.window.Add(windowUpEvId, func(ev any) {
			ed.gestureEnd(pointOf(ev.(*event.MouseUp).Point))
		}),
	)
}

func (ed *Editor) gestureMove(p element.Point) {
	var ref element.Ref
	var r element.Rect
	switch ed.mode {
	case ModeDragging:
		ref = ed.drag.ref
		if el := ed.Model.Get(ref); el != nil {
			d := p.Sub(ed.drag.p0)
			r = el.Box()
			r.X, r.Y = ed.drag.origin.X+d.X, ed.drag.origin.Y+d.Y
		}
	case ModeResizing:
		ref = ed.resize.ref
		_, isImage := ed.Model.Get(ref).(*element.Image)
		r = ResizeRect(ed.resize.handle, ed.resize.r0, p.Sub(ed.resize.p0), isImage, ed.opt.MinBoxSize)
	default:
		return
	}
	el := ed.Model.Get(ref)
	if el == nil {
		// element gone mid-gesture
		ed.setMode(ModeIdle)
		return
	}
	if el.Box() == r {
		return
	}
	if ed.setBox(ref, r) {
		ed.changed()
	}
}

// Releasing the pointer anywhere commits the geometry at that point.
func (ed *Editor) gestureEnd(p element.Point) {
	ed.gestureMove(p)
	ed.setMode(ModeIdle)
	ed.hover(p)
}

func (ed *Editor) setBox(ref element.Ref, r element.Rect) bool {
	switch t := ed.Model.Get(ref).(type) {
	case *element.Image:
		u := t.Copy()
		u.Rect = r
		return ed.Model.UpdateImage(u)
	case *element.TextBox:
		u := t.Copy()
		u.Rect = r
		return ed.Model.UpdateTextBox(u)
	}
	return false
}

//----------

// View of the current state, with selection chrome, skipping the box under edit.
func (ed *Editor) View() *render.View {
	v := &render.View{
		Images:    ed.Model.Images(),
		Texts:     ed.Model.TextBoxes(),
		Selection: ed.Model.Selection(),
	}
	if ed.mode == ModeEditingText {
		v.EditingId = ed.edit.id
	}
	return v
}

func (ed *Editor) Render(s render.Surface) {
	ed.Renderer.Render(s, ed.View())
}

//----------

func (ed *Editor) redraw() {
	ed.EEvents.emit(ChangeEEventId, &ChangeEEvent{})
}

// Redraws and schedules an export.
func (ed *Editor) changed() {
	ed.redraw()
	ed.exporter.Schedule(ed.State)
}

func pointOf(p image.Point) element.Point {
	return element.Pt(float64(p.X), float64(p.Y))
}
