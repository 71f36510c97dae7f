package core

import (
	"fmt"
	"image"
	"math"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/richtext"
	"github.com/deviationtrack/canvaseditor/core/snapshot"
	"github.com/deviationtrack/canvaseditor/util/imageutil"
	"github.com/deviationtrack/canvaseditor/util/mathutil"
	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
	"github.com/sirupsen/logrus"
)

// Next pointer-down on the canvas places a text box. Commits an ongoing text edit. Ignored during a drag/resize.
func (ed *Editor) ArmTextPlacement() bool {
	if ed.mode.IsGesture() {
		return false
	}
	ed.Blur()
	ed.setMode(ModePlacingText)
	ed.setCursor(event.CopyCursor)
	return true
}

func (ed *Editor) DeleteSelected() bool {
	ref := ed.Model.Selection()
	if ref.IsZero() {
		return false
	}
	if ed.mode == ModeEditingText && ed.edit.id == ref.Id {
		ed.edit.id = ""
		ed.setMode(ModeIdle)
	}
	if !ed.Model.Remove(ref) {
		return false
	}
	ed.changed()
	return true
}

func (ed *Editor) Clear() {
	if ed.mode == ModeEditingText || ed.mode.IsGesture() {
		ed.edit.id = ""
		ed.setMode(ModeIdle)
	}
	ed.Model.Clear()
	if ed.mode != ModePlacingText {
		ed.setCursor(event.CrosshairCursor)
	}
	ed.changed()
}

// Rotates the selected image; the result is kept in [0,360).
func (ed *Editor) RotateSelected(degrees float64) bool {
	if !mathutil.IsFinite(degrees) {
		return false
	}
	img, ok := ed.Model.Selected().(*element.Image)
	if !ok {
		return false
	}
	u := img.Copy()
	u.Rotation = math.Mod(u.Rotation+degrees, 360)
	if u.Rotation < 0 {
		u.Rotation += 360
	}
	ed.Model.UpdateImage(u)
	ed.changed()
	return true
}

//----------

// Adds an already decoded image. Commits an ongoing text edit since the new image takes the selection.
func (ed *Editor) AddImage(decoded image.Image, src string) *element.Image {
	ed.Blur()
	img := ed.Model.AddImage(decoded, src)
	ed.changed()
	return img
}

// Decodes data asynchronously (when Options.Post is set) and adds the image once decoded. Payloads that are not images are dropped and logged.
func (ed *Editor) AddImageData(data []byte, source string) {
	if ed.opt.Post == nil {
		img, mime, err := imageutil.Decode(data)
		ed.imageDecoded(source, data, img, mime, err)
		return
	}
	ed.pendingDecodes++
	go func() {
		img, mime, err := imageutil.Decode(data)
		ed.opt.Post(func() {
			ed.pendingDecodes--
			ed.imageDecoded(source, data, img, mime, err)
		})
	}()
}

// Decodes started by AddImageData that haven't been delivered yet.
func (ed *Editor) PendingDecodes() int {
	return ed.pendingDecodes
}

func (ed *Editor) imageDecoded(source string, data []byte, img image.Image, mime string, err error) {
	if err != nil {
		ed.Log.WithFields(logrus.Fields{
			"source": source,
			"bytes":  len(data),
		}).WithError(err).Warn("image input ignored")
		ed.EEvents.emit(DroppedInputEEventId, &DroppedInputEEvent{Source: source, Err: err})
		return
	}
	ed.AddImage(img, imageutil.EncodeDataURL(mime, data))
}

//----------

func (ed *Editor) SetRichText(s string) {
	ed.RichText.SetText(s)
	ed.changed()
}

func (ed *Editor) SelectRichText(start, end int) {
	ed.RichText.Select(start, end)
}

func (ed *Editor) FormatRichText(m richtext.Marker) {
	ed.RichText.Format(m)
	ed.changed()
}

//----------

func (ed *Editor) State() *snapshot.State {
	w, h := ed.Model.CanvasSize()
	st := &snapshot.State{
		Width:    w,
		Height:   h,
		RichText: ed.RichText.Text(),
		Images:   ed.Model.Images(),
		Texts:    ed.Model.TextBoxes(),
	}
	html, err := ed.RichText.HTML()
	if err != nil {
		ed.Log.WithError(err).Warn("rich text html")
	}
	st.RichTextHTML = html
	return st
}

// Builds a snapshot of the current state without emitting it.
func (ed *Editor) Snapshot() *snapshot.Snapshot {
	return ed.exporter.Build(ed.State())
}

// Emits a pending export now. Returns false if nothing was pending.
func (ed *Editor) Flush() bool {
	return ed.exporter.Flush()
}

func (ed *Editor) ExportPending() bool {
	return ed.exporter.Pending()
}

func (ed *Editor) emitSnapshot(s *snapshot.Snapshot) {
	ed.Log.WithFields(logrus.Fields{
		"images": len(s.Images),
		"texts":  len(s.TextElements),
	}).Debug("snapshot")
	ed.EEvents.emit(SnapshotEEventId, &SnapshotEEvent{Snapshot: s})
	if ed.opt.OnSnapshot != nil {
		ed.opt.OnSnapshot(s)
	}
}

func (ed *Editor) String() string {
	return fmt.Sprintf("editor{mode=%v sel=%v n=%v}", ed.mode, ed.Model.Selection(), ed.Model.Len())
}
