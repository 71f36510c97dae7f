package core

import (
	"image/color"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/render"
	"github.com/deviationtrack/canvaseditor/util/mathutil"
	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
)

func (ed *Editor) startEdit(tb *element.TextBox) {
	ed.edit.id = tb.Id
	ed.edit.caret = utf8.RuneCountInString(tb.Text)
	ed.setMode(ModeEditingText)
}

// Keeps the content as typed; a blank box is removed.
func (ed *Editor) commitEdit() {
	id := ed.edit.id
	ed.edit.id = ""
	ed.edit.caret = 0
	tb := ed.Model.TextBox(id)
	if tb != nil && tb.Blank() {
		ed.Model.Remove(element.RefOf(tb))
	}
}

// Overlay lost focus. Returns false if no text box was being edited.
func (ed *Editor) Blur() bool {
	if ed.mode != ModeEditingText {
		return false
	}
	ed.commitEdit()
	ed.setMode(ModeIdle)
	ed.changed()
	return true
}

// Text box bound to the overlay, and the caret offset in runes.
func (ed *Editor) EditingTextBox() (*element.TextBox, int, bool) {
	if ed.mode != ModeEditingText {
		return nil, 0, false
	}
	tb := ed.Model.TextBox(ed.edit.id)
	if tb == nil {
		return nil, 0, false
	}
	return tb, ed.edit.caret, true
}

//----------

func (ed *Editor) keyDown(ev *event.KeyDown) event.Handle {
	switch ed.mode {
	case ModePlacingText:
		if ev.KeySym == event.KSymEscape {
			ed.setMode(ModeIdle)
			ed.setCursor(event.CrosshairCursor)
			return event.Handled
		}
		return event.NotHandled
	case ModeEditingText:
		return ed.editKey(ev)
	}
	return event.NotHandled
}

func (ed *Editor) editKey(ev *event.KeyDown) event.Handle {
	tb, caret, ok := ed.EditingTextBox()
	if !ok {
		return event.NotHandled
	}
	rs := []rune(tb.Text)
	caret = mathutil.Limit(caret, 0, len(rs))
	switch ev.KeySym {
	case event.KSymEscape:
		ed.Blur()
		return event.Handled
	case event.KSymReturn:
		ed.TypeText("\n")
		return event.Handled
	case event.KSymBackspace:
		if caret > 0 {
			ed.setEditing(slices.Delete(rs, caret-1, caret), caret-1)
		}
		return event.Handled
	case event.KSymDelete:
		if caret < len(rs) {
			ed.setEditing(slices.Delete(rs, caret, caret+1), caret)
		}
		return event.Handled
	case event.KSymLeft:
		ed.edit.caret = mathutil.AtLeast(caret-1, 0)
		return event.Handled
	case event.KSymRight:
		ed.edit.caret = mathutil.Limit(caret+1, 0, len(rs))
		return event.Handled
	case event.KSymHome:
		i := caret
		for i > 0 && rs[i-1] != '\n' {
			i--
		}
		ed.edit.caret = i
		return event.Handled
	case event.KSymEnd:
		i := caret
		for i < len(rs) && rs[i] != '\n' {
			i++
		}
		ed.edit.caret = i
		return event.Handled
	}
	if ev.Mods.HasAny(event.ModCtrl|event.ModAlt|event.ModSuper) || !unicode.IsPrint(ev.Rune) {
		return event.NotHandled
	}
	ed.TypeText(string(ev.Rune))
	return event.Handled
}

// Inserts s at the caret of the box under edit.
func (ed *Editor) TypeText(s string) bool {
	tb, caret, ok := ed.EditingTextBox()
	if !ok {
		return false
	}
	rs := []rune(tb.Text)
	caret = mathutil.Limit(caret, 0, len(rs))
	ins := []rune(s)
	ed.setEditing(slices.Insert(rs, caret, ins...), caret+len(ins))
	return true
}

// Replaces the content of the box under edit (bound overlay input).
func (ed *Editor) SetEditingText(s string) bool {
	if _, _, ok := ed.EditingTextBox(); !ok {
		return false
	}
	rs := []rune(s)
	ed.setEditing(rs, len(rs))
	return true
}

func (ed *Editor) setEditing(rs []rune, caret int) {
	tb := ed.Model.TextBox(ed.edit.id)
	u := tb.Copy()
	u.Text = string(rs)
	ed.Model.UpdateTextBox(u)
	ed.edit.caret = caret
	ed.changed()
}

//----------

var overlayBorder = color.RGBA{0x88, 0x88, 0x88, 0xff}

// Draws the box under edit the way the floating overlay shows it.
func (ed *Editor) RenderOverlay(s render.Surface) {
	tb, _, ok := ed.EditingTextBox()
	if !ok {
		return
	}
	s.StrokeRect(tb.Rect, overlayBorder, 1, nil)
	ed.Renderer.DrawTextBox(s, tb)
}
