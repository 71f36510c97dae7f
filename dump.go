package main

import (
	"fmt"
	"strings"

	"github.com/deviationtrack/canvaseditor/core/element"
)

// Deterministic state listing (ids are left out). Must run on the event loop.
func (h *Host) dump() string {
	ed := h.Ed
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "mode=%v cursor=%v sel=%v\n", ed.Mode(), ed.Cursor(), h.refName(ed.Model.Selection()))
	if tb, caret, ok := ed.EditingTextBox(); ok {
		fmt.Fprintf(sb, "editing=%v caret=%d\n", h.refName(element.RefOf(tb)), caret)
	}
	for i, img := range ed.Model.Images() {
		fmt.Fprintf(sb, "image#%d %v rot=%g\n", i, img.Rect, img.Rotation)
	}
	for i, tb := range ed.Model.TextBoxes() {
		fmt.Fprintf(sb, "text#%d %v %q %s\n", i, tb.Rect, tb.Text, typographyString(tb.Typography))
	}
	fmt.Fprintf(sb, "richtext %q\n", ed.RichText.Text())
	fmt.Fprintf(sb, "exports=%d dropped=%d\n", h.exports, h.dropped)
	return sb.String()
}

func (h *Host) refName(ref element.Ref) string {
	switch ref.Kind {
	case element.KindImage:
		for i, img := range h.Ed.Model.Images() {
			if img.Id == ref.Id {
				return fmt.Sprintf("image#%d", i)
			}
		}
	case element.KindText:
		for i, tb := range h.Ed.Model.TextBoxes() {
			if tb.Id == ref.Id {
				return fmt.Sprintf("text#%d", i)
			}
		}
	}
	return "none"
}

func typographyString(ty element.Typography) string {
	u := []string{
		fmt.Sprintf("%q", ty.FontFamily),
		fmt.Sprintf("%g", ty.FontSize),
		string(ty.FontWeight),
		string(ty.FontStyle),
	}
	if ty.Underline {
		u = append(u, "underline")
	}
	if ty.Strikethrough {
		u = append(u, "strike")
	}
	u = append(u, "fill="+ty.Fill, "hl="+ty.HighlightColor)
	return strings.Join(u, " ")
}
