package core

import (
	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/util/imageutil"
	"github.com/deviationtrack/canvaseditor/util/mathutil"
)

// Font size step of grow/shrink.
const FontSizeStep = 2.0

// Typography commands. They apply to the selected text box only; false means nothing changed.

func (ed *Editor) updateSelectedText(fn func(tb *element.TextBox) bool) bool {
	tb, ok := ed.Model.Selected().(*element.TextBox)
	if !ok {
		return false
	}
	u := tb.Copy()
	if !fn(u) {
		return false
	}
	ed.Model.UpdateTextBox(u)
	ed.changed()
	return true
}

func (ed *Editor) SetFontFamily(name string) bool {
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		if name == "" {
			return false
		}
		tb.FontFamily = name
		return true
	})
}

func (ed *Editor) SetFontSize(size float64) bool {
	if !mathutil.IsFinite(size) {
		return false
	}
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		tb.FontSize = mathutil.AtLeast(size, element.MinFontSize)
		return true
	})
}

func (ed *Editor) GrowFont() bool {
	return ed.addFontSize(FontSizeStep)
}
func (ed *Editor) ShrinkFont() bool {
	return ed.addFontSize(-FontSizeStep)
}
func (ed *Editor) addFontSize(v float64) bool {
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		tb.FontSize = mathutil.AtLeast(tb.FontSize+v, element.MinFontSize)
		return true
	})
}

func (ed *Editor) ToggleBold() bool {
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		if tb.Bold() {
			tb.FontWeight = element.WeightNormal
		} else {
			tb.FontWeight = element.WeightBold
		}
		return true
	})
}

func (ed *Editor) ToggleItalic() bool {
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		if tb.Italic() {
			tb.FontStyle = element.StyleNormal
		} else {
			tb.FontStyle = element.StyleItalic
		}
		return true
	})
}

func (ed *Editor) ToggleUnderline() bool {
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		tb.Underline = !tb.Underline
		return true
	})
}

func (ed *Editor) ToggleStrikethrough() bool {
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		tb.Strikethrough = !tb.Strikethrough
		return true
	})
}

// Accepts "#rgb" or "#rrggbb".
func (ed *Editor) SetFill(hex string) bool {
	c, ok := imageutil.NormalizeHex(hex)
	if !ok || c == imageutil.Transparent {
		return false
	}
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		tb.Fill = c
		return true
	})
}

// Accepts a hex color or "transparent".
func (ed *Editor) SetHighlight(s string) bool {
	c, ok := imageutil.NormalizeHex(s)
	if !ok {
		return false
	}
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		tb.HighlightColor = c
		return true
	})
}

// Back to the default styles; family and size are kept.
func (ed *Editor) ResetStyles() bool {
	return ed.updateSelectedText(func(tb *element.TextBox) bool {
		def := element.DefaultTypography()
		def.FontFamily = tb.FontFamily
		def.FontSize = tb.FontSize
		tb.Typography = def
		return true
	})
}
