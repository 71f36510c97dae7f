package render

import (
	"image/color"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/hittest"
	"github.com/deviationtrack/canvaseditor/core/textlayout"
	"github.com/deviationtrack/canvaseditor/util/imageutil"
	"github.com/deviationtrack/canvaseditor/util/mathutil"
)

// What gets drawn. Slices are in z-order.
type View struct {
	Images    []*element.Image
	Texts     []*element.TextBox
	Selection element.Ref
	EditingId string // text box drawn by the edit overlay instead

	NoChrome bool // off-screen export
}

//----------

type Renderer struct {
	HandleSize float64
	Chrome     ChromeStyle
}

type ChromeStyle struct {
	Outline      color.Color
	OutlineWidth float64
	OutlinePad   float64
	Dash         []float64
	CornerHandle color.Color
	EdgeHandle   color.Color
}

var DefaultChrome = ChromeStyle{
	Outline:      color.RGBA{0x00, 0x7b, 0xff, 0xff},
	OutlineWidth: 2,
	OutlinePad:   2,
	Dash:         []float64{5, 5},
	CornerHandle: color.RGBA{0x00, 0x7b, 0xff, 0xff},
	EdgeHandle:   color.RGBA{0x00, 0xaa, 0xff, 0xff},
}

func NewRenderer() *Renderer {
	return &Renderer{HandleSize: hittest.HandleSize, Chrome: DefaultChrome}
}

//----------

// Images first, then text boxes, then the selection chrome on top.
func (r *Renderer) Render(s Surface, v *View) {
	s.Clear()
	var selected element.Element
	for _, img := range v.Images {
		r.drawImage(s, img)
		if v.Selection == element.RefOf(img) {
			selected = img
		}
	}
	for _, tb := range v.Texts {
		if v.Selection == element.RefOf(tb) {
			selected = tb
		}
		if v.EditingId != "" && tb.Id == v.EditingId {
			continue
		}
		r.DrawTextBox(s, tb)
	}
	if selected != nil && !v.NoChrome {
		r.drawChrome(s, selected.Box())
	}
}

func (r *Renderer) drawImage(s Surface, img *element.Image) {
	if img.Decoded == nil {
		return
	}
	s.DrawImage(img.Decoded, img.Rect, img.Rotation)
}

//----------

func (r *Renderer) DrawTextBox(s Surface, tb *element.TextBox) {
	if tb.Text == "" {
		return
	}
	ty := tb.Typography
	measure := func(str string) float64 { return s.MeasureText(str, ty) }
	lines := textlayout.Layout(tb.Text, tb.Rect.X, tb.Rect.Y, tb.Rect.Width, ty.LineHeight(), measure)

	fill := imageutil.ParseColorOr(ty.Fill, color.Black)
	var highlight color.Color
	if ty.HasHighlight() {
		if c, ok := imageutil.ParseColor(ty.HighlightColor); ok {
			highlight = c
		}
	}
	thickness := DecorationThickness(ty.FontSize)
	for _, l := range lines {
		if l.Text == "" {
			continue
		}
		if highlight != nil {
			s.FillRect(element.Rect{X: l.X, Y: l.Y, Width: l.Width, Height: ty.LineHeight()}, highlight)
		}
		s.FillText(l.Text, l.X, l.Y, ty)
		if ty.Underline {
			y := l.Y + ty.FontSize*UnderlineOffset
			s.StrokeLine(element.Pt(l.X, y), element.Pt(l.X+l.Width, y), fill, thickness)
		}
		if ty.Strikethrough {
			y := l.Y + ty.FontSize*StrikeOffset
			s.StrokeLine(element.Pt(l.X, y), element.Pt(l.X+l.Width, y), fill, thickness)
		}
	}
}

// Decoration offsets from the line top, as fractions of the font size.
const (
	UnderlineOffset = 1.05
	StrikeOffset    = 0.6
)

func DecorationThickness(fontSize float64) float64 {
	return mathutil.AtLeast(fontSize/15, 1)
}

//----------

func (r *Renderer) drawChrome(s Surface, b element.Rect) {
	st := &r.Chrome
	pad := st.OutlinePad
	outline := element.Rect{X: b.X - pad, Y: b.Y - pad, Width: b.Width + 2*pad, Height: b.Height + 2*pad}
	s.StrokeRect(outline, st.Outline, st.OutlineWidth, st.Dash)
	for _, h := range hittest.Handles {
		c := st.CornerHandle
		if !h.IsCorner() {
			c = st.EdgeHandle
		}
		s.FillRect(h.Hotspot(b, r.HandleSize), c)
	}
}
