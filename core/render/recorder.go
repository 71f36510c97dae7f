package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/util/fontutil"
)

// Surface that keeps a log of the draw calls. Useful to inspect what a render pass produced without rasterizing.
type Recorder struct {
	Ops     []Op
	Measure func(s string, ty element.Typography) float64 // defaults to the font registry
}

type Op struct {
	Name     string // clear, image, text, fillrect, strokerect, line
	Rect     element.Rect
	P0, P1   element.Point
	Text     string
	Color    color.Color
	Width    float64 // line width
	Dash     []float64
	Rotation float64
	Image    image.Image
}

func (op Op) String() string {
	switch op.Name {
	case "text":
		return fmt.Sprintf("text %q %v", op.Text, op.Rect.Origin())
	case "line":
		return fmt.Sprintf("line %v-%v w=%g", op.P0, op.P1, op.Width)
	}
	return fmt.Sprintf("%v %v", op.Name, op.Rect)
}

func (rec *Recorder) Reset() {
	rec.Ops = rec.Ops[:0]
}

// Ops with the given name.
func (rec *Recorder) Filter(name string) []Op {
	u := []Op{}
	for _, op := range rec.Ops {
		if op.Name == name {
			u = append(u, op)
		}
	}
	return u
}

//----------

func (rec *Recorder) Clear() {
	rec.Ops = append(rec.Ops, Op{Name: "clear"})
}
func (rec *Recorder) DrawImage(img image.Image, r element.Rect, rotation float64) {
	rec.Ops = append(rec.Ops, Op{Name: "image", Image: img, Rect: r, Rotation: rotation})
}
func (rec *Recorder) FillText(s string, x, y float64, ty element.Typography) {
	r := element.Rect{X: x, Y: y, Width: rec.MeasureText(s, ty), Height: ty.LineHeight()}
	rec.Ops = append(rec.Ops, Op{Name: "text", Text: s, Rect: r})
}
func (rec *Recorder) FillRect(r element.Rect, c color.Color) {
	rec.Ops = append(rec.Ops, Op{Name: "fillrect", Rect: r, Color: c})
}
func (rec *Recorder) StrokeRect(r element.Rect, c color.Color, lineWidth float64, dash []float64) {
	rec.Ops = append(rec.Ops, Op{Name: "strokerect", Rect: r, Color: c, Width: lineWidth, Dash: dash})
}
func (rec *Recorder) StrokeLine(p0, p1 element.Point, c color.Color, lineWidth float64) {
	rec.Ops = append(rec.Ops, Op{Name: "line", P0: p0, P1: p1, Color: c, Width: lineWidth})
}
func (rec *Recorder) MeasureText(s string, ty element.Typography) float64 {
	if rec.Measure != nil {
		return rec.Measure(s, ty)
	}
	return fontutil.Fonts.MeasureString(FontSpec(ty), s)
}
