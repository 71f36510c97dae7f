package ggsurface

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/render"
	"github.com/deviationtrack/canvaseditor/util/fontutil"
	"github.com/deviationtrack/canvaseditor/util/imageutil"
	"github.com/deviationtrack/canvaseditor/util/mathutil"
	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Raster surface drawn with gg.
type Surface struct {
	Background color.Color // cleared to transparent if nil
	Fonts      *fontutil.Registry

	dc *gg.Context
}

func New(width, height int) *Surface {
	return &Surface{
		Fonts: fontutil.Fonts,
		dc:    gg.NewContext(width, height),
	}
}

// Matches render.NewRasterFn.
func NewRaster(width, height int) render.RasterSurface {
	return New(width, height)
}

func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *Surface) SavePNG(filename string) error {
	return s.dc.SavePNG(filename)
}

//----------

func (s *Surface) Clear() {
	c := s.Background
	if c == nil {
		c = color.Transparent
	}
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *Surface) DrawImage(img image.Image, r element.Rect, rotation float64) {
	w, h := int(math.Round(r.Width)), int(math.Round(r.Height))
	if w <= 0 || h <= 0 {
		return
	}
	scaled := scale(img, w, h)
	c := r.Center()
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.RotateAbout(mathutil.Radians(rotation), c.X, c.Y)
	s.dc.DrawImage(scaled, int(math.Round(r.X)), int(math.Round(r.Y)))
}

func scale(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

func (s *Surface) FillText(str string, x, y float64, ty element.Typography) {
	spec := render.FontSpec(ty)
	s.dc.SetFontFace(s.Fonts.Face(spec))
	s.dc.SetColor(imageutil.ParseColorOr(ty.Fill, color.Black))
	s.dc.DrawString(str, x, y+s.Fonts.Ascent(spec))
}

func (s *Surface) FillRect(r element.Rect, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.Fill()
}

func (s *Surface) StrokeRect(r element.Rect, c color.Color, lineWidth float64, dash []float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.SetDash(dash...)
	defer s.dc.SetDash()
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.Stroke()
}

func (s *Surface) StrokeLine(p0, p1 element.Point, c color.Color, lineWidth float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(lineWidth)
	s.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	s.dc.Stroke()
}

func (s *Surface) MeasureText(str string, ty element.Typography) float64 {
	return s.Fonts.MeasureString(render.FontSpec(ty), str)
}
