package ggsurface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/render"
	"github.com/deviationtrack/canvaseditor/util/imageutil"
)

func opaque(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a > 0
}

func TestFillRectAndClear(t *testing.T) {
	s := New(50, 40)
	s.Clear()
	if opaque(s.Image().At(10, 10)) {
		t.Fatal("not cleared")
	}
	s.FillRect(element.Rect{X: 5, Y: 5, Width: 10, Height: 10}, color.RGBA{255, 0, 0, 255})
	c := imageutil.RgbaColor(s.Image().At(10, 10))
	if c.R != 255 || c.G != 0 || c.A != 255 {
		t.Fatal(c)
	}
	if opaque(s.Image().At(30, 30)) {
		t.Fatal("painted outside")
	}
}

func TestDrawImageScaledAndRotated(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			src.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	s := New(100, 100)
	s.Clear()
	// 40x20 box centered at (50,50), rotated 90: covers x 40..60, y 30..70
	s.DrawImage(src, element.Rect{X: 30, Y: 40, Width: 40, Height: 20}, 90)
	img := s.Image()
	if !opaque(img.At(50, 35)) || !opaque(img.At(50, 65)) {
		t.Fatal("rotated image missing")
	}
	if opaque(img.At(33, 50)) || opaque(img.At(67, 50)) {
		t.Fatal("image not rotated")
	}
}

func TestRenderText(t *testing.T) {
	s := New(300, 100)
	tb := &element.TextBox{Id: "t", Text: "Hello", Rect: element.Rect{X: 10, Y: 10, Width: 200, Height: 50}, Typography: element.DefaultTypography()}
	render.NewRenderer().Render(s, &render.View{Texts: []*element.TextBox{tb}})

	n := 0
	b := s.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if opaque(s.Image().At(x, y)) {
				n++
			}
		}
	}
	if n == 0 {
		t.Fatal("no glyphs drawn")
	}
	if w := s.MeasureText("Hello", tb.Typography); w <= 0 || w > 200 {
		t.Fatal(w)
	}

	buf := &bytes.Buffer{}
	if err := s.EncodePNG(buf); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(buf); err != nil {
		t.Fatal(err)
	}
}
