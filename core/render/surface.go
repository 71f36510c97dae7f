package render

import (
	"image"
	"image/color"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/util/fontutil"
)

// Minimal immediate mode drawing target. Coordinates are canvas pixels.
type Surface interface {
	Clear()
	// Draws img scaled into r, rotated by degrees about the center of r.
	DrawImage(img image.Image, r element.Rect, rotation float64)
	// (x,y) is the top-left of the line box.
	FillText(s string, x, y float64, ty element.Typography)
	FillRect(r element.Rect, c color.Color)
	StrokeRect(r element.Rect, c color.Color, lineWidth float64, dash []float64)
	StrokeLine(p0, p1 element.Point, c color.Color, lineWidth float64)
	MeasureText(s string, ty element.Typography) float64
}

// Surface backed by pixels.
type RasterSurface interface {
	Surface
	Image() image.Image
}

type NewRasterFn func(width, height int) RasterSurface

//----------

func FontSpec(ty element.Typography) fontutil.Spec {
	return fontutil.Spec{
		Family: ty.FontFamily,
		Bold:   ty.Bold(),
		Italic: ty.Italic(),
		Size:   ty.FontSize,
	}
}
