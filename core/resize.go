package core

import (
	"math"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/hittest"
	"github.com/deviationtrack/canvaseditor/util/mathutil"
)

// Geometry after dragging handle h by d since the resize started at r0. The side opposite to the handle stays fixed. With lockAspect, corner handles keep the r0 aspect ratio, following the axis that changed the most. Width and height never go below min.
func ResizeRect(h hittest.Handle, r0 element.Rect, d element.Point, lockAspect bool, min float64) element.Rect {
	w, ht := r0.Width, r0.Height
	switch h {
	case hittest.E, hittest.NE, hittest.SE:
		w += d.X
	case hittest.W, hittest.NW, hittest.SW:
		w -= d.X
	}
	switch h {
	case hittest.S, hittest.SE, hittest.SW:
		ht += d.Y
	case hittest.N, hittest.NE, hittest.NW:
		ht -= d.Y
	}

	if lockAspect && h.IsCorner() && r0.Width > 0 && r0.Height > 0 {
		ratio := r0.Width / r0.Height
		if math.Abs(w/r0.Width-1) >= math.Abs(ht/r0.Height-1) {
			ht = w / ratio
		} else {
			w = ht * ratio
		}
		// scale up (aspect kept) until both sides reach the minimum
		if w < min || ht < min {
			s := mathutil.Max(min/w, min/ht)
			if w <= 0 || ht <= 0 {
				w, ht = min*ratio, min
				if ratio < 1 {
					w, ht = min, min/ratio
				}
			} else {
				w, ht = w*s, ht*s
			}
		}
	}
	w = mathutil.AtLeast(w, min)
	ht = mathutil.AtLeast(ht, min)

	x, y := r0.X, r0.Y
	switch h {
	case hittest.W, hittest.NW, hittest.SW:
		x = r0.X + r0.Width - w
	}
	switch h {
	case hittest.N, hittest.NE, hittest.NW:
		y = r0.Y + r0.Height - ht
	}
	return element.Rect{X: x, Y: y, Width: w, Height: ht}
}
