package hittest

import (
	"github.com/deviationtrack/canvaseditor/core/element"
)

// Side of the square resize hotspots.
const HandleSize = 8.0

type Handle int

const (
	NoHandle Handle = iota
	NW
	NE
	SW
	SE
	W
	N
	E
	S
)

// Resolution order: corners first, then edge midpoints.
var Handles = [...]Handle{NW, NE, SW, SE, W, N, E, S}

func (h Handle) String() string {
	switch h {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	case W:
		return "w"
	case N:
		return "n"
	case E:
		return "e"
	case S:
		return "s"
	}
	return "none"
}

func (h Handle) IsCorner() bool {
	switch h {
	case NW, NE, SW, SE:
		return true
	}
	return false
}

// Geometric point of the box the handle sits on.
func (h Handle) Anchor(r element.Rect) element.Point {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	xm, ym := r.X+r.Width/2, r.Y+r.Height/2
	switch h {
	case NW:
		return element.Pt(x0, y0)
	case NE:
		return element.Pt(x1, y0)
	case SW:
		return element.Pt(x0, y1)
	case SE:
		return element.Pt(x1, y1)
	case W:
		return element.Pt(x0, ym)
	case N:
		return element.Pt(xm, y0)
	case E:
		return element.Pt(x1, ym)
	case S:
		return element.Pt(xm, y1)
	}
	return r.Center()
}

// Hotspot square of the handle.
func (h Handle) Hotspot(r element.Rect, size float64) element.Rect {
	return element.SquareAt(h.Anchor(r), size)
}

// First handle (in resolution order) whose hotspot contains p.
func HandleAt(p element.Point, r element.Rect, size float64) Handle {
	for _, h := range Handles {
		if h.Hotspot(r, size).Contains(p) {
			return h
		}
	}
	return NoHandle
}
