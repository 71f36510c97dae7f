package mousefilter

import (
	"image"
	"time"

	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
)

// Pointer travel (in pixels, per axis) still considered a click.
var MoveMargin = 2

// Produces click/doubleclick events from down/up pairs.
type ClickFilter struct {
	Interval time.Duration    // max time between ups for a double click
	Now      func() time.Time // replaceable clock

	m        map[event.MouseButton]*multipleClick
	emitEvFn func(any)
}

func NewClickFilter(emitEvFn func(any)) *ClickFilter {
	return &ClickFilter{
		Interval: 400 * time.Millisecond,
		Now:      time.Now,
		m:        map[event.MouseButton]*multipleClick{},
		emitEvFn: emitEvFn,
	}
}

func (clickf *ClickFilter) Filter(ev any) {
	switch t := ev.(type) {
	case *event.MouseDown:
		clickf.down(t)
	case *event.MouseUp:
		clickf.up(t)
	case *event.MouseMove:
		clickf.move(t)
	}
}

func (clickf *ClickFilter) down(ev *event.MouseDown) {
	mc, ok := clickf.m[ev.Button]
	if !ok {
		mc = &multipleClick{}
		clickf.m[ev.Button] = mc
	}
	mc.prevDownPoint = mc.downPoint
	mc.downPoint = ev.Point
}

func (clickf *ClickFilter) up(ev *event.MouseUp) {
	mc, ok := clickf.m[ev.Button]
	if !ok {
		return
	}

	upTime0 := mc.upTime
	mc.upTime = clickf.Now()

	// must be released near the press point
	if DetectMove(mc.downPoint, ev.Point) {
		mc.double = false
		mc.armed = false
		return
	}

	if mc.armed && mc.upTime.Sub(upTime0) <= clickf.Interval && !DetectMove(mc.prevDownPoint, ev.Point) {
		mc.double = true
	} else {
		mc.double = false
	}

	clickf.emitEvFn(&event.MouseClick{Point: ev.Point, Button: ev.Button, Mods: ev.Mods})

	if mc.double {
		clickf.emitEvFn(&event.MouseDoubleClick{Point: ev.Point, Button: ev.Button, Mods: ev.Mods})
		mc.armed = false // a third click starts over
	} else {
		mc.armed = true
	}
}

func (clickf *ClickFilter) move(ev *event.MouseMove) {
	for b, mc := range clickf.m {
		// clear if moved outside move detection margins
		if DetectMove(mc.downPoint, ev.Point) {
			delete(clickf.m, b)
		}
	}
}

//----------

type multipleClick struct {
	upTime        time.Time
	downPoint     image.Point
	prevDownPoint image.Point
	armed         bool // a single click happened, next one may be a double
	double        bool
}

//----------

func DetectMove(p0, p1 image.Point) bool {
	d := p1.Sub(p0)
	return abs(d.X) > MoveMargin || abs(d.Y) > MoveMargin
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
