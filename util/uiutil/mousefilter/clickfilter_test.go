package mousefilter

import (
	"image"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestFilter() (*ClickFilter, *fakeClock, *[]any) {
	evs := &[]any{}
	cf := NewClickFilter(func(ev any) { *evs = append(*evs, ev) })
	clock := &fakeClock{t: time.Unix(1000, 0)}
	cf.Now = clock.now
	return cf, clock, evs
}

func click(cf *ClickFilter, p image.Point) {
	cf.Filter(&event.MouseDown{Point: p, Button: event.ButtonLeft})
	cf.Filter(&event.MouseUp{Point: p, Button: event.ButtonLeft})
}

func countDoubles(evs []any) int {
	n := 0
	for _, ev := range evs {
		if _, ok := ev.(*event.MouseDoubleClick); ok {
			n++
		}
	}
	return n
}

func TestDoubleClick(t *testing.T) {
	cf, clock, evs := newTestFilter()
	p := image.Pt(10, 10)
	click(cf, p)
	clock.t = clock.t.Add(100 * time.Millisecond)
	click(cf, p)
	if len(*evs) != 3 || countDoubles(*evs) != 1 {
		t.Fatal(spew.Sdump(*evs))
	}
}

func TestSlowClicksAreSingle(t *testing.T) {
	cf, clock, evs := newTestFilter()
	p := image.Pt(10, 10)
	click(cf, p)
	clock.t = clock.t.Add(time.Second)
	click(cf, p)
	if countDoubles(*evs) != 0 {
		t.Fatal(spew.Sdump(*evs))
	}
}

func TestTripleClickIsOneDouble(t *testing.T) {
	cf, clock, evs := newTestFilter()
	p := image.Pt(3, 4)
	for i := 0; i < 3; i++ {
		click(cf, p)
		clock.t = clock.t.Add(50 * time.Millisecond)
	}
	if countDoubles(*evs) != 1 {
		t.Fatal(spew.Sdump(*evs))
	}
}

func TestMovedReleaseIsNotClick(t *testing.T) {
	cf, _, evs := newTestFilter()
	cf.Filter(&event.MouseDown{Point: image.Pt(0, 0), Button: event.ButtonLeft})
	cf.Filter(&event.MouseUp{Point: image.Pt(40, 0), Button: event.ButtonLeft})
	if len(*evs) != 0 {
		t.Fatal(spew.Sdump(*evs))
	}
}
