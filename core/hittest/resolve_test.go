package hittest

import (
	"image"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/deviationtrack/canvaseditor/core/element"
)

func TestHandleAnchors(t *testing.T) {
	r := element.Rect{X: 10, Y: 20, Width: 100, Height: 50}
	type tc struct {
		h Handle
		p element.Point
	}
	for _, c := range []tc{
		{NW, element.Pt(10, 20)},
		{NE, element.Pt(110, 20)},
		{SW, element.Pt(10, 70)},
		{SE, element.Pt(110, 70)},
		{W, element.Pt(10, 45)},
		{N, element.Pt(60, 20)},
		{E, element.Pt(110, 45)},
		{S, element.Pt(60, 70)},
	} {
		if got := c.h.Anchor(r); got != c.p {
			t.Fatalf("%v: %v", c.h, got)
		}
		if got := HandleAt(c.p, r, HandleSize); got != c.h {
			t.Fatalf("%v: got %v", c.h, got)
		}
		// just inside the hotspot edge
		if got := HandleAt(c.p.Add(element.Pt(3.9, -3.9)), r, HandleSize); got != c.h {
			t.Fatalf("%v: near edge got %v", c.h, got)
		}
	}
	if h := HandleAt(element.Pt(40, 40), r, HandleSize); h != NoHandle {
		t.Fatal(h)
	}
}

func TestHandleBeatsElements(t *testing.T) {
	m := element.NewModel(800, 600)
	tb := m.AddTextBox(element.Pt(100, 100))
	m.Select(element.RefOf(tb))
	// another box overlapping the selection corner, added later
	m.AddTextBox(element.Pt(250, 100))

	res := NewResolver()
	hit := res.ResolveModel(element.Pt(300, 150), m)
	if hit.Kind != HitHandle || hit.Handle != SE || hit.Ref != element.RefOf(tb) {
		t.Fatal(spew.Sdump(hit))
	}
}

func TestOcclusionConsistent(t *testing.T) {
	m := element.NewModel(800, 600)
	a := m.AddTextBox(element.Pt(100, 100))
	b := m.AddTextBox(element.Pt(150, 120))
	m.Select(element.Ref{})

	res := NewResolver()
	hit := res.ResolveModel(element.Pt(200, 130), m)
	if hit.Kind != HitElement || hit.Ref != element.RefOf(b) {
		t.Fatal(spew.Sdump(hit))
	}
	// only a there
	hit = res.ResolveModel(element.Pt(110, 110), m)
	if hit.Ref != element.RefOf(a) {
		t.Fatal(spew.Sdump(hit))
	}
}

func TestImagesOcclusionAndTextPriority(t *testing.T) {
	m := element.NewModel(800, 600)
	i1 := m.AddImage(image.NewRGBA(image.Rect(0, 0, 100, 100)), "")
	i2 := m.AddImage(image.NewRGBA(image.Rect(0, 0, 50, 50)), "")
	m.Select(element.Ref{})

	res := NewResolver()
	center := element.Pt(400, 300)
	if hit := res.ResolveModel(center, m); hit.Ref != element.RefOf(i2) {
		t.Fatal(spew.Sdump(hit))
	}
	if hit := res.ResolveModel(element.Pt(355, 255), m); hit.Ref != element.RefOf(i1) {
		t.Fatal(spew.Sdump(hit))
	}
	// text boxes win over images even when added earlier
	tb := m.AddTextBoxWith(&element.TextBox{Rect: element.Rect{X: 380, Y: 280, Width: 40, Height: 40}})
	m.AddImage(image.NewRGBA(image.Rect(0, 0, 100, 100)), "")
	m.Select(element.Ref{})
	if hit := res.ResolveModel(center, m); hit.Ref != element.RefOf(tb) {
		t.Fatal(spew.Sdump(hit))
	}
}

func TestResolveEmpty(t *testing.T) {
	m := element.NewModel(800, 600)
	m.AddTextBox(element.Pt(100, 100))
	if hit := NewResolver().ResolveModel(element.Pt(5, 5), m); !hit.IsNone() {
		t.Fatal(spew.Sdump(hit))
	}
}
