package fontutil

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFaceIsCached(t *testing.T) {
	reg := NewRegistry()
	spec := Spec{Family: "Arial", Size: 30}
	f1 := reg.Face(spec)
	f2 := reg.Face(spec)
	if f1 != f2 {
		t.Fatal("expected cached face")
	}
	if f3 := reg.Face(Spec{Family: "Arial", Size: 30, Bold: true}); f3 == f1 {
		t.Fatal("bold must be a different face")
	}
}

func TestMeasureGrowsWithText(t *testing.T) {
	reg := NewRegistry()
	spec := Spec{Family: "Verdana", Size: 16}
	w1 := reg.MeasureString(spec, "abc")
	w2 := reg.MeasureString(spec, "abcabc")
	if !(w1 > 0 && w2 > w1) {
		t.Fatal(w1, w2)
	}
	if w := reg.MeasureString(spec, ""); w != 0 {
		t.Fatal(w)
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	reg := NewRegistry()
	w1 := reg.MeasureString(Spec{Family: "Arial", Size: 10}, "hello")
	w2 := reg.MeasureString(Spec{Family: "Arial", Size: 40}, "hello")
	if w2 <= w1*3 {
		t.Fatal(w1, w2)
	}
}

func TestUnknownFamilyFallsBack(t *testing.T) {
	reg := NewRegistry()
	if reg.HasFamily("Comic Sans") {
		t.Fatal("unexpected family")
	}
	w1 := reg.MeasureString(Spec{Family: "Comic Sans", Size: 12}, "xyz")
	w2 := reg.MeasureString(Spec{Family: "Arial", Size: 12}, "xyz")
	if w1 != w2 {
		t.Fatal(w1, w2)
	}
}

func TestMonoFamily(t *testing.T) {
	reg := NewRegistry()
	spec := Spec{Family: "Courier New", Size: 20}
	if reg.MeasureString(spec, "iiii") != reg.MeasureString(spec, "MMMM") {
		t.Fatal("expected fixed advance")
	}
}

func TestSetFamily(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetFamily("Custom", Family{goregular.TTF}); err == nil {
		t.Fatal("expected missing variant error")
	}
	bad := []byte("not a font")
	if err := reg.SetFamily("Custom", Family{bad, bad, bad, bad}); err == nil {
		t.Fatal("expected parse error")
	}
	if err := reg.SetFamily("Custom", GoMono); err != nil {
		t.Fatal(err)
	}
	if !reg.HasFamily("custom") {
		t.Fatal("family not registered")
	}
}

func TestAscent(t *testing.T) {
	reg := NewRegistry()
	a := reg.Ascent(Spec{Family: "Arial", Size: 30})
	if a <= 0 || a > 60 {
		t.Fatal(a)
	}
}
