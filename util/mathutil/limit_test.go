package mathutil

import (
	"math"
	"testing"
)

func TestLimit(t *testing.T) {
	if v := Limit(5, 0, 3); v != 3 {
		t.Fatal(v)
	}
	if v := Limit(-1.5, 0, 3); v != 0 {
		t.Fatal(v)
	}
	if v := Limit(2, 0, 3); v != 2 {
		t.Fatal(v)
	}
}

func TestAtLeast(t *testing.T) {
	if v := AtLeast(-30.0, 20); v != 20 {
		t.Fatal(v)
	}
	if v := AtLeast(21.0, 20); v != 21 {
		t.Fatal(v)
	}
}

func TestMinMax(t *testing.T) {
	if v := Min(3, 1, 2); v != 1 {
		t.Fatal(v)
	}
	if v := Max(3, 1, 2); v != 3 {
		t.Fatal(v)
	}
}

func TestIsFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Fatal(v)
		}
	}
	if !IsFinite(0) || !IsFinite(-1e300) {
		t.Fatal("finite values rejected")
	}
}

func TestRadians(t *testing.T) {
	if v := Radians(180); math.Abs(v-math.Pi) > 1e-9 {
		t.Fatal(v)
	}
}
