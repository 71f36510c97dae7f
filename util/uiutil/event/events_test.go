package event

import "testing"

func TestKeySymByName(t *testing.T) {
	ks, ok := KeySymByName("BackSpace")
	if !ok || ks != KSymBackspace {
		t.Fatal(ks, ok)
	}
	if _, ok := KeySymByName("f13"); ok {
		t.Fatal("unexpected key")
	}
}

func TestMouseButtons(t *testing.T) {
	bs := ButtonsOf(ButtonLeft, ButtonRight)
	if !bs.Has(ButtonLeft) || bs.Has(ButtonMiddle) {
		t.Fatal(bs)
	}
	if !MouseButtons(0).Empty() {
		t.Fatal("expected empty")
	}
}
