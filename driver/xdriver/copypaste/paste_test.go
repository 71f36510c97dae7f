package copypaste

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/deviationtrack/canvaseditor/driver/xdriver/xutil"
)

func TestPickImageTarget(t *testing.T) {
	imageAtoms := map[xproto.Atom]string{
		100: "image/png",
		101: "image/jpeg",
		102: "image/gif",
		103: "image/bmp",
	}
	type result struct {
		targets []xproto.Atom
		atom    xproto.Atom
		mime    string
		ok      bool
	}
	w := []result{
		{[]xproto.Atom{5, 6, 101, 100}, 100, "image/png", true},
		{[]xproto.Atom{103, 102}, 102, "image/gif", true},
		{[]xproto.Atom{103}, 103, "image/bmp", true},
		{[]xproto.Atom{1, 2, 3}, 0, "", false},
		{nil, 0, "", false},
	}
	for _, u := range w {
		a, mime, ok := PickImageTarget(u.targets, imageAtoms)
		if a != u.atom || mime != u.mime || ok != u.ok {
			t.Fatal(u.targets, a, mime, ok)
		}
	}
}

func TestAtomList(t *testing.T) {
	b := []byte{1, 0, 0, 0, 0x10, 0x01, 0, 0, 7}
	u := xutil.AtomList(b)
	if len(u) != 2 || u[0] != 1 || u[1] != 0x110 {
		t.Fatal(u)
	}
}
