package event

import (
	"image"
	"unicode"
)

// Pointer coordinates are canvas relative; points outside the canvas are only meaningful to window-level handlers.

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

type MouseDown struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseUp struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

type MouseClick struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseDoubleClick struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}

//----------

type KeyDown struct {
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

func (kd *KeyDown) LowerRune() rune {
	return unicode.ToLower(kd.Rune)
}

// Keyboard focus left the floating text overlay.
type FocusLost struct{}

//----------

type KeyModifiers uint32

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock               // caps
	ModCtrl
	ModAlt
	ModSuper // ~ windows key
)

//----------

type KeySym int

const (
	KSymNone KeySym = 0

	// let ascii codes keep their values
	KSym_dummy_ KeySym = 256 + iota

	KSymBackspace
	KSymReturn
	KSymEscape
	KSymTab
	KSymHome
	KSymEnd
	KSymLeft
	KSymRight
	KSymUp
	KSymDown
	KSymDelete
)

var keySymNames = map[string]KeySym{
	"backspace": KSymBackspace,
	"return":    KSymReturn,
	"enter":     KSymReturn,
	"escape":    KSymEscape,
	"tab":       KSymTab,
	"home":      KSymHome,
	"end":       KSymEnd,
	"left":      KSymLeft,
	"right":     KSymRight,
	"up":        KSymUp,
	"down":      KSymDown,
	"delete":    KSymDelete,
}

// Case insensitive lookup of a named key.
func KeySymByName(name string) (KeySym, bool) {
	ks, ok := keySymNames[toLowerASCII(name)]
	return ks, ok
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
