package event

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
)

// Buttons held during a move.
type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}
func (mb MouseButtons) Empty() bool {
	return mb == 0
}

func ButtonsOf(bs ...MouseButton) MouseButtons {
	u := MouseButtons(0)
	for _, b := range bs {
		u |= MouseButtons(b)
	}
	return u
}
