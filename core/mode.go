package core

type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
	ModePlacingText // armed, waiting for a pointer-down
	ModeEditingText // overlay bound to one text box
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	case ModePlacingText:
		return "placing-text"
	case ModeEditingText:
		return "editing-text"
	}
	return "unknown"
}

// Window-level pointer listeners are registered only in these modes.
func (m Mode) IsGesture() bool {
	return m == ModeDragging || m == ModeResizing
}
