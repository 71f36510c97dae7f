package event

type Cursor int

const (
	NoneCursor Cursor = iota // none means not set
	DefaultCursor
	CrosshairCursor
	GrabCursor
	CopyCursor // placing a new element
	NSResizeCursor
	WEResizeCursor
	NWSEResizeCursor
	NESWResizeCursor
)

func (c Cursor) String() string {
	switch c {
	case NoneCursor:
		return "none"
	case DefaultCursor:
		return "default"
	case CrosshairCursor:
		return "crosshair"
	case GrabCursor:
		return "grab"
	case CopyCursor:
		return "copy"
	case NSResizeCursor:
		return "ns-resize"
	case WEResizeCursor:
		return "ew-resize"
	case NWSEResizeCursor:
		return "nwse-resize"
	case NESWResizeCursor:
		return "nesw-resize"
	}
	return "unknown"
}
