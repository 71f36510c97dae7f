package richtext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/deviationtrack/canvaseditor/util/mathutil"
)

// Free text with markdown-like markers, edited through a selection. Offsets are in runes.
type Field struct {
	text       []rune
	start, end int // selection, start <= end
}

func NewField(seed string) *Field {
	f := &Field{}
	f.SetText(seed)
	return f
}

func (f *Field) Text() string {
	return string(f.text)
}

// Replaces the content and puts the caret at the end.
func (f *Field) SetText(s string) {
	f.text = []rune(s)
	f.start = len(f.text)
	f.end = f.start
}

func (f *Field) Len() int {
	return len(f.text)
}

//----------

// Offsets are clamped to the text and ordered.
func (f *Field) Select(start, end int) {
	n := len(f.text)
	start = mathutil.Limit(start, 0, n)
	end = mathutil.Limit(end, 0, n)
	if start > end {
		start, end = end, start
	}
	f.start, f.end = start, end
}

func (f *Field) Selection() (int, int) {
	return f.start, f.end
}

func (f *Field) Selected() string {
	return string(f.text[f.start:f.end])
}

//----------

// Wraps the selection with before/after and collapses the selection to a caret after the inserted text.
func (f *Field) Insert(before, after string) {
	sel := f.text[f.start:f.end]
	u := make([]rune, 0, len(f.text)+len(before)+len(after))
	u = append(u, f.text[:f.start]...)
	u = append(u, []rune(before)...)
	u = append(u, sel...)
	u = append(u, []rune(after)...)
	u = append(u, f.text[f.end:]...)

	caret := f.start + utf8.RuneCountInString(before) + len(sel) + utf8.RuneCountInString(after)
	f.text = u
	f.start, f.end = caret, caret
}

func (f *Field) Format(m Marker) {
	before, after := m.Markers()
	f.Insert(before, after)
}

//----------

type Marker int

const (
	Bold Marker = iota
	Italic
	Underline
	Header
	Bullet
	Numbered
	Link
	HRule
)

var markerNames = [...]string{
	Bold:      "bold",
	Italic:    "italic",
	Underline: "underline",
	Header:    "header",
	Bullet:    "bullet",
	Numbered:  "numbered",
	Link:      "link",
	HRule:     "hr",
}

func (m Marker) String() string {
	if int(m) >= 0 && int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("marker(%d)", int(m))
}

func ParseMarker(s string) (Marker, error) {
	s = strings.ToLower(s)
	for i, name := range markerNames {
		if name == s {
			return Marker(i), nil
		}
	}
	return 0, fmt.Errorf("unknown marker: %q", s)
}

// Text inserted before and after the selection.
func (m Marker) Markers() (string, string) {
	switch m {
	case Bold:
		return "**", "**"
	case Italic:
		return "*", "*"
	case Underline:
		return "<u>", "</u>"
	case Header:
		return "# ", ""
	case Bullet:
		return BulletPrefix, ""
	case Numbered:
		return "1. ", ""
	case Link:
		return "[", "](url)"
	case HRule:
		return "\n---\n", ""
	}
	return "", ""
}

const BulletPrefix = "• "
