package element

import (
	"image"
	"strings"

	"github.com/deviationtrack/canvaseditor/util/imageutil"
)

// Minimum width/height of any element after a resize.
const MinBoxSize = 20.0

// Text box defaults (click to place).
const (
	DefaultTextWidth  = 200.0
	DefaultTextHeight = 50.0
	DefaultFontSize   = 30.0
	MinFontSize       = 8.0
	DefaultFontFamily = "Arial"
	DefaultFill       = "#000000"
)

//----------

// Implemented only by *Image and *TextBox.
type Element interface {
	ElementId() string
	Kind() Kind
	Box() Rect
	isElement()
}

type Kind int

const (
	KindNone Kind = iota
	KindImage
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindText:
		return "text"
	}
	return "none"
}

//----------

// Typed reference to an element. The zero value references nothing.
type Ref struct {
	Kind Kind
	Id   string
}

func (r Ref) IsZero() bool {
	return r.Kind == KindNone
}

func RefOf(e Element) Ref {
	if e == nil {
		return Ref{}
	}
	return Ref{e.Kind(), e.ElementId()}
}

//----------

type Image struct {
	Id       string
	Rect     Rect
	Rotation float64 // degrees, about the center

	Decoded image.Image // decoded raster, not serialized
	Src     string      // original encoding as a data url
}

func (img *Image) ElementId() string { return img.Id }
func (img *Image) Kind() Kind        { return KindImage }
func (img *Image) Box() Rect         { return img.Rect }
func (img *Image) isElement()        {}

func (img *Image) Copy() *Image {
	u := *img
	return &u
}

//----------

type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

type FontStyle string

const (
	StyleNormal FontStyle = "normal"
	StyleItalic FontStyle = "italic"
)

type Typography struct {
	FontFamily     string
	FontSize       float64
	FontWeight     FontWeight
	FontStyle      FontStyle
	Underline      bool
	Strikethrough  bool
	Fill           string // "#rrggbb"
	HighlightColor string // "#rrggbb" or "transparent"
}

func DefaultTypography() Typography {
	return Typography{
		FontFamily:     DefaultFontFamily,
		FontSize:       DefaultFontSize,
		FontWeight:     WeightNormal,
		FontStyle:      StyleNormal,
		Fill:           DefaultFill,
		HighlightColor: imageutil.Transparent,
	}
}

func (ty Typography) Bold() bool   { return ty.FontWeight == WeightBold }
func (ty Typography) Italic() bool { return ty.FontStyle == StyleItalic }

func (ty Typography) HasHighlight() bool {
	return !imageutil.IsTransparent(ty.HighlightColor)
}

// Line advance for wrapped text.
func (ty Typography) LineHeight() float64 {
	return ty.FontSize * LineHeightFactor
}

const LineHeightFactor = 1.2

//----------

type TextBox struct {
	Id   string
	Text string
	Rect Rect
	Typography
}

func (tb *TextBox) ElementId() string { return tb.Id }
func (tb *TextBox) Kind() Kind        { return KindText }
func (tb *TextBox) Box() Rect         { return tb.Rect }
func (tb *TextBox) isElement()        {}

func (tb *TextBox) Copy() *TextBox {
	u := *tb
	return &u
}

func (tb *TextBox) Blank() bool {
	return strings.TrimSpace(tb.Text) == ""
}
