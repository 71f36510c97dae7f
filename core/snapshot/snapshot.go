package snapshot

import (
	"github.com/deviationtrack/canvaseditor/core/element"
)

// Editor output, forwarded verbatim by the host.
type Snapshot struct {
	RichText     string            `json:"richText"`
	RichTextHTML string            `json:"richTextHtml"`
	Images       []ImageDescriptor `json:"images"`
	TextElements []TextDescriptor  `json:"textElements"`
	CanvasData   *string           `json:"canvasData"` // png data url, null without elements
}

type ImageDescriptor struct {
	Id       string  `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Src      string  `json:"src"`
}

type TextDescriptor struct {
	Id             string  `json:"id"`
	Text           string  `json:"text"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	FontFamily     string  `json:"fontFamily"`
	FontSize       float64 `json:"fontSize"`
	FontWeight     string  `json:"fontWeight"`
	FontStyle      string  `json:"fontStyle"`
	Underline      bool    `json:"underline"`
	Strikethrough  bool    `json:"strikethrough"`
	Fill           string  `json:"fill"`
	HighlightColor string  `json:"highlightColor"`
}

//----------

func DescribeImages(images []*element.Image) []ImageDescriptor {
	u := make([]ImageDescriptor, 0, len(images))
	for _, img := range images {
		u = append(u, ImageDescriptor{
			Id:       img.Id,
			X:        img.Rect.X,
			Y:        img.Rect.Y,
			Width:    img.Rect.Width,
			Height:   img.Rect.Height,
			Rotation: img.Rotation,
			Src:      img.Src,
		})
	}
	return u
}

func DescribeTexts(texts []*element.TextBox) []TextDescriptor {
	u := make([]TextDescriptor, 0, len(texts))
	for _, tb := range texts {
		u = append(u, TextDescriptor{
			Id:             tb.Id,
			Text:           tb.Text,
			X:              tb.Rect.X,
			Y:              tb.Rect.Y,
			Width:          tb.Rect.Width,
			Height:         tb.Rect.Height,
			FontFamily:     tb.FontFamily,
			FontSize:       tb.FontSize,
			FontWeight:     string(tb.FontWeight),
			FontStyle:      string(tb.FontStyle),
			Underline:      tb.Underline,
			Strikethrough:  tb.Strikethrough,
			Fill:           tb.Fill,
			HighlightColor: tb.HighlightColor,
		})
	}
	return u
}

// Text box rebuilt from its descriptor (ex: reloading a stored snapshot).
func (td *TextDescriptor) TextBox() *element.TextBox {
	return &element.TextBox{
		Id:   td.Id,
		Text: td.Text,
		Rect: element.Rect{X: td.X, Y: td.Y, Width: td.Width, Height: td.Height},
		Typography: element.Typography{
			FontFamily:     td.FontFamily,
			FontSize:       td.FontSize,
			FontWeight:     element.FontWeight(td.FontWeight),
			FontStyle:      element.FontStyle(td.FontStyle),
			Underline:      td.Underline,
			Strikethrough:  td.Strikethrough,
			Fill:           td.Fill,
			HighlightColor: td.HighlightColor,
		},
	}
}
