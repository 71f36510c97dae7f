package element

import (
	"image"
	"slices"

	"github.com/deviationtrack/canvaseditor/util/imageutil"
	"github.com/deviationtrack/canvaseditor/util/mathutil"
	"github.com/oklog/ulid/v2"
)

// Share of the canvas a new image may cover, per axis.
const MaxImageCanvasShare = 0.5

// Ordered collections of images and text boxes plus the selection. Insertion order is z-order (last is topmost). Not safe for concurrent use.
type Model struct {
	width, height float64 // canvas

	images []*Image
	texts  []*TextBox
	sel    Ref

	NewId func() string
}

func NewModel(canvasWidth, canvasHeight float64) *Model {
	return &Model{
		width:  canvasWidth,
		height: canvasHeight,
		NewId:  newULID,
	}
}

func newULID() string {
	return ulid.Make().String()
}

func (m *Model) CanvasSize() (float64, float64) {
	return m.width, m.height
}

//----------

// Returned slices are copies; elements must not be mutated directly.
func (m *Model) Images() []*Image {
	return slices.Clone(m.images)
}
func (m *Model) TextBoxes() []*TextBox {
	return slices.Clone(m.texts)
}

func (m *Model) Len() int {
	return len(m.images) + len(m.texts)
}

func (m *Model) Image(id string) *Image {
	if i := m.imageIndex(id); i >= 0 {
		return m.images[i]
	}
	return nil
}
func (m *Model) TextBox(id string) *TextBox {
	if i := m.textIndex(id); i >= 0 {
		return m.texts[i]
	}
	return nil
}

// Returns nil if the reference doesn't resolve.
func (m *Model) Get(ref Ref) Element {
	switch ref.Kind {
	case KindImage:
		if img := m.Image(ref.Id); img != nil {
			return img
		}
	case KindText:
		if tb := m.TextBox(ref.Id); tb != nil {
			return tb
		}
	}
	return nil
}

func (m *Model) imageIndex(id string) int {
	return slices.IndexFunc(m.images, func(img *Image) bool { return img.Id == id })
}
func (m *Model) textIndex(id string) int {
	return slices.IndexFunc(m.texts, func(tb *TextBox) bool { return tb.Id == id })
}

//----------

// Scales the image to fit within half the canvas (aspect preserved), centers it, and selects it.
func (m *Model) AddImage(decoded image.Image, src string) *Image {
	b := decoded.Bounds()
	w, h := imageutil.FitWithin(
		float64(b.Dx()), float64(b.Dy()),
		m.width*MaxImageCanvasShare, m.height*MaxImageCanvasShare)
	img := &Image{
		Id:      m.NewId(),
		Rect:    Rect{(m.width - w) / 2, (m.height - h) / 2, w, h},
		Decoded: decoded,
		Src:     src,
	}
	m.images = append(m.images, img)
	m.sel = RefOf(img)
	return img
}

// Default sized text box at p. Selection is left to the caller.
func (m *Model) AddTextBox(p Point) *TextBox {
	tb := &TextBox{
		Rect:       Rect{p.X, p.Y, DefaultTextWidth, DefaultTextHeight},
		Typography: DefaultTypography(),
	}
	return m.AddTextBoxWith(tb)
}

// Programmatic add. A copy is stored; an empty id gets a fresh one.
func (m *Model) AddTextBoxWith(tb *TextBox) *TextBox {
	u := tb.Copy()
	if u.Id == "" || m.textIndex(u.Id) >= 0 {
		u.Id = m.NewId()
	}
	normalizeTextBox(u)
	m.texts = append(m.texts, u)
	return u
}

//----------

// Replaces the attributes of the image with the same id. Returns false for unknown ids, non-positive sizes or non-finite values.
func (m *Model) UpdateImage(img *Image) bool {
	i := m.imageIndex(img.Id)
	if i < 0 || img.Rect.Width <= 0 || img.Rect.Height <= 0 {
		return false
	}
	r := img.Rect
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height, img.Rotation} {
		if !mathutil.IsFinite(v) {
			return false
		}
	}
	m.images[i] = img.Copy()
	return true
}

// Replaces the attributes of the text box with the same id. Returns false for unknown ids.
func (m *Model) UpdateTextBox(tb *TextBox) bool {
	i := m.textIndex(tb.Id)
	if i < 0 {
		return false
	}
	u := tb.Copy()
	normalizeTextBox(u)
	m.texts[i] = u
	return true
}

// Non-finite values fall back to zero position, minimum size and default font size.
func normalizeTextBox(tb *TextBox) {
	tb.Rect.X = finiteOr(tb.Rect.X, 0)
	tb.Rect.Y = finiteOr(tb.Rect.Y, 0)
	tb.Rect.Width = mathutil.AtLeast(finiteOr(tb.Rect.Width, MinBoxSize), MinBoxSize)
	tb.Rect.Height = mathutil.AtLeast(finiteOr(tb.Rect.Height, MinBoxSize), MinBoxSize)
	tb.FontSize = mathutil.AtLeast(finiteOr(tb.FontSize, DefaultFontSize), MinFontSize)
}

func finiteOr(v, def float64) float64 {
	if !mathutil.IsFinite(v) {
		return def
	}
	return v
}

//----------

// Unknown references are a no-op. Clears the selection if it was the removed element.
func (m *Model) Remove(ref Ref) bool {
	removed := false
	switch ref.Kind {
	case KindImage:
		if i := m.imageIndex(ref.Id); i >= 0 {
			m.images = slices.Delete(m.images, i, i+1)
			removed = true
		}
	case KindText:
		if i := m.textIndex(ref.Id); i >= 0 {
			m.texts = slices.Delete(m.texts, i, i+1)
			removed = true
		}
	}
	if removed && m.sel == ref {
		m.sel = Ref{}
	}
	return removed
}

func (m *Model) Clear() {
	m.images = nil
	m.texts = nil
	m.sel = Ref{}
}

//----------

func (m *Model) Selection() Ref {
	return m.sel
}

// Selecting an unresolvable reference clears the selection.
func (m *Model) Select(ref Ref) {
	if m.Get(ref) == nil {
		m.sel = Ref{}
		return
	}
	m.sel = ref
}

func (m *Model) Selected() Element {
	return m.Get(m.sel)
}
