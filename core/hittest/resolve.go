package hittest

import (
	"github.com/deviationtrack/canvaseditor/core/element"
)

type HitKind int

const (
	HitNone HitKind = iota
	HitElement
	HitHandle
)

type Hit struct {
	Kind   HitKind
	Ref    element.Ref // element hit, or the selection owning the handle
	Handle Handle
}

func (h Hit) IsNone() bool { return h.Kind == HitNone }

//----------

type Resolver struct {
	HandleSize float64
}

func NewResolver() *Resolver {
	return &Resolver{HandleSize: HandleSize}
}

// Priority: handles of the selected element, then text boxes topmost first, then images topmost first.
func (res *Resolver) Resolve(p element.Point, selected element.Element, images []*element.Image, texts []*element.TextBox) Hit {
	if selected != nil {
		if h := HandleAt(p, selected.Box(), res.HandleSize); h != NoHandle {
			return Hit{Kind: HitHandle, Ref: element.RefOf(selected), Handle: h}
		}
	}
	for i := len(texts) - 1; i >= 0; i-- {
		if texts[i].Rect.Contains(p) {
			return Hit{Kind: HitElement, Ref: element.RefOf(texts[i])}
		}
	}
	for i := len(images) - 1; i >= 0; i-- {
		if images[i].Rect.Contains(p) {
			return Hit{Kind: HitElement, Ref: element.RefOf(images[i])}
		}
	}
	return Hit{}
}

// Resolves against the model's current contents and selection.
func (res *Resolver) ResolveModel(p element.Point, m *element.Model) Hit {
	return res.Resolve(p, m.Selected(), m.Images(), m.TextBoxes())
}
