package fontutil

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Truetype faces keep internal caches and are not safe for concurrent use; registry faces are shared.
type syncFace struct {
	mu   sync.Mutex
	face font.Face
}

func newSyncFace(face font.Face) *syncFace {
	return &syncFace{face: face}
}

func (sf *syncFace) Close() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.face.Close()
}

func (sf *syncFace) Glyph(dot fixed.Point26_6, ru rune) (
	dr image.Rectangle,
	mask image.Image,
	maskp image.Point,
	advance fixed.Int26_6,
	ok bool,
) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	dr, mask, maskp, advance, ok = sf.face.Glyph(dot, ru)
	if ok && mask != nil {
		// the mask buffer is reused by the next call
		mask = copyMask(mask)
	}
	return
}

func (sf *syncFace) GlyphBounds(ru rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.face.GlyphBounds(ru)
}

func (sf *syncFace) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.face.GlyphAdvance(ru)
}

func (sf *syncFace) Kern(r0, r1 rune) fixed.Int26_6 {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.face.Kern(r0, r1)
}

func (sf *syncFace) Metrics() font.Metrics {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.face.Metrics()
}

//----------

func copyMask(mask image.Image) image.Image {
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		return mask
	}
	u := *alpha // copy structure
	u.Pix = make([]uint8, len(alpha.Pix))
	copy(u.Pix, alpha.Pix)
	return &u
}
