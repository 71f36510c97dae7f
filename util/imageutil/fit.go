package imageutil

// Scales (w,h) down to fit within (maxW,maxH) preserving the aspect ratio. Width is clamped first, then height. Sizes already within bounds are unchanged.
func FitWithin(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	aspect := w / h
	if w > maxW {
		w = maxW
		h = w / aspect
	}
	if h > maxH {
		h = maxH
		w = h * aspect
	}
	return w, h
}
