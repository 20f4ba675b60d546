package gas

import "math"

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Box computes the container rectangle for a viewport and scale factor: the
// width is the smaller viewport dimension times the scale, the height follows
// the fixed aspect ratio, and the box is centered in the viewport. The
// rectangle is derived state; recompute it after any scale or viewport change
// rather than caching it.
func Box(viewportW, viewportH, scale float64) Rect {
	w := math.Min(viewportW, viewportH) * scale
	h := w * BoxAspect
	return Rect{
		X:      (viewportW - w) / 2,
		Y:      (viewportH - h) / 2,
		Width:  w,
		Height: h,
	}
}

// Clamp returns (x, y) clamped into the rectangle inset by r on all sides.
func (b Rect) Clamp(x, y, r float64) (float64, float64) {
	return clamp(x, b.X+r, b.X+b.Width-r), clamp(y, b.Y+r, b.Y+b.Height-r)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
